package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/patch-loader/internal/logging"
	"github.com/conn-castle/patch-loader/internal/messages"
)

var validPlatforms = map[string]struct{}{
	"":        {},
	"darwin":  {},
	"linux":   {},
	"windows": {},
}

// Validate checks that the settings are usable. The target assembly may be empty;
// commands that enable the loader check it themselves.
func (c *Config) Validate(source string) error {
	if strings.TrimSpace(c.Game.Dir) == "" {
		return fmt.Errorf(messages.ConfigGameDirRequired, source)
	}
	if _, ok := validPlatforms[c.Game.Platform]; !ok {
		return fmt.Errorf(messages.ConfigPlatformInvalidFmt, source, c.Game.Platform)
	}
	if !logging.KnownLevel(c.Log.Level) {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, source, c.Log.Level)
	}
	return nil
}

// PlatformOr returns the configured platform, or goos when none is set.
func (c *Config) PlatformOr(goos string) string {
	if c.Game.Platform == "" {
		return goos
	}
	return c.Game.Platform
}
