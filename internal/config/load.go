package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/patch-loader/internal/messages"
)

// ErrConfigValidation wraps validation failures, as opposed to read or TOML syntax errors.
var ErrConfigValidation = errors.New("config validation failed")

var expandHome = homedir.Expand

// Load reads path, applies environment overrides from lookupEnv, and validates the
// result. A missing file yields Default with overrides applied.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	source := path
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = Parse(data, path)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
		source = messages.ConfigDefaultsSource
	default:
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}

	applyEnv(cfg, lookupEnv)
	if err := cfg.expandPaths(source); err != nil {
		return nil, err
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

// Parse decodes settings TOML on top of Default. Unknown keys are rejected.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	return cfg, nil
}

func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) {
	if lookupEnv == nil {
		return
	}
	overrides := []struct {
		key string
		dst *string
	}{
		{EnvGameDir, &cfg.Game.Dir},
		{EnvTargetAssembly, &cfg.Loader.TargetAssembly},
		{EnvPlatform, &cfg.Game.Platform},
		{EnvLogLevel, &cfg.Log.Level},
	}
	for _, o := range overrides {
		if v, ok := lookupEnv(o.key); ok && v != "" {
			*o.dst = v
		}
	}
}

// ExpandPath expands a leading ~ the way settings file and environment values are expanded.
func ExpandPath(path string) (string, error) {
	return expandHome(path)
}

func (c *Config) expandPaths(source string) error {
	for _, p := range []*string{&c.Game.Dir, &c.Loader.TargetAssembly} {
		if *p == "" {
			continue
		}
		expanded, err := expandHome(*p)
		if err != nil {
			return fmt.Errorf(messages.ConfigExpandPathFmt, source, *p, err)
		}
		*p = expanded
	}
	return nil
}
