package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/conn-castle/patch-loader/internal/attest"
	"github.com/conn-castle/patch-loader/internal/fsutil"
	"github.com/conn-castle/patch-loader/internal/launchconfig"
	"github.com/conn-castle/patch-loader/internal/messages"
)

// BuildConfig renders settings as this platform's launch script.
func (m *Manager) BuildConfig(settings launchconfig.Settings) string {
	return m.codec.Encode(settings, m.platform.Boilerplate)
}

// LoadConfig decodes launch script text and, on success, replaces the cached settings.
func (m *Manager) LoadConfig(text string) (launchconfig.Settings, error) {
	lines := launchconfig.SplitLines(text)
	settings, err := m.codec.Decode(lines, m.platform.Boilerplate)
	if err != nil {
		m.logger.Error(messages.LoaderConfigParseFailed, "err", err)
		return launchconfig.Settings{}, err
	}
	preload, _ := launchconfig.PreloadValue(lines, m.platform.Boilerplate)
	status := messages.LoaderStatusDisabled
	if settings.Enabled {
		status = messages.LoaderStatusEnabled
	}
	m.logger.Info(messages.LoaderConfigParsed, "status", status, "target_assembly", settings.TargetAssembly, "preload", preload)

	m.settings = settings
	m.hasSettings = true
	return settings, nil
}

// Settings returns the cached snapshot from the last successful LoadConfig.
func (m *Manager) Settings() (launchconfig.Settings, bool) {
	return m.settings, m.hasSettings
}

// ConfigExists reports whether the launch script is present.
func (m *Manager) ConfigExists() bool {
	return m.fileExists(m.ConfigPath())
}

// ReadConfig reads and decodes the launch script from disk.
func (m *Manager) ReadConfig() (launchconfig.Settings, error) {
	text, err := m.ReadConfigText()
	if err != nil {
		return launchconfig.Settings{}, err
	}
	settings, err := m.LoadConfig(text)
	if err != nil {
		return launchconfig.Settings{}, fmt.Errorf(messages.LoaderParseConfigFmt, m.ConfigPath(), err)
	}
	return settings, nil
}

// ReadConfigText returns the raw launch script.
func (m *Manager) ReadConfigText() (string, error) {
	path := m.ConfigPath()
	if path == "" {
		return "", fmt.Errorf(messages.LoaderPlatformUnsupportedFmt+": %w", m.platform.Name, ErrPlatformUnsupported)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf(messages.LoaderReadConfigFmt+": %w", path, err, attest.ErrIO)
	}
	return string(data), nil
}

// WriteConfig writes the launch script for settings and grants it execute permission.
func (m *Manager) WriteConfig(settings launchconfig.Settings) error {
	if !m.platform.Supported {
		return fmt.Errorf(messages.LoaderPlatformUnsupportedFmt+": %w", m.platform.Name, ErrPlatformUnsupported)
	}
	if settings.Enabled && strings.TrimSpace(settings.TargetAssembly) == "" {
		return fmt.Errorf("%w: %s", ErrTargetAssemblyRequired, messages.LoaderTargetAssemblyRequired)
	}
	path := m.ConfigPath()
	if err := launchconfig.Validate(settings); err != nil {
		m.logger.Error(messages.LoaderConfigWriteFailed, "file", path, "err", err)
		return err
	}
	if err := fsutil.WriteFileAtomic(path, []byte(m.BuildConfig(settings)), 0o755); err != nil {
		m.logger.Error(messages.LoaderConfigWriteFailed, "file", path, "err", err)
		return fmt.Errorf(messages.LoaderWriteConfigFmt+": %w", path, err, attest.ErrIO)
	}
	m.logger.Info(messages.LoaderGrantExecute, "file", path)
	m.attestor.MarkExecutable(path)

	m.settings = settings
	m.hasSettings = true
	m.logger.Info(messages.LoaderConfigWritten, "file", path, "enabled", settings.Enabled)
	return nil
}

// DefaultSettings is an enabled config targeting the expected assembly.
func (m *Manager) DefaultSettings() launchconfig.Settings {
	return launchconfig.Settings{Enabled: true, TargetAssembly: m.expectedTarget}
}

// Enable turns injection on, keeping the configured target assembly when one exists.
func (m *Manager) Enable() error {
	return m.setEnabled(true)
}

// Disable turns injection off without removing the artifact.
func (m *Manager) Disable() error {
	return m.setEnabled(false)
}

func (m *Manager) setEnabled(enabled bool) error {
	if !m.platform.CanEnable {
		return fmt.Errorf(messages.LoaderCannotEnableFmt+": %w", m.platform.Name, ErrCannotEnable)
	}
	settings := m.DefaultSettings()
	if current, err := m.ReadConfig(); err == nil && strings.TrimSpace(current.TargetAssembly) != "" {
		settings = current
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		m.logger.Debug(messages.LoaderReplacingConfig, "file", m.ConfigPath(), "err", err)
	}
	settings.Enabled = enabled
	return m.WriteConfig(settings)
}

// ConfigMatchesExpected reports whether the launch script decodes and targets the
// expected assembly.
func (m *Manager) ConfigMatchesExpected() bool {
	settings, err := m.ReadConfig()
	if err != nil {
		return false
	}
	return m.TargetMatchesExpected(settings)
}

// TargetMatchesExpected reports whether settings target the expected assembly. With no
// expected assembly configured there is nothing to drift from.
func (m *Manager) TargetMatchesExpected(settings launchconfig.Settings) bool {
	return m.expectedTarget == "" || settings.TargetAssembly == m.expectedTarget
}
