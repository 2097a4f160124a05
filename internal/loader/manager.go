// Package loader owns the installation and version state of the doorstop loader for the
// active platform: the artifact on disk, its expected hash, and the generated launch
// script.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/conn-castle/patch-loader/internal/artifacts"
	"github.com/conn-castle/patch-loader/internal/attest"
	"github.com/conn-castle/patch-loader/internal/launchconfig"
	"github.com/conn-castle/patch-loader/internal/logging"
	"github.com/conn-castle/patch-loader/internal/messages"
	"github.com/conn-castle/patch-loader/internal/upgrade"
)

var (
	// ErrPlatformUnsupported is returned by mutating operations on the unsupported variant.
	ErrPlatformUnsupported = errors.New("platform unsupported")
	// ErrCannotEnable is returned by Enable and Disable when the variant cannot toggle the loader.
	ErrCannotEnable = errors.New("loader cannot be enabled")
	// ErrTargetAssemblyRequired is returned when an enabled config has no target assembly.
	ErrTargetAssemblyRequired = errors.New("target assembly required")
)

// Options configures a Manager. Zero values select the production collaborators.
type Options struct {
	// Dir is the game directory holding the artifact and the launch script.
	Dir                    string
	ExpectedTargetAssembly string
	Logger                 logging.Sink
	Source                 artifacts.Source
	Attestor               *attest.Attestor
	Codec                  launchconfig.Codec
}

// Manager is the loader policy object for one platform.
type Manager struct {
	platform       Platform
	dir            string
	expectedTarget string
	logger         logging.Sink
	source         artifacts.Source
	attestor       *attest.Attestor
	codec          launchconfig.Codec
	coordinator    upgrade.Coordinator

	// settings is the last successfully decoded config, replaced wholesale.
	settings    launchconfig.Settings
	hasSettings bool
}

// New returns a Manager for platform p.
func New(p Platform, opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	source := opts.Source
	if source == nil {
		source = artifacts.Embedded{}
	}
	attestor := opts.Attestor
	if attestor == nil {
		attestor = attest.NewAttestor(logger)
	}
	codec := opts.Codec
	if codec == nil {
		codec = launchconfig.PositionalCodec{}
	}
	logger.Info(fmt.Sprintf(messages.LoaderInstantiatingFmt, p.Name))
	m := &Manager{
		platform:       p,
		dir:            dir,
		expectedTarget: opts.ExpectedTargetAssembly,
		logger:         logger,
		source:         source,
		attestor:       attestor,
		codec:          codec,
	}
	m.coordinator = upgrade.NewArtifactCoordinator(p.UpgradeName, m, logger)
	return m
}

// Platform returns the active variant.
func (m *Manager) Platform() Platform { return m.platform }

// PlatformSupported reports whether the loader can be installed on this platform.
func (m *Manager) PlatformSupported() bool { return m.platform.Supported }

// CanEnable reports whether the loader can be toggled on this platform.
func (m *Manager) CanEnable() bool { return m.platform.CanEnable }

// RequiresRestart reports whether install changes apply only after a host restart.
func (m *Manager) RequiresRestart() bool { return m.platform.RequiresRestart }

// InstallMessage is shown to the user before installing.
func (m *Manager) InstallMessage() string { return m.platform.InstallMessage }

// UninstallMessage is shown to the user before uninstalling.
func (m *Manager) UninstallMessage() string { return m.platform.UninstallMessage }

// ExpectedTargetAssembly is the assembly path the manager was constructed with.
func (m *Manager) ExpectedTargetAssembly() string { return m.expectedTarget }

// Upgrade returns the coordinator paired with this manager.
func (m *Manager) Upgrade() upgrade.Coordinator { return m.coordinator }

// LoaderPath is the on-disk location of the artifact.
func (m *Manager) LoaderPath() string {
	if m.platform.LoaderFileName == "" {
		return ""
	}
	return filepath.Join(m.dir, m.platform.LoaderFileName)
}

// ConfigPath is the on-disk location of the launch script.
func (m *Manager) ConfigPath() string {
	if m.platform.ConfigFileName == "" {
		return ""
	}
	return filepath.Join(m.dir, m.platform.ConfigFileName)
}

// IsInstalled reports whether the artifact file exists.
func (m *Manager) IsInstalled() bool {
	return m.fileExists(m.LoaderPath())
}

// IsLatestVersion reports whether the artifact exists and hashes to the expected value.
// Hash failures are logged and reported as not latest.
func (m *Manager) IsLatestVersion() bool {
	if !m.IsInstalled() {
		return false
	}
	got, err := attest.ContentHash(m.LoaderPath())
	if err != nil {
		m.logger.Error(messages.LoaderHashFailed, "file", m.LoaderPath(), "err", err)
		return false
	}
	return got == m.platform.LoaderHash
}

// CheckVersion is the version query used by the upgrade coordinator.
func (m *Manager) CheckVersion() bool {
	return m.IsLatestVersion()
}

// Install copies the packaged artifact over LoaderPath and marks it executable.
// An interrupted copy leaves a partial file that the next hash check reports as outdated.
func (m *Manager) Install() error {
	if !m.platform.Supported {
		return fmt.Errorf(messages.LoaderPlatformUnsupportedFmt+": %w", m.platform.Name, ErrPlatformUnsupported)
	}
	path := m.LoaderPath()
	m.logger.Info(messages.LoaderInstalling, "file", path, "resource", m.platform.ResourceID)
	if err := m.copyArtifact(path); err != nil {
		m.logger.Error(messages.LoaderInstallFailed, "file", path, "err", err)
		return err
	}
	m.attestor.MarkExecutable(path)
	m.logger.Info(messages.LoaderInstalled, "file", path)
	return nil
}

func (m *Manager) copyArtifact(path string) error {
	input, err := m.source.Open(m.platform.ResourceID)
	if err != nil {
		return err
	}
	defer func() { _ = input.Close() }()

	m.logger.Debug(messages.LoaderCopyingStream, "resource", m.platform.ResourceID)
	output, err := os.Create(path)
	if err != nil {
		return fmt.Errorf(messages.LoaderCreateArtifactFmt+": %w", path, err, attest.ErrIO)
	}
	if _, err := io.Copy(output, input); err != nil {
		_ = output.Close()
		return fmt.Errorf(messages.LoaderCopyArtifactFmt+": %w", path, err, attest.ErrIO)
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf(messages.LoaderCloseArtifactFmt+": %w", path, err, attest.ErrIO)
	}
	return nil
}

// Uninstall removes the artifact and the launch script. Missing files are not an error.
func (m *Manager) Uninstall() error {
	if !m.platform.Supported {
		return fmt.Errorf(messages.LoaderPlatformUnsupportedFmt+": %w", m.platform.Name, ErrPlatformUnsupported)
	}
	for _, path := range []string{m.LoaderPath(), m.ConfigPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			m.logger.Error(messages.LoaderUninstallFailed, "file", path, "err", err)
			return fmt.Errorf(messages.LoaderRemoveFileFmt+": %w", path, err, attest.ErrIO)
		}
	}
	m.settings = launchconfig.Settings{}
	m.hasSettings = false
	m.logger.Info(messages.LoaderUninstalled, "dir", m.dir)
	return nil
}

func (m *Manager) fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			m.logger.Debug(messages.LoaderStatFailed, "file", path, "err", err)
		}
		return false
	}
	return info.Mode().IsRegular()
}
