package upgrade

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/conn-castle/patch-loader/internal/fsutil"
	"github.com/conn-castle/patch-loader/internal/logging"
	"github.com/conn-castle/patch-loader/internal/messages"
)

// Target is the installation a coordinator upgrades. The loader manager implements it.
type Target interface {
	// CheckVersion reports whether the installed artifact is the packaged version.
	CheckVersion() bool
	// Install writes the packaged artifact and marks it executable.
	Install() error
	// LoaderPath is the on-disk location of the artifact.
	LoaderPath() string
}

// Coordinator runs the upgrade protocol. Callers invoke the phases only while the
// state is Outdated, re-run UpdateState after phase one, and call HandleError when a
// phase fails. A false result from phase two or three after a successful phase one
// means the phase does not apply.
type Coordinator interface {
	State() State
	UpdateState() State
	FollowToPhaseOne() bool
	FollowToPhaseTwo() bool
	FollowToPhaseThree() bool
	HandleError() bool
}

// NoMigration supplies phases two and three for coordinators without config migration
// or post-upgrade verification.
type NoMigration struct{}

// FollowToPhaseTwo reports that no config migration applies.
func (NoMigration) FollowToPhaseTwo() bool { return false }

// FollowToPhaseThree reports that no verification or cleanup applies.
func (NoMigration) FollowToPhaseThree() bool { return false }

// ArtifactCoordinator replaces the artifact in phase one and can put the previous
// artifact back when a later step fails.
type ArtifactCoordinator struct {
	NoMigration

	name   string
	target Target
	logger logging.Sink
	state  State
	backup *artifactBackup
}

// artifactBackup is the pre-upgrade state of the artifact. It is held in memory only.
type artifactBackup struct {
	absent  bool
	content []byte
	perm    fs.FileMode
}

// NewArtifactCoordinator returns a coordinator for target. name prefixes log lines.
func NewArtifactCoordinator(name string, target Target, logger logging.Sink) *ArtifactCoordinator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ArtifactCoordinator{name: name, target: target, logger: logger}
}

// State returns the result of the last UpdateState call.
func (c *ArtifactCoordinator) State() State {
	return c.state
}

// UpdateState re-runs the version check.
func (c *ArtifactCoordinator) UpdateState() State {
	if c.target.CheckVersion() {
		c.state = Latest
	} else {
		c.state = Outdated
	}
	return c.state
}

// FollowToPhaseOne backs up the current artifact and installs the packaged one.
func (c *ArtifactCoordinator) FollowToPhaseOne() bool {
	path := c.target.LoaderPath()
	c.logger.Info(fmt.Sprintf(messages.UpgradeAttemptingFmt, c.name, path))

	backup, err := captureBackup(path)
	if err != nil {
		c.logger.Error(fmt.Sprintf(messages.UpgradeBackupFailedFmt, c.name), "file", path, "err", err)
	}
	c.backup = backup

	if err := c.target.Install(); err != nil {
		c.logger.Error(fmt.Sprintf(messages.UpgradeFailedFmt, c.name), "file", path, "err", err)
		return false
	}
	c.logger.Info(fmt.Sprintf(messages.UpgradeSuccessfulFmt, c.name))
	return true
}

// HandleError restores the artifact captured by phase one. It returns false when no
// backup exists or the restore fails, meaning manual intervention is required.
func (c *ArtifactCoordinator) HandleError() bool {
	path := c.target.LoaderPath()
	if c.backup == nil {
		c.logger.Error(fmt.Sprintf(messages.UpgradeNoBackupFmt, c.name), "file", path)
		return false
	}
	c.logger.Info(fmt.Sprintf(messages.UpgradeRestoringFmt, c.name), "file", path)
	if err := restoreBackup(path, c.backup); err != nil {
		c.logger.Error(fmt.Sprintf(messages.UpgradeRestoreFailedFmt, c.name), "file", path, "err", err)
		return false
	}
	c.backup = nil
	c.logger.Info(fmt.Sprintf(messages.UpgradeRestoredFmt, c.name), "file", path)
	return true
}

// captureBackup returns nil without error when path is empty: there is no artifact
// location to restore.
func captureBackup(path string) (*artifactBackup, error) {
	if path == "" {
		return nil, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &artifactBackup{absent: true}, nil
		}
		return nil, fmt.Errorf(messages.UpgradeStatBackupFmt, path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.UpgradeReadBackupFmt, path, err)
	}
	return &artifactBackup{content: content, perm: info.Mode().Perm()}, nil
}

func restoreBackup(path string, backup *artifactBackup) error {
	if backup.absent {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf(messages.UpgradeRestoreRemoveFmt, path, err)
		}
		return nil
	}
	if err := fsutil.WriteFileAtomic(path, backup.content, backup.perm); err != nil {
		return fmt.Errorf(messages.UpgradeRestoreWriteFmt, path, err)
	}
	return nil
}
