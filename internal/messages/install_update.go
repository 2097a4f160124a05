package messages

// Loader manager and upgrade messages.
const (
	// LoaderPlatformUnsupportedFmt indicates the platform has no loader variant.
	LoaderPlatformUnsupportedFmt = "platform %q is not supported"
	LoaderCannotEnableFmt        = "loader cannot be enabled on platform %q"
	LoaderTargetAssemblyRequired = "target assembly path is required when the loader is enabled"
	LoaderCreateArtifactFmt      = "failed to create loader artifact %s: %w"
	LoaderCopyArtifactFmt        = "failed to copy loader artifact to %s: %w"
	LoaderCloseArtifactFmt       = "failed to close loader artifact %s: %w"
	LoaderRemoveFileFmt          = "failed to remove %s: %w"
	LoaderWriteConfigFmt         = "failed to write loader config %s: %w"
	LoaderReadConfigFmt          = "failed to read loader config %s: %w"
	LoaderParseConfigFmt         = "failed to parse loader config %s: %w"
	LoaderInstantiatingFmt       = "Instantiating %s loader manager"
	LoaderHashFailed             = "Could not calculate hash for loader artifact"
	LoaderCopyingStream          = "Copying stream."
	LoaderStatFailed             = "stat failed"
	LoaderReplacingConfig        = "Replacing unreadable loader config"
	LoaderInstalling             = "Installing loader artifact"
	LoaderInstalled              = "Loader artifact installed"
	LoaderInstallFailed          = "Loader artifact install failed"
	LoaderUninstalled            = "Loader removed"
	LoaderUninstallFailed        = "Loader removal failed"
	LoaderConfigWritten          = "Loader config written"
	LoaderConfigWriteFailed      = "Loader config write failed"
	LoaderConfigParsed           = "Loader config parsing complete"
	LoaderConfigParseFailed      = "Loader config parsing failed"
	LoaderGrantExecute           = "Granting execute permission to loader config"
	LoaderStatusEnabled          = "enabled"
	LoaderStatusDisabled         = "disabled"
	LoaderUnsupportedMessage     = "The loader is not available on this platform."

	// UpgradeStateUnknown is the display name of the unknown upgrade state.
	UpgradeStateUnknown  = "unknown"
	UpgradeStateLatest   = "latest"
	UpgradeStateOutdated = "outdated"

	UpgradeAttemptingFmt        = "%s: Attempting to update %s"
	UpgradeSuccessfulFmt        = "%s: Update successful"
	UpgradeFailedFmt            = "%s: Update failed"
	UpgradeBackupFailedFmt      = "%s: Could not back up existing artifact"
	UpgradeRestoringFmt         = "%s: Restoring previous artifact"
	UpgradeRestoreFailedFmt     = "%s: Restore failed"
	UpgradeRestoredFmt          = "%s: Previous artifact restored"
	UpgradeNoBackupFmt          = "%s: No backup available; manual intervention required"
	UpgradeCoordinatorRequired  = "upgrade coordinator is required"
	UpgradePhaseOneFailed       = "loader upgrade failed while replacing the artifact"
	UpgradeStillOutdated        = "loader artifact is still outdated after replacement"
	UpgradeRecoveredSuffix      = "; previous artifact restored"
	UpgradeManualRecoverySuffix = "; automated recovery unavailable, reinstall the loader manually"
	UpgradeReadBackupFmt        = "read %s for backup: %w"
	UpgradeStatBackupFmt        = "stat %s for backup: %w"
	UpgradeRestoreWriteFmt      = "restore %s: %w"
	UpgradeRestoreRemoveFmt     = "remove partial %s: %w"
)
