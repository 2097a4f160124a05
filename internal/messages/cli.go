package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse           = "patchloader"
	RootShort         = "Install and manage the doorstop mod loader"
	RootVersionFlag   = "Print version and exit"
	RootFlagConfig    = "Path to patchloader.toml"
	RootFlagGameDir   = "Game directory (overrides game.dir)"
	RootFlagLogLevel  = "Log level: debug, info, warn, error, off (overrides log.level)"
	RootLoadConfigFmt = "load settings: %w"
	RootFlagsSource   = "flags"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	StatusUse            = "status"
	StatusShort          = "Show loader installation and launch script state"
	StatusPlatformFmt    = "Platform:          %s\n"
	StatusGameDirFmt     = "Game directory:    %s\n"
	StatusCapabilityFmt  = "Supported: %s  Can enable: %s  Requires restart: %s\n"
	StatusInstalledFmt   = "Artifact:          %s (%s)\n"
	StatusUpgradeFmt     = "Upgrade state:     %s\n"
	StatusConfigFmt      = "Launch script:     %s (%s)\n"
	StatusTargetFmt      = "Target assembly:   %s\n"
	StatusTargetDriftFmt = "                   differs from loader.target_assembly (%s)\n"
	StatusPreloadFmt     = "User preload:      %s\n"
	StatusNotInstalled   = "not installed"
	StatusInstalled      = "installed"
	StatusConfigMissing  = "missing"
	StatusConfigInvalid  = "unreadable"
	StatusYes            = "yes"
	StatusNo             = "no"
	StatusTargetNotSet   = "(not set)"
	StatusUnsupportedFmt = "No loader variant for %s.\n"

	InstallUse             = "install"
	InstallShort           = "Install the loader artifact and an enabled launch script"
	InstallFlagYes         = "Skip the confirmation prompt"
	InstallPromptTitle     = "Install the mod loader?"
	InstallDoneFmt         = "Installed %s and %s\n"
	InstallRestartNote     = "Restart the game to apply the change."
	InstallCancelled       = "Install cancelled."
	InstallNeedsTargetFmt  = "loader.target_assembly is not set; set it in patchloader.toml or %s"
	UninstallUse           = "uninstall"
	UninstallShort         = "Remove the loader artifact and launch script"
	UninstallPromptTitle   = "Remove the mod loader?"
	UninstallDoneFmt       = "Removed loader files from %s\n"
	UninstallCancelled     = "Uninstall cancelled."
	ConfirmRequiresTermFmt = "%s needs confirmation; re-run with --yes in a non-interactive shell"

	EnableUse     = "enable"
	EnableShort   = "Set the launch script to load mods"
	EnableDoneFmt = "Loader enabled (%s)\n"

	DisableUse     = "disable"
	DisableShort   = "Set the launch script to skip mod loading"
	DisableDoneFmt = "Loader disabled (%s)\n"

	UpgradeUse      = "upgrade"
	UpgradeShort    = "Replace an outdated loader artifact with the packaged version"
	UpgradeUpToDate = "Loader artifact is already the latest version."
	UpgradeDoneFmt  = "Loader artifact upgraded (%s -> %s)\n"

	ConfigUse        = "config"
	ConfigShort      = "Print the launch script or its diff against a regenerated one"
	ConfigFlagDiff   = "Show a unified diff between the on-disk script and a regenerated one"
	ConfigNoDiff     = "Launch script matches the generated version."
	ConfigMissingFmt = "launch script %s does not exist; run `patchloader install`"
)
