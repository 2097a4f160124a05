package messages

// Config messages for the tool settings file and the generated launch script.
const (
	// ConfigReadFileFmt formats settings file read errors.
	ConfigReadFileFmt         = "failed to read config file %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "config %s contains unrecognized keys: %v."
	ConfigValidationGuidance  = "Fix the file or remove it to use defaults."
	ConfigPlatformInvalidFmt  = "%s: game.platform must be one of darwin, linux, windows (got %q)"
	ConfigLogLevelInvalidFmt  = "%s: log.level must be one of debug, trace, info, warn, warning, error, off, none, disabled (got %q)"
	ConfigExpandPathFmt       = "%s: expand %s: %w"
	ConfigGameDirRequired     = "%s: game.dir must not be empty"
	ConfigDefaultsSource      = "defaults"

	// LaunchConfigTooFewLinesFmt formats short launch script decode failures.
	LaunchConfigTooFewLinesFmt   = "launch script has %d lines, layout requires %d"
	LaunchConfigMissingAssignFmt = "line %d: expected key=value, got %q"
	LaunchConfigInvalidBoolFmt   = "line %d: invalid enabled flag %q"
	LaunchConfigTargetCharFmt    = "target assembly %q contains %q, which the launch script cannot carry"
	LaunchConfigTargetEdgeFmt    = "target assembly %q must not start or end with ';'"
)
