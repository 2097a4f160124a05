package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the loader artifact, launch script, and target assembly"

	DoctorHealthCheckFmt = "Checking patch loader health in %s (%s)...\n"

	DoctorCheckNamePlatform = "Platform"
	DoctorCheckNameArtifact = "Artifact"
	DoctorCheckNameVersion  = "Version"
	DoctorCheckNameConfig   = "Config"
	DoctorCheckNameExec     = "Exec"
	DoctorCheckNameTarget   = "Target"

	DoctorPlatformSupportedFmt     = "Loader available for %s"
	DoctorPlatformUnsupportedFmt   = "No loader variant for %s; remaining checks skipped."
	DoctorPlatformUnsupportedHint  = "Run the game on macOS or Linux, or set game.platform in patchloader.toml."
	DoctorArtifactPresentFmt       = "Loader artifact present: %s"
	DoctorArtifactMissingFmt       = "Loader artifact missing: %s"
	DoctorArtifactMissingRecommend = "Run `patchloader install`."
	DoctorVersionLatest            = "Loader artifact matches the packaged version."
	DoctorVersionOutdated          = "Loader artifact differs from the packaged version."
	DoctorVersionOutdatedRecommend = "Run `patchloader upgrade`."
	DoctorConfigMissingFmt         = "Launch script missing: %s"
	DoctorConfigMissingRecommend   = "Run `patchloader install` or `patchloader enable`."
	DoctorConfigInvalidFmt         = "Launch script unreadable: %v"
	DoctorConfigInvalidRecommend   = "Run `patchloader config --diff` to inspect it, then `patchloader enable` to regenerate it."
	DoctorConfigEnabled            = "Launch script parsed; loader enabled."
	DoctorConfigDisabled           = "Launch script parsed; loader disabled."
	DoctorConfigDisabledRecommend  = "Run `patchloader enable` to load mods on next launch."
	DoctorExecOKFmt                = "Launch script is executable (%s)"
	DoctorExecMissingFmt           = "Launch script is not executable (%s)"
	DoctorExecMissingRecommendFmt  = "Run `chmod +x %s`."
	DoctorExecStatFailedFmt        = "Failed to stat launch script: %v"
	DoctorTargetOKFmt              = "Target assembly: %s"
	DoctorTargetDriftFmt           = "Launch script targets %s, expected %s"
	DoctorTargetDriftRecommend     = "Run `patchloader enable` after fixing loader.target_assembly, or rewrite the script with `patchloader install`."
	DoctorTargetMissingFmt         = "Target assembly not found: %s"
	DoctorTargetMissingRecommend   = "Install the mod that provides the target assembly, or fix loader.target_assembly."
	DoctorTargetUnset              = "No target assembly configured."
	DoctorTargetUnsetRecommendFmt  = "Set loader.target_assembly in patchloader.toml or %s."

	DoctorFailureSummary = "Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "All checks passed. The loader is ready."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       > "
	DoctorRecommendationIndent = "         "
)
