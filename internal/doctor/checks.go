package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/conn-castle/patch-loader/internal/config"
	"github.com/conn-castle/patch-loader/internal/launchconfig"
	"github.com/conn-castle/patch-loader/internal/loader"
	"github.com/conn-castle/patch-loader/internal/messages"
)

var statFunc = os.Stat

// Check runs every check against m. Checks after an unsupported platform are skipped.
func Check(m *loader.Manager) []Result {
	results := []Result{CheckPlatform(m)}
	if !m.PlatformSupported() {
		return results
	}
	results = append(results, CheckArtifact(m)...)

	configResults, settings, ok := CheckConfig(m)
	results = append(results, configResults...)
	if !ok {
		return results
	}
	results = append(results, CheckExecutable(m))
	results = append(results, CheckTarget(m, settings)...)
	return results
}

// CheckPlatform reports whether the active platform has a loader variant.
func CheckPlatform(m *loader.Manager) Result {
	name := m.Platform().Name
	if !m.PlatformSupported() {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNamePlatform,
			Message:        fmt.Sprintf(messages.DoctorPlatformUnsupportedFmt, name),
			Recommendation: messages.DoctorPlatformUnsupportedHint,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePlatform,
		Message:   fmt.Sprintf(messages.DoctorPlatformSupportedFmt, name),
	}
}

// CheckArtifact reports artifact presence and, when present, whether it is the packaged version.
func CheckArtifact(m *loader.Manager) []Result {
	if !m.IsInstalled() {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameArtifact,
			Message:        fmt.Sprintf(messages.DoctorArtifactMissingFmt, m.LoaderPath()),
			Recommendation: messages.DoctorArtifactMissingRecommend,
		}}
	}
	results := []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameArtifact,
		Message:   fmt.Sprintf(messages.DoctorArtifactPresentFmt, m.LoaderPath()),
	}}
	if m.IsLatestVersion() {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameVersion,
			Message:   messages.DoctorVersionLatest,
		})
	} else {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameVersion,
			Message:        messages.DoctorVersionOutdated,
			Recommendation: messages.DoctorVersionOutdatedRecommend,
		})
	}
	return results
}

// CheckConfig reads the launch script. ok is false when it is missing or does not decode.
func CheckConfig(m *loader.Manager) ([]Result, launchconfig.Settings, bool) {
	if !m.ConfigExists() {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigMissingFmt, m.ConfigPath()),
			Recommendation: messages.DoctorConfigMissingRecommend,
		}}, launchconfig.Settings{}, false
	}
	settings, err := m.ReadConfig()
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigInvalidFmt, err),
			Recommendation: messages.DoctorConfigInvalidRecommend,
		}}, launchconfig.Settings{}, false
	}
	if !settings.Enabled {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        messages.DoctorConfigDisabled,
			Recommendation: messages.DoctorConfigDisabledRecommend,
		}}, settings, true
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   messages.DoctorConfigEnabled,
	}}, settings, true
}

// CheckExecutable reports whether the launch script carries an execute bit.
func CheckExecutable(m *loader.Manager) Result {
	path := m.ConfigPath()
	info, err := statFunc(path)
	if err != nil {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameExec,
			Message:   fmt.Sprintf(messages.DoctorExecStatFailedFmt, err),
		}
	}
	mode := info.Mode().Perm()
	if mode&0o111 == 0 {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameExec,
			Message:        fmt.Sprintf(messages.DoctorExecMissingFmt, mode),
			Recommendation: fmt.Sprintf(messages.DoctorExecMissingRecommendFmt, path),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameExec,
		Message:   fmt.Sprintf(messages.DoctorExecOKFmt, mode),
	}
}

// CheckTarget compares the scripted target assembly with the expected one and checks
// that the file exists.
func CheckTarget(m *loader.Manager, settings launchconfig.Settings) []Result {
	target := strings.TrimSpace(settings.TargetAssembly)
	if target == "" {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameTarget,
			Message:        messages.DoctorTargetUnset,
			Recommendation: fmt.Sprintf(messages.DoctorTargetUnsetRecommendFmt, config.EnvTargetAssembly),
		}}
	}

	var results []Result
	if !m.TargetMatchesExpected(settings) {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameTarget,
			Message:        fmt.Sprintf(messages.DoctorTargetDriftFmt, target, m.ExpectedTargetAssembly()),
			Recommendation: messages.DoctorTargetDriftRecommend,
		})
	}
	if _, err := statFunc(target); err != nil {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameTarget,
			Message:        fmt.Sprintf(messages.DoctorTargetMissingFmt, target),
			Recommendation: messages.DoctorTargetMissingRecommend,
		})
	}
	if len(results) == 0 {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTarget,
			Message:   fmt.Sprintf(messages.DoctorTargetOKFmt, target),
		})
	}
	return results
}
