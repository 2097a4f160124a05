// Package upgrade migrates an existing loader installation to the packaged version
// through independent, separately failable phases.
package upgrade

import "github.com/conn-castle/patch-loader/internal/messages"

// State is the result of the last version check.
type State int

const (
	// Unknown means no version check has run yet.
	Unknown State = iota
	// Latest means the installed artifact matches the packaged one.
	Latest
	// Outdated means the artifact is missing, damaged, or from another version.
	Outdated
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case Latest:
		return messages.UpgradeStateLatest
	case Outdated:
		return messages.UpgradeStateOutdated
	default:
		return messages.UpgradeStateUnknown
	}
}
