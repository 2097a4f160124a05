package upgrade

import (
	"errors"
	"fmt"

	"github.com/conn-castle/patch-loader/internal/messages"
)

// ErrUpgradeFailed marks an upgrade that did not reach the Latest state.
var ErrUpgradeFailed = errors.New("loader upgrade failed")

// Report summarizes one Drive run.
type Report struct {
	Initial    State
	Final      State
	PhaseOne   bool
	PhaseTwo   bool
	PhaseThree bool
	// Recovered is true when HandleError put the previous installation back.
	Recovered bool
}

// Drive runs the upgrade protocol against c: it refreshes the state, returns early when
// already Latest, runs phase one, confirms Latest, then runs the optional phases.
// Any failure invokes HandleError and returns an error wrapping ErrUpgradeFailed.
func Drive(c Coordinator) (Report, error) {
	if c == nil {
		return Report{}, fmt.Errorf("%w: %s", ErrUpgradeFailed, messages.UpgradeCoordinatorRequired)
	}
	report := Report{Initial: c.UpdateState()}
	if report.Initial == Latest {
		report.Final = Latest
		return report, nil
	}

	report.PhaseOne = c.FollowToPhaseOne()
	if !report.PhaseOne {
		return recoverFrom(c, report, messages.UpgradePhaseOneFailed)
	}
	if c.UpdateState() != Latest {
		return recoverFrom(c, report, messages.UpgradeStillOutdated)
	}

	report.PhaseTwo = c.FollowToPhaseTwo()
	report.PhaseThree = c.FollowToPhaseThree()
	report.Final = c.UpdateState()
	return report, nil
}

func recoverFrom(c Coordinator, report Report, reason string) (Report, error) {
	report.Recovered = c.HandleError()
	report.Final = c.UpdateState()
	suffix := messages.UpgradeManualRecoverySuffix
	if report.Recovered {
		suffix = messages.UpgradeRecoveredSuffix
	}
	return report, fmt.Errorf("%w: %s%s", ErrUpgradeFailed, reason, suffix)
}
