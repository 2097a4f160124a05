package upgrade

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCoordinator replays fixed phase results.
type scriptedCoordinator struct {
	NoMigration
	states    []State
	phaseOne  bool
	recovered bool
	calls     []string
	state     State
}

func (s *scriptedCoordinator) State() State { return s.state }

func (s *scriptedCoordinator) UpdateState() State {
	s.calls = append(s.calls, "update")
	if len(s.states) > 0 {
		s.state = s.states[0]
		s.states = s.states[1:]
	}
	return s.state
}

func (s *scriptedCoordinator) FollowToPhaseOne() bool {
	s.calls = append(s.calls, "one")
	return s.phaseOne
}

func (s *scriptedCoordinator) HandleError() bool {
	s.calls = append(s.calls, "recover")
	return s.recovered
}

func TestDriveAlreadyLatest(t *testing.T) {
	c := &scriptedCoordinator{states: []State{Latest}}
	report, err := Drive(c)
	require.NoError(t, err)
	assert.Equal(t, Report{Initial: Latest, Final: Latest}, report)
	assert.Equal(t, []string{"update"}, c.calls)
}

func TestDriveOutdatedToLatest(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.WriteFile(target.path, []byte("v1"), 0o644))
	c := NewArtifactCoordinator("LinuxUpgrade", target, nil)

	report, err := Drive(c)
	require.NoError(t, err)
	assert.Equal(t, Outdated, report.Initial)
	assert.Equal(t, Latest, report.Final)
	assert.True(t, report.PhaseOne)
	assert.False(t, report.PhaseTwo)
	assert.False(t, report.PhaseThree)
	assert.False(t, report.Recovered)
}

func TestDrivePhaseOneFailureRecovers(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.WriteFile(target.path, []byte("v1"), 0o644))
	target.installErr = errors.New("read-only filesystem")
	c := NewArtifactCoordinator("LinuxUpgrade", target, nil)

	report, err := Drive(c)
	require.ErrorIs(t, err, ErrUpgradeFailed)
	assert.Contains(t, err.Error(), "previous artifact restored")
	assert.True(t, report.Recovered)
	assert.Equal(t, Outdated, report.Final)
}

func TestDriveStillOutdatedAfterPhaseOne(t *testing.T) {
	c := &scriptedCoordinator{states: []State{Outdated, Outdated, Outdated}, phaseOne: true}
	report, err := Drive(c)
	require.ErrorIs(t, err, ErrUpgradeFailed)
	assert.Contains(t, err.Error(), "still outdated")
	assert.Contains(t, err.Error(), "manually")
	assert.False(t, report.Recovered)
	assert.Equal(t, []string{"update", "one", "update", "recover", "update"}, c.calls)
}

func TestDriveNilCoordinator(t *testing.T) {
	_, err := Drive(nil)
	assert.ErrorIs(t, err, ErrUpgradeFailed)
}
