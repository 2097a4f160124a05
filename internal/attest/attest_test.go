package attest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/patch-loader/internal/logging"
	"github.com/conn-castle/patch-loader/internal/testutil"
)

type fakeRunner struct {
	calls    [][]string
	stderr   []byte
	exitCode int32
	err      error
}

func (r *fakeRunner) Run(name string, args ...string) ([]byte, []byte, int32, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil, r.stderr, r.exitCode, r.err
}

func TestContentHashKnownDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doorstop.dylib")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	got, err := ContentHash(path)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)
	assert.Equal(t, got, HashBytes([]byte("abc")))
}

func TestContentHashIsDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0xff, 0x10}, 0o644))

	first, err := ContentHash(path)
	require.NoError(t, err)
	second, err := ContentHash(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestContentHashMissingFile(t *testing.T) {
	_, err := ContentHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarkExecutableRunsChmod(t *testing.T) {
	runner := &fakeRunner{}
	rec := &testutil.Recorder{}
	a := &Attestor{GOOS: "darwin", Runner: runner, Logger: rec}

	a.MarkExecutable("doorstop.dylib")

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{DefaultChmodPath, "+x", "doorstop.dylib"}, runner.calls[0])
	assert.False(t, rec.Has("error", ""))
}

func TestMarkExecutableWindowsIsSilentNoop(t *testing.T) {
	runner := &fakeRunner{err: errors.New("should not run")}
	rec := &testutil.Recorder{}
	a := &Attestor{GOOS: "windows", Runner: runner, Logger: rec}

	assert.NotPanics(t, func() { a.MarkExecutable("winhttp.dll") })
	assert.Empty(t, runner.calls)
	assert.False(t, rec.Has("error", ""))
}

func TestMarkExecutableToolFailureIsLoggedNotRaised(t *testing.T) {
	runner := &fakeRunner{exitCode: 127, err: errors.New("exec: \"/bin/chmod\": file does not exist")}
	rec := &testutil.Recorder{}
	a := &Attestor{GOOS: "linux", Runner: runner, Logger: rec}

	a.MarkExecutable("doorstop.so")

	require.True(t, rec.Has("error", "could not mark file executable"))
	var loggedErr error
	for _, e := range rec.Entries {
		for i := 0; i+1 < len(e.KeyVals); i += 2 {
			if e.KeyVals[i] == "err" {
				loggedErr, _ = e.KeyVals[i+1].(error)
			}
		}
	}
	assert.ErrorIs(t, loggedErr, ErrPermissionTool)
}

func TestMarkExecutableNonZeroExitIsLogged(t *testing.T) {
	runner := &fakeRunner{exitCode: 1, stderr: []byte("Operation not permitted\n")}
	rec := &testutil.Recorder{}
	a := &Attestor{GOOS: "darwin", Runner: runner, Logger: rec}

	a.MarkExecutable("Cities_Loader.sh")

	assert.True(t, rec.Has("error", "could not mark file executable"))
}

func TestMarkExecutableRealChmod(t *testing.T) {
	if _, err := os.Stat(DefaultChmodPath); err != nil {
		t.Skip("chmod not available")
	}
	path := filepath.Join(t.TempDir(), "Cities_Loader.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644))

	NewAttestor(logging.Discard()).MarkExecutable(path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o111)
}

func TestMarkExecutableNilLogger(t *testing.T) {
	a := &Attestor{GOOS: "linux", Runner: &fakeRunner{err: errors.New("boom")}}
	assert.NotPanics(t, func() { a.MarkExecutable("x") })
}
