package attest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/patch-loader/internal/testutil"
)

func TestExecRunnerSuccess(t *testing.T) {
	tool, argLog := testutil.WriteArgRecorder(t, t.TempDir(), "chmod")
	_, _, code, err := ExecRunner{}.Run(tool, "+x", "Cities_Loader.sh")
	require.NoError(t, err)
	assert.Equal(t, int32(0), code)

	data, err := os.ReadFile(argLog)
	require.NoError(t, err)
	assert.Equal(t, "+x\nCities_Loader.sh\n", string(data))
}

func TestExecRunnerExitCode(t *testing.T) {
	tool := testutil.WriteStubWithExit(t, t.TempDir(), "chmod", "operation not permitted", 2)
	_, stderr, code, err := ExecRunner{}.Run(tool)
	require.Error(t, err)
	assert.Equal(t, int32(2), code)
	assert.Equal(t, "operation not permitted", string(stderr))
}

func TestExecRunnerMissingBinary(t *testing.T) {
	_, _, code, err := ExecRunner{}.Run(filepath.Join(t.TempDir(), "no-such-tool"))
	require.Error(t, err)
	assert.NotEqual(t, int32(0), code)
}

func TestMarkExecutableWithFailingTool(t *testing.T) {
	dir := t.TempDir()
	tool := testutil.WriteStubWithExit(t, dir, "chmod", "read-only file system", 1)
	target := filepath.Join(dir, "doorstop.dylib")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	rec := &testutil.Recorder{}
	a := &Attestor{GOOS: "darwin", ChmodPath: tool, Runner: ExecRunner{}, Logger: rec}
	a.MarkExecutable(target)

	require.NotEmpty(t, rec.Entries)
	last := rec.Entries[len(rec.Entries)-1]
	assert.Equal(t, "error", last.Level)
}
