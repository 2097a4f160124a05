// Package testutil writes stand-in executables for tests that shell out.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteStubWithExit writes a shell stub named name in dir that prints stderr to standard
// error and exits with exitCode. It returns the stub path and skips the test where
// shell stubs cannot run.
func WriteStubWithExit(t *testing.T, dir string, name string, stderr string, exitCode int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n"
	if stderr != "" {
		script += fmt.Sprintf("printf '%%s' %q >&2\n", stderr)
	}
	script += fmt.Sprintf("exit %d\n", exitCode)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteArgRecorder writes a shell stub that appends its arguments, one per line, to a
// log file and exits 0. It returns the stub path and the log path.
func WriteArgRecorder(t *testing.T, dir string, name string) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(dir, name)
	logPath := filepath.Join(dir, name+".args")
	script := fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  printf '%%s\\n' \"$arg\" >> %q\ndone\n", logPath)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path, logPath
}
