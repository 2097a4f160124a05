// Package attest hashes loader files and manages their executable bit.
package attest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/conn-castle/patch-loader/internal/logging"
	"github.com/conn-castle/patch-loader/internal/messages"
)

var (
	// ErrIO marks a file that is missing, unreadable, or unwritable.
	ErrIO = errors.New("loader file i/o failed")
	// ErrPermissionTool marks a failed or unavailable permission tool. It is only ever logged.
	ErrPermissionTool = errors.New("permission tool failed")
)

// DefaultChmodPath is the permission tool invoked by MarkExecutable.
const DefaultChmodPath = "/bin/chmod"

// ContentHash returns the lowercase hex SHA-256 digest of the file at path.
func ContentHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf(messages.AttestOpenFileFmt+": %w", path, err, ErrIO)
	}
	defer func() { _ = file.Close() }()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf(messages.AttestHashFileFmt+": %w", path, err, ErrIO)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// HashBytes returns the digest ContentHash would produce for a file holding data.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Attestor runs the best-effort executable-bit step.
type Attestor struct {
	// GOOS selects the permission policy; empty means runtime.GOOS.
	GOOS string
	// ChmodPath is the permission tool; empty means DefaultChmodPath.
	ChmodPath string
	Runner    CommandRunner
	Logger    logging.Sink
}

// NewAttestor returns an Attestor for the running platform.
func NewAttestor(logger logging.Sink) *Attestor {
	return &Attestor{Runner: ExecRunner{}, Logger: logger}
}

// MarkExecutable sets the executable bit on path. It never fails: platforms without an
// executable bit are skipped, and tool failures are logged as ErrPermissionTool.
func (a *Attestor) MarkExecutable(path string) {
	logger := a.logger()
	if !a.hasExecBit() {
		logger.Debug(messages.AttestMarkExecutableSkip, "file", path)
		return
	}
	if err := a.chmod(path); err != nil {
		logger.Error(messages.AttestMarkExecutableFailed, "file", path, "err", err)
		return
	}
	logger.Debug(messages.AttestMarkExecutableDone, "file", path)
}

func (a *Attestor) chmod(path string) error {
	runner := a.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	tool := a.ChmodPath
	if tool == "" {
		tool = DefaultChmodPath
	}
	_, stderr, code, err := runner.Run(tool, "+x", path)
	if err != nil {
		return fmt.Errorf(messages.AttestChmodToolFailedFmt+": %w", tool, path, code, err, ErrPermissionTool)
	}
	if code != 0 {
		return fmt.Errorf(messages.AttestChmodToolStderrFmt+": %w", tool, path, code, strings.TrimSpace(string(stderr)), ErrPermissionTool)
	}
	return nil
}

func (a *Attestor) hasExecBit() bool {
	goos := a.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	return goos != "windows"
}

func (a *Attestor) logger() logging.Sink {
	if a.Logger == nil {
		return logging.Discard()
	}
	return a.Logger
}
