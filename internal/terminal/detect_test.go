package terminal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminalNil(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}

func TestIsTerminalRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.False(t, IsTerminal(f))
}

func TestIsInteractiveRequiresBothStreams(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	stdin := int(os.Stdin.Fd())
	isTerminal = func(fd int) bool { return fd == stdin }
	assert.False(t, IsInteractive())

	isTerminal = func(int) bool { return true }
	assert.True(t, IsInteractive())
}
