package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomicWritesContentAndPerm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Cities_Loader.sh")

	if err := WriteFileAtomic(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "#!/bin/sh\n" {
		t.Fatalf("unexpected content %q", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Fatalf("expected owner execute bit, got %v", info.Mode().Perm())
	}
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doorstop.dylib")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

func TestWriteFileAtomicRenameFailureLeavesNoTemp(t *testing.T) {
	orig := rename
	t.Cleanup(func() { rename = orig })
	rename = func(string, string) error { return errors.New("boom") }

	dir := t.TempDir()
	path := filepath.Join(dir, "out")
	if err := WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Fatalf("expected rename error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected temp file cleanup, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out")
	if err := WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
