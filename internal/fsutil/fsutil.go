// Package fsutil provides filesystem helpers shared by the loader manager.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/conn-castle/patch-loader/internal/messages"
)

var (
	createTemp = os.CreateTemp
	rename     = os.Rename
)

// WriteFileAtomic writes data to a temp file in the destination directory and renames it
// into place, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := createTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFileFmt, path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSetPermissionsFmt, path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFileFmt, path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSyncTempFileFmt, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFileFmt, path, err)
	}
	if err := rename(tmpName, path); err != nil {
		return fmt.Errorf(messages.FsutilRenameTempFileFmt, path, err)
	}
	committed = true
	return syncDir(dir)
}

// syncDir flushes directory metadata after a rename. Windows cannot open directories for sync.
func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf(messages.FsutilOpenDirFmt, dir, err)
	}
	defer func() { _ = d.Close() }()
	if err := d.Sync(); err != nil {
		return fmt.Errorf(messages.FsutilSyncDirFmt, dir, err)
	}
	return nil
}
