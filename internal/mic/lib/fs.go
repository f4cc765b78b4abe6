package lib

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteFileAtomic writes data to a temporary file next to dst and renames it
// over dst, so readers never observe a half-written file. If dst exists, it
// is replaced.
func WriteFileAtomic(fsys afero.Fs, dst string, data []byte) error {
	tmpFile, err := afero.TempFile(fsys, filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		fsys.Remove(tmpPath)
		return err
	}

	// Ensure the data is written to stable storage before it becomes visible.
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		fsys.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		fsys.Remove(tmpPath)
		return err
	}
	if err := fsys.Chmod(tmpPath, 0644); err != nil {
		fsys.Remove(tmpPath)
		return err
	}

	if err := fsys.Rename(tmpPath, dst); err != nil {
		fsys.Remove(tmpPath)
		return err
	}
	return nil
}
