package fs

import (
	iofs "io/fs"
	"path/filepath"
	"strings"
)

// IsUnsafePath checks if the given path is unsafe to trash
func IsUnsafePath(path string) bool {
	// Check the raw input first so "." and ".." are caught before Clean
	base := filepath.Base(path)
	if base == "." || base == ".." {
		return true
	}

	if filepath.Clean(path) == "/" {
		return true
	}

	return strings.HasPrefix(path, "//")
}

// DirSize returns the total size of the regular files under path. For a
// file it is the file's own size; symlinks are not followed.
func DirSize(path string) (int64, error) {
	var size int64
	err := filepath.WalkDir(path, func(_ string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += info.Size()
		return nil
	})
	return size, err
}
