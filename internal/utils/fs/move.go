package fs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// CreateExclusive creates a new file with O_EXCL so that an existing
// file is never overwritten.
func CreateExclusive(path string, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
}

// WriteExclusive creates path with the given contents, failing if it exists.
// A partially written file is removed.
func WriteExclusive(path string, data []byte, perm os.FileMode) error {
	f, err := CreateExclusive(path, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Exists reports whether something (file, dir or dangling symlink) is at path
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Move renames src to dst. When rename(2) fails (typically EXDEV) and
// fallbackCopy is true, the tree is copied and the source removed.
func Move(src, dst string, fallbackCopy bool) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0700); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	if Exists(dst) {
		return fmt.Errorf("destination already exists: %s", dst)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !fallbackCopy {
		return fmt.Errorf("failed to move file: %w", err)
	}

	slog.Debug("rename failed, falling back to copy and delete", "from", src, "to", dst, "error", err)

	opts := cp.Options{
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Shallow
		},
		PreserveTimes: true,
		Sync:          true,
	}
	if err := cp.Copy(src, dst, opts); err != nil {
		_ = os.RemoveAll(dst)
		return fmt.Errorf("failed to copy file: %w", err)
	}

	if err := os.RemoveAll(src); err != nil {
		// Keep exactly one copy around
		_ = os.RemoveAll(dst)
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}

	return nil
}
