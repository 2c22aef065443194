package ioutils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrFileExists is returned by WriteNewFile when the destination is taken.
var ErrFileExists = errors.New("file already exists")

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists reports whether anything (file, directory, symlink) is at path.
// Errors other than "does not exist" are returned as-is.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteNewFile writes data to a file that must not exist yet.
//
// The file is created with mode 0644 and O_EXCL, so an existing file is never
// truncated; in that case ErrFileExists is returned. A partially written file
// is removed.
func WriteNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrFileExists)
		}
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
