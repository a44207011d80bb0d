// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DirPermissions is the mode used for created output directories.
const DirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// ErrNotDirectory indicates an output path exists but is not a directory.
var ErrNotDirectory = errors.New("path exists and is not a directory")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDirs creates each dir under root if absent. Existing directories are
// left untouched; an existing non-directory is an error.
func EnsureDirs(root string, dirs ...string) error {
	for _, dir := range dirs {
		path := filepath.Join(root, dir)

		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return fmt.Errorf("%w: %s", ErrNotDirectory, path)
		case err == nil:
			continue
		case !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("checking %s: %w", path, err)
		}

		if err := os.MkdirAll(path, DirPermissions); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}
	return nil
}
