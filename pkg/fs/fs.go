// Package fs provides filesystem related constants and functions.
package fs

import (
	"os"
)

// FileExists returns true if file exists and is not a directory.
func FileExists(fileName string) bool {
	if fileName == "" {
		return false
	}

	info, err := os.Stat(fileName)

	return err == nil && !info.IsDir()
}

// PathExists tests if a path exists and is a directory or symlink.
func PathExists(path string) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

// MkdirAll creates a directory including all parents.
func MkdirAll(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}
