package utils

import (
	"os"
	"path/filepath"
)

// IsFile tests wether given path exists and is a regular file
func IsFile(filePath string) bool {
	file, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return file.Mode().IsRegular()
}

// IsDirectory tests wether given path exists and is a directory
func IsDirectory(dirPath string) bool {
	dir, err := os.Stat(dirPath)
	if err != nil {
		return false
	}

	return dir.IsDir()
}

// ParentDirectory returns the directory a file at filePath would be created in
func ParentDirectory(filePath string) string {
	return filepath.Dir(filepath.Clean(filePath))
}
