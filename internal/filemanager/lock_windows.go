//go:build windows

package filemanager

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// createLock creates a file lock for the given path.
func createLock(path string) *flock.Flock {
	// Ensure the directory exists for the lock file
	_ = os.MkdirAll(filepath.Dir(lockPath(path)), 0o755)

	return newLock(path)
}

// cleanupLockFile removes the lock file if it is old enough.
// It may still be held by another process, so failures are ignored.
func cleanupLockFile(path string) {
	info, err := os.Stat(lockPath(path))
	if err == nil && time.Since(info.ModTime()) > 5*time.Second {
		_ = os.Remove(lockPath(path))
	}
}
