//go:build !windows

package filemanager

import "github.com/gofrs/flock"

// createLock creates a file lock for the given path.
// On Unix, the sidecar lock file survives renames of the data file.
func createLock(path string) *flock.Flock {
	return newLock(path)
}

// cleanupLockFile is a no-op on Unix systems; the lock file is reused.
func cleanupLockFile(path string) {}
