//go:build !windows

package filemanager

import "os"

// readFileWithRetry reads path once; POSIX reads are not blocked by other
// processes holding the file open.
func readFileWithRetry(path string) ([]byte, error) {
	return os.ReadFile(path)
}
