//go:build windows

package filemanager

import (
	"os"
	"strings"
	"time"
)

const readAttempts = 5

// readFileWithRetry retries sharing violations with exponential backoff.
func readFileWithRetry(path string) ([]byte, error) {
	var err error
	for i := 0; i < readAttempts; i++ {
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !os.IsPermission(err) && !isFileLocked(err) {
			return nil, err
		}
		time.Sleep(time.Duration(10*(1<<uint(i))) * time.Millisecond)
	}
	return nil, err
}

func isFileLocked(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "being used by another process") ||
		strings.Contains(msg, "The process cannot access")
}
