// Package filemanager provides process-safe YAML file persistence.
package filemanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// ErrLockTimeout is returned when acquiring a file lock times out
var ErrLockTimeout = errors.New("timeout acquiring file lock")

// ValidateFunc checks raw file content before it is decoded
type ValidateFunc func(content []byte) error

// DecodeError wraps failures to turn file content into a value.
// Callers use it to tell a damaged file from an unreadable one.
type DecodeError struct {
	Path string
	Err  error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// Manager reads and writes one YAML document type under a file lock
type Manager[T any] struct {
	// lockTimeout is the maximum time to wait for a file lock
	lockTimeout time.Duration
	validate    ValidateFunc
}

// Option configures a Manager
type Option func(*options)

type options struct {
	lockTimeout time.Duration
	validate    ValidateFunc
}

// WithLockTimeout sets how long Read and Write wait for the lock
func WithLockTimeout(d time.Duration) Option {
	return func(o *options) {
		o.lockTimeout = d
	}
}

// WithValidator runs fn on the raw content before decoding it
func WithValidator(fn ValidateFunc) Option {
	return func(o *options) {
		o.validate = fn
	}
}

// NewManager creates a new file manager
func NewManager[T any](opts ...Option) *Manager[T] {
	o := &options{lockTimeout: 5 * time.Second}
	for _, opt := range opts {
		opt(o)
	}
	return &Manager[T]{
		lockTimeout: o.lockTimeout,
		validate:    o.validate,
	}
}

// Read reads a file with a shared lock. Unknown fields are rejected.
// A missing file is reported with an error satisfying os.IsNotExist.
func (m *Manager[T]) Read(ctx context.Context, path string) (*T, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	lock := createLock(path)
	defer cleanupLockFile(path)

	lockCtx, cancel := context.WithTimeout(ctx, m.lockTimeout)
	defer cancel()

	locked, err := lock.TryRLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire read lock: %w", err)
	}
	if !locked {
		return nil, ErrLockTimeout
	}
	defer func() { _ = lock.Unlock() }()

	data, err := readFileWithRetry(path)
	if err != nil {
		return nil, err
	}

	if m.validate != nil {
		if err := m.validate(data); err != nil {
			return nil, DecodeError{Path: path, Err: err}
		}
	}

	var result T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&result); err != nil {
		return nil, DecodeError{Path: path, Err: err}
	}

	return &result, nil
}

// Write replaces a file with an exclusive lock held.
// Content goes to a temp file in the same directory which is synced and
// renamed over path, so a crash never leaves a truncated file behind.
func (m *Manager[T]) Write(ctx context.Context, path string, data *T) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	lock := createLock(path)
	defer cleanupLockFile(path)

	lockCtx, cancel := context.WithTimeout(ctx, m.lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	if !locked {
		return ErrLockTimeout
	}
	defer func() { _ = lock.Unlock() }()

	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempFile := tmp.Name()

	if _, err := tmp.Write(yamlData); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempFile, 0o644); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := atomicRename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// lockPath is the sidecar file the lock is taken on. Locking the data
// file itself would create it empty before the first write lands.
func lockPath(path string) string {
	return path + ".lock"
}

// newLock returns the flock guarding path.
func newLock(path string) *flock.Flock {
	return flock.New(lockPath(path))
}
