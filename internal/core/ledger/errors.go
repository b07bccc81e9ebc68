package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that no ledger has been persisted yet
	ErrNotFound = errors.New("ledger not found")

	// ErrInvalidInput indicates that a line did not hold exactly one kanji.
	// It is the only recoverable error of the interactive loop.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownKanji indicates that the kanji has never been recorded
	ErrUnknownKanji = errors.New("kanji not recorded")
)

// ConfigError is returned when the notebook geometry is unusable.
type ConfigError struct {
	Field string
	Value string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be a positive integer", e.Field, e.Value)
}

// CorruptError is returned when the data file exists but cannot be trusted.
type CorruptError struct {
	Path string
	Err  error
}

func (e CorruptError) Error() string {
	return fmt.Sprintf("ledger %s is corrupt: %v", e.Path, e.Err)
}

func (e CorruptError) Unwrap() error {
	return e.Err
}

// PersistError is returned when the ledger could not be written back.
// In-memory and on-disk state have diverged once it is seen.
type PersistError struct {
	Path string
	Err  error
}

func (e PersistError) Error() string {
	return fmt.Sprintf("failed to save ledger to %s: %v", e.Path, e.Err)
}

func (e PersistError) Unwrap() error {
	return e.Err
}
