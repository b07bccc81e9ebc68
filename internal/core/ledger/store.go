package ledger

import (
	"context"
	"errors"
	"os"

	"github.com/aki/kanjinote/internal/core/logger"
	"github.com/aki/kanjinote/internal/filemanager"
)

// DefaultFile is the data file used when no path is given, relative to
// the working directory.
const DefaultFile = "data.yaml"

// Store persists a Ledger as a YAML file.
type Store struct {
	path   string
	files  *filemanager.Manager[Ledger]
	logger logger.Logger
}

// NewStore creates a store backed by the file at path.
func NewStore(path string, log logger.Logger) *Store {
	if path == "" {
		path = DefaultFile
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		path:   path,
		files:  filemanager.NewManager[Ledger](filemanager.WithValidator(ValidateYAML)),
		logger: log.With("path", path),
	}
}

// Path returns the data file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the ledger. It returns ErrNotFound when the data
// file does not exist and a CorruptError when it cannot be trusted.
func (s *Store) Load(ctx context.Context) (*Ledger, error) {
	l, err := s.files.Read(ctx, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		var decodeErr filemanager.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, CorruptError{Path: s.path, Err: decodeErr.Err}
		}
		return nil, err
	}

	if l.Items == nil {
		l.Items = make(map[string]*Entry)
	}
	if err := l.Validate(); err != nil {
		return nil, CorruptError{Path: s.path, Err: err}
	}

	s.logger.Debug("ledger loaded", "kanji", len(l.Items), "current_id", l.CurrentID)
	return l, nil
}

// Save replaces the data file with l.
func (s *Store) Save(ctx context.Context, l *Ledger) error {
	if err := s.files.Write(ctx, s.path, l); err != nil {
		return PersistError{Path: s.path, Err: err}
	}
	s.logger.Debug("ledger saved", "kanji", len(l.Items), "current_id", l.CurrentID)
	return nil
}
