package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/aki/kanjinote/internal/core/logger"
)

// Configurator supplies the notebook geometry for a brand new ledger.
type Configurator interface {
	Configure(ctx context.Context) (Config, error)
}

// ConfiguratorFunc adapts a function to Configurator.
type ConfiguratorFunc func(ctx context.Context) (Config, error)

// Configure implements Configurator
func (f ConfiguratorFunc) Configure(ctx context.Context) (Config, error) {
	return f(ctx)
}

// Service drives the read-modify-persist cycle over one ledger.
type Service struct {
	ledger  *Ledger
	store   *Store
	logger  logger.Logger
	created bool
}

// Open loads the ledger from store. When none exists yet, setup is asked
// for the notebook geometry and the new ledger is saved right away.
func Open(ctx context.Context, store *Store, setup Configurator, log logger.Logger) (*Service, error) {
	if log == nil {
		log = logger.Nop()
	}

	l, err := store.Load(ctx)
	if err == nil {
		log.Info("ledger loaded", "path", store.Path(), "kanji", len(l.Items))
		return &Service{ledger: l, store: store, logger: log}, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	log.Info("no ledger found, creating a new one", "path", store.Path())
	cfg, err := setup.Configure(ctx)
	if err != nil {
		return nil, err
	}
	l, err = New(cfg)
	if err != nil {
		return nil, err
	}
	if err := store.Save(ctx, l); err != nil {
		return nil, err
	}
	return &Service{ledger: l, store: store, logger: log, created: true}, nil
}

// Created reports whether Open had to create the ledger.
func (s *Service) Created() bool {
	return s.created
}

// Ledger returns the active ledger. Callers must not modify it.
func (s *Service) Ledger() *Ledger {
	return s.ledger
}

// Record validates one line of input, records the kanji on it and saves
// the ledger. ErrInvalidInput leaves the ledger untouched; any other error
// is fatal for the session.
func (s *Service) Record(ctx context.Context, line string) (Outcome, error) {
	kanji, err := ParseKanji(line)
	if err != nil {
		s.logger.Debug("rejected input", "input", line)
		return Outcome{}, err
	}

	out := s.ledger.Record(kanji)
	if err := s.store.Save(ctx, s.ledger); err != nil {
		return out, fmt.Errorf("recording %c: %w", kanji, err)
	}

	s.logger.Debug("kanji recorded",
		"kanji", string(kanji),
		"occasion", out.Occasion,
		"opened", out.Opened,
		"current_id", s.ledger.CurrentID,
	)
	return out, nil
}
