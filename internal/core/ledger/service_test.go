package ledger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSetup(cfg Config) Configurator {
	return ConfiguratorFunc(func(ctx context.Context) (Config, error) {
		return cfg, nil
	})
}

func failingSetup(t *testing.T) Configurator {
	return ConfiguratorFunc(func(ctx context.Context) (Config, error) {
		t.Fatal("setup must not run for an existing ledger")
		return Config{}, nil
	})
}

func TestOpen_CreatesLedger(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.yaml")
	store := NewStore(path, nil)

	svc, err := Open(ctx, store, fixedSetup(Config{KanjiPerRow: 4, RowsPerPage: 10}), nil)
	require.NoError(t, err)

	assert.True(t, svc.Created())
	assert.Empty(t, svc.Ledger().Items)
	assert.Equal(t, 0, svc.Ledger().CurrentID)
	assert.Equal(t, 4, svc.Ledger().KanjiPerRow)
	assert.Equal(t, 10, svc.Ledger().RowsPerPage)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "current_id: 0")
}

func TestOpen_LoadsExisting(t *testing.T) {
	ctx := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "data.yaml"), nil)

	first, err := Open(ctx, store, fixedSetup(Config{KanjiPerRow: 3, RowsPerPage: 5}), nil)
	require.NoError(t, err)
	_, err = first.Record(ctx, "漢")
	require.NoError(t, err)

	second, err := Open(ctx, store, failingSetup(t), nil)
	require.NoError(t, err)
	assert.False(t, second.Created())
	assert.Equal(t, first.Ledger(), second.Ledger())
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("setup failure", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "data.yaml"), nil)
		setupErr := ConfigError{Field: "kanji per row", Value: "abc"}

		_, err := Open(ctx, store, ConfiguratorFunc(func(ctx context.Context) (Config, error) {
			return Config{}, setupErr
		}), nil)

		assert.ErrorIs(t, err, setupErr)
		_, statErr := os.Stat(store.Path())
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("zero geometry", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "data.yaml"), nil)

		_, err := Open(ctx, store, fixedSetup(Config{KanjiPerRow: 0, RowsPerPage: 5}), nil)

		var cfgErr ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("corrupt file is not replaced", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.yaml")
		require.NoError(t, os.WriteFile(path, []byte("garbage: ["), 0o644))

		_, err := Open(ctx, NewStore(path, nil), failingSetup(t), nil)

		var corrupt CorruptError
		require.ErrorAs(t, err, &corrupt)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "garbage: [", string(content))
	})
}

func TestService_Record(t *testing.T) {
	ctx := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "data.yaml"), nil)
	svc, err := Open(ctx, store, fixedSetup(Config{KanjiPerRow: 3, RowsPerPage: 5}), nil)
	require.NoError(t, err)

	t.Run("records and persists", func(t *testing.T) {
		out, err := svc.Record(ctx, "漢\n")
		require.NoError(t, err)
		assert.Equal(t, '漢', out.Kanji)
		assert.False(t, out.Found)

		persisted, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, svc.Ledger(), persisted)
	})

	t.Run("invalid input leaves state alone", func(t *testing.T) {
		before, err := os.ReadFile(store.Path())
		require.NoError(t, err)

		_, err = svc.Record(ctx, "AB")
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 1, svc.Ledger().CurrentID)
		assert.Len(t, svc.Ledger().Items, 1)

		after, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("save failure is fatal", func(t *testing.T) {
		blocked := NewStore(filepath.Join(store.Path(), "nested.yaml"), nil)
		broken := &Service{ledger: svc.Ledger(), store: blocked, logger: svc.logger}

		_, err := broken.Record(ctx, "字")

		var persistErr PersistError
		require.ErrorAs(t, err, &persistErr)
		assert.False(t, errors.Is(err, ErrInvalidInput))
	})
}
