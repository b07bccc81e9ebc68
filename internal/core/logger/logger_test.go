package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults to warn level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(WithOutput(&buf))

		log.Info("info message")
		log.Warn("warn message")

		assert.NotContains(t, buf.String(), "info message")
		assert.Contains(t, buf.String(), "warn message")
	})

	t.Run("debug option", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(WithOutput(&buf), WithDebug())

		log.Debug("kanji recorded", "kanji", "漢")

		assert.Contains(t, buf.String(), "kanji recorded")
		assert.Contains(t, buf.String(), "kanji=漢")
	})

	t.Run("respects log level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(WithOutput(&buf), WithLevel(slog.LevelError))

		log.Warn("warn message")
		log.Error("error message")

		assert.NotContains(t, buf.String(), "warn message")
		assert.Contains(t, buf.String(), "error message")
	})
}

func TestFormats(t *testing.T) {
	t.Run("JSON format", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(WithOutput(&buf), WithFormat(FormatJSON))

		log.Warn("ledger saved", "path", "data.yaml")

		assert.Contains(t, buf.String(), `"msg":"ledger saved"`)
		assert.Contains(t, buf.String(), `"path":"data.yaml"`)
	})

	t.Run("Text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(WithOutput(&buf), WithFormat(FormatText))

		log.Warn("ledger saved", "path", "data.yaml")

		assert.Contains(t, buf.String(), "path=data.yaml")
	})
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithOutput(&buf)).With("path", "notes.yaml")

	log.Warn("test message")

	assert.Contains(t, buf.String(), "path=notes.yaml")
}

func TestNop(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Nop logger should not panic when called
	log.Debug("test")
	log.Info("test")
	log.Warn("test")
	log.Error("test")
	log.With("k", "v").Info("test")
}

func TestContext(t *testing.T) {
	t.Run("WithContext and FromContext", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithContext(context.Background(), New(WithOutput(&buf)))

		FromContext(ctx).Warn("test message")

		assert.Contains(t, buf.String(), "test message")
	})

	t.Run("FromContext returns Nop when no logger", func(t *testing.T) {
		FromContext(context.Background()).Info("test message")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelWarn, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	got, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	got, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, got)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
