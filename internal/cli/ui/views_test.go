package ui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aki/kanjinote/internal/core/ledger"
)

func testLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, err := ledger.New(ledger.Config{KanjiPerRow: 1, RowsPerPage: 2})
	require.NoError(t, err)
	for _, r := range "漢字漢" {
		l.Record(r)
	}
	return l
}

func TestNewLedgerView(t *testing.T) {
	v := NewLedgerView("data.yaml", testLedger(t))

	assert.Equal(t, 3, v.NextID)
	assert.Equal(t, ledger.Position{Page: 2, Row: 2}, v.Next)
	require.Len(t, v.Entries, 2)
	assert.Equal(t, "漢", v.Entries[0].Kanji)
	assert.Equal(t, ledger.Position{Page: 2, Row: 1}, v.Entries[0].Current())
	assert.Equal(t, "字", v.Entries[1].Kanji)
}

func TestFormatter_JSON(t *testing.T) {
	c, out, _ := newTestConsole()
	f, err := NewFormatter(FormatJSON, c)
	require.NoError(t, err)
	assert.True(t, f.IsJSON())

	l := testLedger(t)
	entry, err := l.Lookup('漢')
	require.NoError(t, err)
	require.NoError(t, f.Output(NewEntryView('漢', entry, l)))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "漢", decoded["kanji"])
	slots := decoded["slots"].([]interface{})
	require.Len(t, slots, 2)
	assert.Equal(t, map[string]interface{}{"id": 2.0, "page": 2.0, "row": 1.0}, slots[1])
}

func TestFormatter_Pretty(t *testing.T) {
	c, out, _ := newTestConsole()
	f, err := NewFormatter(FormatPretty, c)
	require.NoError(t, err)
	assert.False(t, f.IsJSON())

	require.NoError(t, f.Output("hello"))
	assert.Equal(t, "hello\n", out.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input     string
		want      OutputFormat
		wantError bool
	}{
		{"", FormatPretty, false},
		{"pretty", FormatPretty, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantError {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestConsole_PrintLedger(t *testing.T) {
	t.Run("with entries", func(t *testing.T) {
		c, out, _ := newTestConsole()
		c.PrintLedger(NewLedgerView("data.yaml", testLedger(t)))

		assert.Contains(t, out.String(), "data.yaml")
		assert.Contains(t, out.String(), "KANJI")
		assert.Contains(t, out.String(), "漢")
		assert.Contains(t, out.String(), "page #2, line #1")
	})

	t.Run("empty", func(t *testing.T) {
		l, err := ledger.New(ledger.Config{KanjiPerRow: 3, RowsPerPage: 5})
		require.NoError(t, err)

		var buf bytes.Buffer
		c := NewConsole(&buf, &buf)
		c.PrintLedger(NewLedgerView("data.yaml", l))

		assert.Contains(t, buf.String(), "No kanji recorded yet")
		assert.NotContains(t, buf.String(), "KANJI")
	})
}
