package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf8"
)

// New creates an empty ledger for a notebook of the given geometry.
func New(cfg Config) (*Ledger, error) {
	if cfg.KanjiPerRow < 1 {
		return nil, ConfigError{Field: "kanji per row", Value: strconv.Itoa(cfg.KanjiPerRow)}
	}
	if cfg.RowsPerPage < 1 {
		return nil, ConfigError{Field: "rows per page", Value: strconv.Itoa(cfg.RowsPerPage)}
	}
	return &Ledger{
		Items:       make(map[string]*Entry),
		CurrentID:   0,
		KanjiPerRow: cfg.KanjiPerRow,
		RowsPerPage: cfg.RowsPerPage,
	}, nil
}

// Record writes one more occurrence of kanji into the ledger.
// The caller is responsible for persisting the result.
func (l *Ledger) Record(kanji rune) Outcome {
	key := string(kanji)
	entry, ok := l.Items[key]
	if !ok {
		id := l.allocate()
		l.Items[key] = &Entry{IDs: []int{id}, Occasions: 1}
		return Outcome{Kanji: kanji, SlotID: id, Occasion: 1}
	}

	out := Outcome{Kanji: kanji, Found: true, SlotID: entry.CurrentID()}
	entry.Occasions++
	out.Occasion = entry.Occasions
	if rowExhausted(entry.Occasions, l.KanjiPerRow) {
		out.Opened = true
		out.NewSlotID = l.allocate()
		entry.IDs = append(entry.IDs, out.NewSlotID)
	}
	return out
}

// rowExhausted reports whether writing occurrence number occasions needs a
// fresh row. The row is only swapped once the occurrence after a full row
// arrives, i.e. occasions mod kanjiPerRow == 1. A one-kanji row is full
// after every occurrence.
func rowExhausted(occasions, kanjiPerRow int) bool {
	if occasions < 2 {
		return false
	}
	return (occasions-1)%kanjiPerRow == 0
}

func (l *Ledger) allocate() int {
	id := l.CurrentID
	l.CurrentID++
	return id
}

// Lookup returns the entry of kanji.
func (l *Ledger) Lookup(kanji rune) (*Entry, error) {
	entry, ok := l.Items[string(kanji)]
	if !ok {
		return nil, fmt.Errorf("%w: %c", ErrUnknownKanji, kanji)
	}
	return entry, nil
}

// Position returns where slot id lives in this ledger's notebook.
func (l *Ledger) Position(id int) Position {
	// RowsPerPage is validated on creation and load
	pos, _ := PositionOf(id, l.RowsPerPage)
	return pos
}

// NextPosition returns where the next new row will be written.
func (l *Ledger) NextPosition() Position {
	return l.Position(l.CurrentID)
}

// KanjiEntry pairs an entry with its kanji.
type KanjiEntry struct {
	Kanji rune
	*Entry
}

// Entries returns all entries in the order the kanji were first recorded.
func (l *Ledger) Entries() []KanjiEntry {
	entries := make([]KanjiEntry, 0, len(l.Items))
	for key, entry := range l.Items {
		r, _ := utf8.DecodeRuneInString(key)
		entries = append(entries, KanjiEntry{Kanji: r, Entry: entry})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].IDs[0] < entries[j].IDs[0]
	})
	return entries
}

// Validate checks the structural invariants of a ledger read from disk.
func (l *Ledger) Validate() error {
	if l.KanjiPerRow < 1 {
		return fmt.Errorf("kanji_per_row must be positive, got %d", l.KanjiPerRow)
	}
	if l.RowsPerPage < 1 {
		return fmt.Errorf("rows_per_page must be positive, got %d", l.RowsPerPage)
	}
	if l.CurrentID < 0 {
		return fmt.Errorf("current_id must not be negative, got %d", l.CurrentID)
	}

	owner := make(map[int]string)
	for key, entry := range l.Items {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("key %q is not a single character", key)
		}
		if entry == nil || len(entry.IDs) == 0 {
			return fmt.Errorf("kanji %s has no slots", key)
		}
		if entry.Occasions < len(entry.IDs) {
			return fmt.Errorf("kanji %s has %d occasions but %d slots", key, entry.Occasions, len(entry.IDs))
		}
		for i, id := range entry.IDs {
			if id < 0 || id >= l.CurrentID {
				return fmt.Errorf("kanji %s has slot %d outside [0, %d)", key, id, l.CurrentID)
			}
			if i > 0 && id <= entry.IDs[i-1] {
				return fmt.Errorf("kanji %s has slots out of order", key)
			}
			if other, taken := owner[id]; taken {
				return fmt.Errorf("slot %d is shared by %s and %s", id, other, key)
			}
			owner[id] = key
		}
	}
	return nil
}
