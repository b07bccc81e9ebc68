package ui

import (
	"github.com/aki/kanjinote/internal/core/ledger"
)

// SlotView is one notebook row held by a kanji
type SlotView struct {
	ID int `json:"id"`
	ledger.Position
}

// EntryView is the display form of a ledger entry
type EntryView struct {
	Kanji     string     `json:"kanji"`
	Occasions int        `json:"occasions"`
	Slots     []SlotView `json:"slots"`
}

// Current returns the row the kanji is currently written to
func (v EntryView) Current() ledger.Position {
	return v.Slots[len(v.Slots)-1].Position
}

// LedgerView is the display form of a whole ledger
type LedgerView struct {
	Path        string          `json:"path"`
	KanjiPerRow int             `json:"kanji_per_row"`
	RowsPerPage int             `json:"rows_per_page"`
	NextID      int             `json:"next_id"`
	Next        ledger.Position `json:"next"`
	Entries     []EntryView     `json:"entries"`
}

// NewEntryView builds the view of one entry
func NewEntryView(kanji rune, e *ledger.Entry, l *ledger.Ledger) EntryView {
	v := EntryView{
		Kanji:     string(kanji),
		Occasions: e.Occasions,
		Slots:     make([]SlotView, 0, len(e.IDs)),
	}
	for _, id := range e.IDs {
		v.Slots = append(v.Slots, SlotView{ID: id, Position: l.Position(id)})
	}
	return v
}

// NewLedgerView builds the view of a ledger stored at path
func NewLedgerView(path string, l *ledger.Ledger) LedgerView {
	v := LedgerView{
		Path:        path,
		KanjiPerRow: l.KanjiPerRow,
		RowsPerPage: l.RowsPerPage,
		NextID:      l.CurrentID,
		Next:        l.NextPosition(),
		Entries:     []EntryView{},
	}
	for _, e := range l.Entries() {
		v.Entries = append(v.Entries, NewEntryView(e.Kanji, e.Entry, l))
	}
	return v
}
