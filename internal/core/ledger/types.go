// Package ledger records kanji occurrences and maps them onto notebook rows.
package ledger

// Entry is the per-kanji record of occurrences and assigned slots.
type Entry struct {
	// IDs holds the slot identifiers assigned to the kanji, oldest first.
	// The last one is the current slot.
	IDs []int `yaml:"ids" json:"ids"`
	// Occasions counts how many times the kanji has been recorded.
	Occasions int `yaml:"occasions" json:"occasions"`
}

// CurrentID returns the slot the kanji is currently written to.
func (e *Entry) CurrentID() int {
	return e.IDs[len(e.IDs)-1]
}

// Ledger is the persisted state: every entry plus the notebook geometry
// and the next slot identifier to hand out.
type Ledger struct {
	Items       map[string]*Entry `yaml:"items" json:"items"`
	CurrentID   int               `yaml:"current_id" json:"current_id"`
	KanjiPerRow int               `yaml:"kanji_per_row" json:"kanji_per_row"`
	RowsPerPage int               `yaml:"rows_per_page" json:"rows_per_page"`
}

// Config is the notebook geometry chosen when a ledger is created.
type Config struct {
	KanjiPerRow int
	RowsPerPage int
}

// Outcome describes what a single Record call did.
type Outcome struct {
	Kanji rune
	// Found is true when the kanji already had an entry.
	Found bool
	// SlotID is the slot the kanji was found on, or the slot it was put on
	// when it was new.
	SlotID int
	// Occasion is the occurrence number written by this call.
	Occasion int
	// Opened is true when an existing kanji ran out of space and got NewSlotID.
	Opened    bool
	NewSlotID int
}
