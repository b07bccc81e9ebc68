package ledger

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ParseKanji extracts the single character typed on a line.
// Input is NFC-normalized first so a base character followed by a
// combining mark counts as one character.
func ParseKanji(line string) (rune, error) {
	s := norm.NFC.String(strings.TrimSpace(line))
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrInvalidInput
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, ErrInvalidInput
	}
	return r, nil
}
