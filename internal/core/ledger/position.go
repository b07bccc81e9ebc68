package ledger

import (
	"errors"
	"fmt"
)

// Position is a 1-indexed place in the physical notebook.
type Position struct {
	Page int `json:"page"`
	Row  int `json:"row"`
}

func (p Position) String() string {
	return fmt.Sprintf("page #%d, line #%d", p.Page, p.Row)
}

// PositionOf maps a slot identifier onto a notebook with rowsPerPage rows.
func PositionOf(id, rowsPerPage int) (Position, error) {
	if rowsPerPage < 1 {
		return Position{}, errors.New("rows per page must be positive")
	}
	return Position{
		Page: id/rowsPerPage + 1,
		Row:  id%rowsPerPage + 1,
	}, nil
}
