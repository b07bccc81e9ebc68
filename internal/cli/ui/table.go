package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
)

// NewTable creates a new table writing to w with consistent styling
func NewTable(w io.Writer, headers ...interface{}) table.Table {
	tbl := table.New(headers...).WithWriter(w)

	// Only format the first column (the kanji) with bold
	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return BoldStyle.Render(fmt.Sprintf(format, vals...))
	})

	tbl.WithPadding(2)

	// lipgloss.Width accounts for ANSI codes and double-width kanji
	tbl.WithWidthFunc(lipgloss.Width)

	return tbl
}

// PrintSectionHeader prints a consistent section header
func (c *Console) PrintSectionHeader(icon string, title string, count int) {
	c.OutputLine("\n%s %s (%d)", icon, title, count)
}

// PrintLedger renders a ledger summary followed by one row per kanji
func (c *Console) PrintLedger(v LedgerView) {
	c.PrintKeyValue("File", v.Path)
	c.PrintKeyValue("Kanji per row", v.KanjiPerRow)
	c.PrintKeyValue("Rows per page", v.RowsPerPage)
	c.PrintKeyValue("Next row", fmt.Sprintf("id #%d (%s)", v.NextID, v.Next))

	if len(v.Entries) == 0 {
		c.Info("No kanji recorded yet")
		return
	}

	c.PrintSectionHeader(NotebookIcon, "Kanji", len(v.Entries))
	tbl := NewTable(c.out, "KANJI", "OCCASIONS", "ROWS", "CURRENT")
	for _, e := range v.Entries {
		tbl.AddRow(e.Kanji, e.Occasions, len(e.Slots), e.Current())
	}
	tbl.Print()
}

// PrintSlots renders every row a kanji occupies
func (c *Console) PrintSlots(v EntryView) {
	c.PrintSectionHeader(NotebookIcon, fmt.Sprintf("Rows of %s, %d occasions", v.Kanji, v.Occasions), len(v.Slots))
	tbl := NewTable(c.out, "ID", "PAGE", "LINE")
	for _, s := range v.Slots {
		tbl.AddRow(s.ID, s.Page, s.Row)
	}
	tbl.Print()
}
