package ui

import (
	"fmt"
	"io"

	"github.com/aki/kanjinote/internal/core/ledger"
)

// Console writes user-facing output. Status goes to out, errors to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsole creates a console writing to out and errOut
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

// Out returns the writer for regular output
func (c *Console) Out() io.Writer {
	return c.out
}

// OutputLine prints a plain line
func (c *Console) OutputLine(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Console) Error(format string, args ...interface{}) {
	fmt.Fprintf(c.errOut, "%s %s\n", ErrorIcon, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Success(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s %s\n", SuccessIcon, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Info(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s %s\n", InfoIcon, InfoStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Warning(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s %s\n", WarningIcon, WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintOutcome describes what recording a kanji did, one line per step
func (c *Console) PrintOutcome(out ledger.Outcome, l *ledger.Ledger) {
	if !out.Found {
		c.OutputLine("Kanji %c not found", out.Kanji)
		c.OutputLine("Putting kanji %c on the id #%d (%s)", out.Kanji, out.SlotID, l.Position(out.SlotID))
		return
	}

	c.OutputLine("Found kanji %c with id #%d (%s)", out.Kanji, out.SlotID, l.Position(out.SlotID))
	c.OutputLine("Writing occasion #%d for the kanji %c", out.Occasion, out.Kanji)
	if out.Opened {
		c.OutputLine("No space left for the id #%d, creating new id #%d (%s)",
			out.SlotID, out.NewSlotID, l.Position(out.NewSlotID))
	}
}

// PrintKeyValue prints a dimmed key followed by its value
func (c *Console) PrintKeyValue(key string, value interface{}) {
	fmt.Fprintf(c.out, "   %s %v\n", DimStyle.Render(key+":"), value)
}
