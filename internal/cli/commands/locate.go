package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aki/kanjinote/internal/cli/ui"
	"github.com/aki/kanjinote/internal/core/ledger"
)

func newLocateCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "locate <kanji>",
		Short: "List the notebook rows a kanji has been written to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
			formatter, err := newFormatter(format, console)
			if err != nil {
				return err
			}

			kanji, err := ledger.ParseKanji(args[0])
			if err != nil {
				return fmt.Errorf("%q is not a single kanji: %w", args[0], err)
			}

			_, l, err := loadExisting(cmd, opts)
			if err != nil {
				return err
			}
			entry, err := l.Lookup(kanji)
			if err != nil {
				return err
			}

			view := ui.NewEntryView(kanji, entry, l)
			if formatter.IsJSON() {
				return formatter.Output(view)
			}
			console.PrintSlots(view)
			return nil
		},
	}
	registerFormatFlag(cmd, &format)

	return cmd
}
