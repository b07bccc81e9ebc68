package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/kanjinote/internal/cli/ui"
)

func newShowCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every recorded kanji and its current row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
			formatter, err := newFormatter(format, console)
			if err != nil {
				return err
			}

			store, l, err := loadExisting(cmd, opts)
			if err != nil {
				return err
			}

			view := ui.NewLedgerView(store.Path(), l)
			if formatter.IsJSON() {
				return formatter.Output(view)
			}
			console.PrintLedger(view)
			return nil
		},
	}
	registerFormatFlag(cmd, &format)

	return cmd
}
