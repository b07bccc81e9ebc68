package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aki/kanjinote/internal/cli/ui"
	"github.com/aki/kanjinote/internal/core/ledger"
	"github.com/aki/kanjinote/internal/core/logger"
)

// loadExisting loads the ledger for a reporting command, which never
// creates one.
func loadExisting(cmd *cobra.Command, opts *rootOptions) (*ledger.Store, *ledger.Ledger, error) {
	store := ledger.NewStore(opts.dataFile, logger.FromContext(cmd.Context()))
	l, err := store.Load(cmd.Context())
	if errors.Is(err, ledger.ErrNotFound) {
		return nil, nil, fmt.Errorf("no ledger at %s, run kanjinote to create one: %w", store.Path(), err)
	}
	if err != nil {
		return nil, nil, err
	}
	return store, l, nil
}

// newFormatter builds the formatter selected by a --format flag value
func newFormatter(format string, console *ui.Console) (ui.Formatter, error) {
	outputFormat, err := ui.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return ui.NewFormatter(outputFormat, console)
}

func registerFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVar(format, "format", "pretty", "Output format (pretty, json)")
}
