package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aki/kanjinote/internal/cli/ui"
	"github.com/aki/kanjinote/internal/core/ledger"
	"github.com/aki/kanjinote/internal/core/logger"
)

const (
	kanjiPrompt       = "Enter kanji:"
	kanjiPerRowPrompt = "Enter number of kanji that can fit in one line of your notebook:"
	rowsPerPagePrompt = "Enter number of rows that can fit in one page of your notebook:"
)

// runRecord is the interactive loop: read a line, record it, repeat until
// the input ends.
func runRecord(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)
	console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
	prompter := ui.NewPrompter(cmd.InOrStdin(), console)

	store := ledger.NewStore(opts.dataFile, log)
	svc, err := ledger.Open(ctx, store, promptSetup(console, prompter), log)
	if err != nil {
		return err
	}
	if !svc.Created() {
		console.OutputLine("Database loaded successfully")
	}

	for {
		line, err := prompter.Ask(kanjiPrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		out, err := svc.Record(ctx, line)
		if errors.Is(err, ledger.ErrInvalidInput) {
			console.Warning("Invalid input")
			continue
		}
		if err != nil {
			return err
		}
		console.PrintOutcome(out, svc.Ledger())
	}
}

// promptSetup asks the user for the notebook geometry.
func promptSetup(console *ui.Console, prompter *ui.Prompter) ledger.Configurator {
	return ledger.ConfiguratorFunc(func(ctx context.Context) (ledger.Config, error) {
		console.OutputLine("Failed to load data, creating new database")

		perRow, err := askCount(prompter, kanjiPerRowPrompt, "kanji per row")
		if err != nil {
			return ledger.Config{}, err
		}
		rows, err := askCount(prompter, rowsPerPagePrompt, "rows per page")
		if err != nil {
			return ledger.Config{}, err
		}
		return ledger.Config{KanjiPerRow: perRow, RowsPerPage: rows}, nil
	})
}

// askCount reads an unsigned integer. Zero is left for ledger.New to reject.
func askCount(prompter *ui.Prompter, question, field string) (int, error) {
	answer, err := prompter.Ask(question)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to read %s: %w", field, err)
	}
	answer = strings.TrimSpace(answer)

	n, err := strconv.ParseUint(answer, 10, 31)
	if err != nil {
		return 0, ledger.ConfigError{Field: field, Value: answer}
	}
	return int(n), nil
}
