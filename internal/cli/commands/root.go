// Package commands provides the kanjinote command tree.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/kanjinote/internal/core/ledger"
	"github.com/aki/kanjinote/internal/core/logger"
)

// rootOptions holds the flags shared by every command
type rootOptions struct {
	dataFile  string
	logLevel  string
	logFormat string
}

// NewRootCommand builds the kanjinote command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "kanjinote",
		Short: "Track kanji you meet and where they go in your notebook",
		Long: `Kanjinote counts every kanji you enter and assigns it rows in a paper
notebook. Each row holds a fixed number of kanji; when a kanji fills its row
it moves to a new one. Run without a subcommand to start recording.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := CreateLogger(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataFile, "data", ledger.DefaultFile, "Path of the ledger data file")
	RegisterLoggerFlags(rootCmd, opts)

	rootCmd.AddCommand(newShowCommand(opts))
	rootCmd.AddCommand(newLocateCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
