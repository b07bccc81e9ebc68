package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/aki/kanjinote/internal/core/logger"
)

// RegisterLoggerFlags registers global logging flags
func RegisterLoggerFlags(cmd *cobra.Command, opts *rootOptions) {
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
}

// CreateLogger creates a logger based on CLI flags
func CreateLogger(opts *rootOptions, w io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(opts.logFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
	), nil
}
