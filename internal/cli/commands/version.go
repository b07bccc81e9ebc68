package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/aki/kanjinote/internal/cli/ui"
)

// Version information - these will be set at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newVersionCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())
			formatter, err := newFormatter(format, console)
			if err != nil {
				return err
			}

			if formatter.IsJSON() {
				return formatter.Output(map[string]string{
					"version":   Version,
					"gitCommit": GitCommit,
					"buildDate": BuildDate,
					"goVersion": runtime.Version(),
					"os":        runtime.GOOS,
					"arch":      runtime.GOARCH,
				})
			}

			return formatter.Output(fmt.Sprintf(
				"kanjinote version %s\n  Git commit: %s\n  Build date: %s\n  Go version: %s\n  OS/Arch:    %s/%s",
				Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH,
			))
		},
	}
	registerFormatFlag(cmd, &format)

	return cmd
}
