package main

import (
	"os"

	"github.com/aki/kanjinote/internal/cli/commands"
	"github.com/aki/kanjinote/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		ui.NewConsole(os.Stdout, os.Stderr).Error("%v", err)
		os.Exit(1)
	}
}
