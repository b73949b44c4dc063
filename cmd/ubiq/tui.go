package main

import (
	"github.com/spf13/cobra"

	"github.com/rafabd1/ubiq/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive prompt",
		Long: `Start the interactive prompt.

Type a command line and press Enter to open it. Matching command names are
shown while typing. /help lists commands, /quit or Esc exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}
}

func (a *app) runTUI(cmd *cobra.Command) error {
	return tui.Run(cmd.Context(), a.dispatcher, a.searcher)
}
