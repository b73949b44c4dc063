package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.New().
				Border(lipgloss.HiddenBorder()).
				Headers("COMMAND", "ARGS", "URL", "DESCRIPTION")
			for _, spec := range a.registry.GetAll() {
				t.Row(spec.Name, strconv.Itoa(spec.Arity), spec.Pattern(), spec.Description)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}
