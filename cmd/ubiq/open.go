package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rafabd1/ubiq/internal/commands"
)

// invocation joins the positional args back into a line so the CLI and the
// interactive prompt share one parser. --source wins over "from".
func invocation(registry *commands.Registry, args []string, source string) (commands.Invocation, error) {
	inv, err := registry.ParseLine(strings.Join(args, " "))
	if err != nil {
		return inv, err
	}
	if source != "" {
		inv.Source = source
	}
	return inv, nil
}

func newOpenCmd(a *app) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "open <command> <text...> [from <source>]",
		Short: "Open the page for a command in the browser",
		Example: `  ubiq open qtbug 12345
  ubiq open qdoc QString::split from 5.2
  ubiq open qdoc QString::split --source 5.2
  ubiq open --dry-run xref-linux schedule`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := invocation(a.registry, args, source)
			if err != nil {
				return err
			}
			if _, err := a.dispatcher.Launch(cmd.Context(), inv.Name, inv.Args()...); err != nil {
				return a.explain(cmd.Context(), inv.Name, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "Source text for two-argument commands (e.g. a Qt version)")
	return cmd
}

func newResolveCmd(a *app) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "resolve <command> <text...> [from <source>]",
		Short: "Print the URL for a command without opening it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := invocation(a.registry, args, source)
			if err != nil {
				return err
			}
			u, err := a.dispatcher.ResolveInvocation(inv)
			if err != nil {
				return a.explain(cmd.Context(), inv.Name, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "", "Source text for two-argument commands (e.g. a Qt version)")
	return cmd
}
