package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// These variables are set via ldflags during build
var (
	Version = "dev"
	Commit  = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ubiq version %s\n", Version)
			if Commit != "" && Commit != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", Commit)
			}
			return nil
		},
	}
}
