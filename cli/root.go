// Package cli defines the upnmigrate command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "upnmigrate",
		Short:         "Bulk UPN suffix migration for Active Directory",
		Long:          "Migrates user principal name suffixes across a forest from a batch list, with an auditable, reversible change trail.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newRestoreCmd())

	return rootCmd
}
