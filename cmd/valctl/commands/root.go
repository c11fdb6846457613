// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the valctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "valctl",
		Short:         "Manage a cluster of validator nodes on this host",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Cluster())
	cmd.AddCommand(Version())

	return cmd
}
