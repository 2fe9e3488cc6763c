// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in the
// handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the slmetal CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slmetal",
		Short: "Declaratively provision SoftLayer bare-metal servers",
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Apply())
	cmd.AddCommand(Options())
	cmd.AddCommand(Packages())
	cmd.AddCommand(Version())

	return cmd
}
