package commands

import (
	"github.com/spf13/cobra"

	"slmetal/cmd/slmetal/handlers"
)

// Options returns the command that prints the dynamic option schema for a
// (package, datacenter) pair. The pair comes from the configuration file or
// from explicit flags.
func Options() *cobra.Command {
	var configPath string
	var packageID int
	var datacenter string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the legal option values for a package and datacenter",
		Long: `List every configurable option of a bare-metal package and the
values that are orderable in the given datacenter.

Examples:
  # Options for the package and datacenter in slmetal.yaml
  slmetal options

  # Options for an explicit pair
  slmetal options --pkgid 253 --datacenter fra02`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Options(cmd.Context(), configPath, packageID, datacenter)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: slmetal.yaml)")
	cmd.Flags().IntVar(&packageID, "pkgid", 0, "Package id (overrides the configuration file)")
	cmd.Flags().StringVar(&datacenter, "datacenter", "", "Datacenter short name (overrides the configuration file)")

	return cmd
}
