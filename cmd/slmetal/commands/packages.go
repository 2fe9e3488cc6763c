package commands

import (
	"github.com/spf13/cobra"

	"slmetal/cmd/slmetal/handlers"
)

// Packages returns the command that lists orderable bare-metal packages.
func Packages() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List orderable bare-metal packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Packages(cmd.Context())
		},
	}
}
