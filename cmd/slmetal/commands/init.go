package commands

import (
	"github.com/spf13/cobra"

	"slmetal/cmd/slmetal/handlers"
)

// Init returns the command that runs the configuration wizard.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a server configuration interactively",
		Long: `Walk through an interactive wizard that builds a server
configuration from the live product catalog and writes it to a YAML file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "slmetal.yaml", "Output file path")

	return cmd
}
