package commands

import (
	"github.com/spf13/cobra"

	"slmetal/cmd/slmetal/handlers"
)

// Apply returns the command that reconciles a desired-state document.
//
// Optional flags:
//
//	--config, -c: Path to the server configuration YAML file (default: slmetal.yaml)
//	--dry-run:    Verify the order with the billing system instead of placing it
//
// Environment variables:
//
//	SL_USERNAME / SL_API_KEY: SoftLayer API credentials (or ~/.softlayer)
func Apply() *cobra.Command {
	var configPath string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile the server to its desired state",
		Long: `Reconcile a bare-metal server to the state described in its
configuration file.

Depending on the document's state field this orders a new server (present),
cancels an existing one (absent), reinstalls its operating system (reloaded),
or prints the option schema (options).

Examples:
  # Reconcile using slmetal.yaml in the current directory
  slmetal apply

  # Reconcile a specific file
  slmetal apply -c production.yaml

  # Price the order without placing it
  slmetal apply --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath, dryRun)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: slmetal.yaml)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Verify the order instead of placing it")

	return cmd
}
