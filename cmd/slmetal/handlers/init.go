package handlers

import (
	"context"
	"fmt"

	"slmetal/internal/catalog"
	"slmetal/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.Run

	// writeConfig writes the wizard result to a file.
	writeConfig = wizard.WriteYAML
)

// Init runs the configuration wizard and writes the result to a file. The
// wizard's selects are driven by the live product catalog, so API credentials
// are required.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	res := catalog.NewResolver(catalog.NewCache(newClient()))
	result, err := runWizard(ctx, res)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if err := writeConfig(result, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, result)
	return nil
}

func printWelcome() {
	fmt.Println()
	fmt.Println("slmetal - SoftLayer bare-metal provisioning")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("This wizard builds a server configuration from the live catalog.")
	fmt.Println("Only the options your package requires are asked.")
	fmt.Println()
}

func printInitSuccess(outputPath string, r *wizard.Result) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Server Summary")
	fmt.Println("--------------")
	fmt.Printf("  Hostname:   %s.%s\n", r.Hostname, r.Domain)
	fmt.Printf("  Datacenter: %s\n", r.Datacenter)
	fmt.Printf("  Package:    %d\n", r.PackageID)
	fmt.Printf("  Billing:    %s\n", billingLabel(r.Hourly))
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Set your SoftLayer API credentials:")
	fmt.Println("     export SL_USERNAME=<your-username>")
	fmt.Println("     export SL_API_KEY=<your-api-key>")
	fmt.Println()
	fmt.Printf("  2. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Price the order without placing it:")
	fmt.Println("     slmetal apply --dry-run")
	fmt.Println()
	fmt.Println("  4. Order the server:")
	fmt.Println("     slmetal apply")
	fmt.Println()
}

func billingLabel(hourly bool) string {
	if hourly {
		return "hourly"
	}
	return "monthly"
}
