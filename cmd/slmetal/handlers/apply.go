// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"slmetal/internal/config"
	"slmetal/internal/platform/softlayer"
	"slmetal/internal/reconcile"
)

const defaultConfigFile = "slmetal.yaml"

// Evaluator interface for testing - matches reconcile.Reconciler.
type Evaluator interface {
	Evaluate(ctx context.Context, ds *config.DesiredState) (*reconcile.Result, error)
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newClient creates the SoftLayer API client from the environment.
	newClient = func() softlayer.Client {
		return softlayer.NewRealClient()
	}

	// newReconciler creates the reconciler for one run.
	newReconciler = func(client softlayer.Client, dryRun bool) Evaluator {
		return reconcile.New(client, reconcile.WithDryRun(dryRun))
	}

	// loadConfigFile loads the desired-state document.
	loadConfigFile = config.Load

	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}
)

// Apply reconciles the server described in the configuration file to its
// desired lifecycle state.
//
// The workflow is:
//  1. Load and statically validate the desired-state document
//  2. Initialize the SoftLayer client from SL_USERNAME / SL_API_KEY
//  3. Evaluate the lifecycle state machine (order, cancel, reload, or schema)
//  4. Print the verdict and, for orders, the priced line items
//
// With dryRun set, orders are verified with the billing system but never
// placed.
func Apply(ctx context.Context, configPath string, dryRun bool) error {
	ds, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Reconciling %s.%s in %s (state %s)", ds.Hostname, ds.Domain, ds.Datacenter, ds.State)

	rec := newReconciler(newClient(), dryRun)
	result, err := rec.Evaluate(ctx, ds)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	if result.Schema != nil {
		fmt.Print(renderSchema(ds.PackageID, ds.Datacenter, result.Schema))
		return nil
	}

	fmt.Print(renderResult(ds, result, dryRun))
	return nil
}

// loadConfig loads and validates the desired-state document. If configPath is
// empty, it looks for slmetal.yaml in the current directory.
func loadConfig(configPath string) (*config.DesiredState, error) {
	if configPath == "" {
		if !fileExists(defaultConfigFile) {
			return nil, fmt.Errorf("no config file found: %s\nRun 'slmetal init' to create one", defaultConfigFile)
		}
		configPath = defaultConfigFile
	}

	ds, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return ds, nil
}
