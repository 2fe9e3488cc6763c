package handlers

import (
	"context"
	"fmt"

	"slmetal/internal/config"
)

// Options prints the dynamic option schema for a (package, datacenter) pair.
// The pair is taken from the flags when both are set, otherwise from the
// configuration file.
func Options(ctx context.Context, configPath string, packageID int, datacenter string) error {
	if packageID == 0 || datacenter == "" {
		ds, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if packageID == 0 {
			packageID = ds.PackageID
		}
		if datacenter == "" {
			datacenter = ds.Datacenter
		}
	}

	rec := newReconciler(newClient(), false)
	result, err := rec.Evaluate(ctx, &config.DesiredState{
		PackageID:  packageID,
		Datacenter: datacenter,
		State:      config.StateOptions,
	})
	if err != nil {
		return fmt.Errorf("loading options failed: %w", err)
	}

	fmt.Print(renderSchema(packageID, datacenter, result.Schema))
	return nil
}
