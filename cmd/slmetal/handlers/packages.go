package handlers

import (
	"context"
	"fmt"
)

// Packages lists every orderable bare-metal package on the account.
func Packages(ctx context.Context) error {
	client := newClient()
	pkgs, err := client.ListPackages(ctx)
	if err != nil {
		return fmt.Errorf("listing packages failed: %w", err)
	}

	fmt.Print(renderPackages(pkgs))
	return nil
}
