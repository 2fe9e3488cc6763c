// Package order derives verifiable product orders from a desired-state
// record and the resolved catalog.
package order

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"slmetal/internal/catalog"
	"slmetal/internal/config"
	"slmetal/internal/platform/softlayer"
)

// Build assembles the order payload for one server. Option keys are resolved
// to price ids in lexicographic order; empty values and options without a
// resolvable price are skipped rather than failing, matching the catalog's
// first-price selection. An unresolvable datacenter leaves LocationID nil so
// order verification reports it.
func Build(ctx context.Context, res *catalog.Resolver, client softlayer.CatalogClient, ds *config.DesiredState) (softlayer.ProductOrder, error) {
	order := softlayer.ProductOrder{
		Quantity:         1,
		PackageID:        ds.PackageID,
		UseHourlyPricing: ds.Hourly,
		ImageTemplateID:  ds.ImageTemplateID,
		SSHKeyIDs:        ds.SSHKeyIDs,
		Hardware: []softlayer.HardwareSpec{{
			Hostname:    ds.Hostname,
			Domain:      ds.Domain,
			PrimaryVLAN: ds.PrimaryVLAN,
			BackendVLAN: ds.BackendVLAN,
		}},
	}

	locationID, err := client.GetLocationID(ctx, ds.Datacenter)
	switch {
	case err == nil:
		order.LocationID = &locationID
	case errors.Is(err, softlayer.ErrLocationNotFound), errors.Is(err, softlayer.ErrLocationAmbiguous):
		// Submitted without a location; verification rejects the order
		// and surfaces the bad datacenter to the caller.
	default:
		return softlayer.ProductOrder{}, fmt.Errorf("resolving datacenter %q: %w", ds.Datacenter, err)
	}

	keys := make([]string, 0, len(ds.Options))
	for key := range ds.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := ds.Options[key]
		if value == "" {
			continue
		}
		priceID, ok, err := res.PriceIDFor(ctx, value, ds.PackageID, ds.Datacenter)
		if err != nil {
			return softlayer.ProductOrder{}, fmt.Errorf("resolving price for %q: %w", value, err)
		}
		if !ok {
			continue
		}
		order.Prices = append(order.Prices, softlayer.OrderPrice{ID: priceID, Name: value})
	}

	for _, sg := range ds.StorageGroups {
		order.StorageGroups = append(order.StorageGroups, softlayer.StorageGroup{
			ArrayTypeID:         sg.ArrayTypeID,
			HardDrives:          sg.HardDrives,
			ArraySize:           sg.ArraySize,
			PartitionTemplateID: sg.PartitionTemplateID,
		})
	}

	return order, nil
}
