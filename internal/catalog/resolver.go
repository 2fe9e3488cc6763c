package catalog

import (
	"context"
	"regexp"

	"slmetal/internal/platform/softlayer"
)

// diskSlotRE matches the disk-slot category codes ("disk0", "disk1", ...).
var diskSlotRE = regexp.MustCompile(`^disk\d+$`)

// diskAnchor is the slot whose choices are authoritative for all disk slots.
// The provider catalog is inconsistent across slots; every disk-slot category
// is normalized to this one.
const diskAnchor = "disk0"

// Resolver merges a package's standard items with datacenter-specific price
// overrides and maps categories to their legal option key-names.
type Resolver struct {
	cache *Cache
}

// NewResolver creates a resolver over the given cache.
func NewResolver(cache *Cache) *Resolver {
	return &Resolver{cache: cache}
}

// Datacenters exposes the cached datacenter table.
func (r *Resolver) Datacenters(ctx context.Context) ([]softlayer.Datacenter, error) {
	return r.cache.Datacenters(ctx)
}

// Packages exposes the cached package table.
func (r *Resolver) Packages(ctx context.Context) ([]softlayer.Package, error) {
	return r.cache.Packages(ctx)
}

// Configuration exposes the cached category set of a package.
func (r *Resolver) Configuration(ctx context.Context, packageID int) ([]softlayer.Category, error) {
	return r.cache.Configuration(ctx, packageID)
}

// ItemsByKeyName returns the package's items keyed by key-name, with
// location-specific entries replacing standard entries sharing the same
// key-name. Location entries without a standard counterpart are dropped.
func (r *Resolver) ItemsByKeyName(ctx context.Context, packageID int, datacenter string) (map[string]softlayer.Item, error) {
	std, loc, err := r.fetch(ctx, packageID, datacenter)
	if err != nil {
		return nil, err
	}

	items := make(map[string]softlayer.Item, len(std))
	for _, it := range std {
		items[it.KeyName] = it
	}
	for _, it := range loc {
		if _, ok := items[it.KeyName]; ok {
			items[it.KeyName] = it
		}
	}
	return items, nil
}

// ItemsByID is ItemsByKeyName keyed by numeric item id.
func (r *Resolver) ItemsByID(ctx context.Context, packageID int, datacenter string) (map[int]softlayer.Item, error) {
	std, loc, err := r.fetch(ctx, packageID, datacenter)
	if err != nil {
		return nil, err
	}

	items := make(map[int]softlayer.Item, len(std))
	for _, it := range std {
		items[it.ID] = it
	}
	for _, it := range loc {
		if _, ok := items[it.ID]; ok {
			items[it.ID] = it
		}
	}
	return items, nil
}

func (r *Resolver) fetch(ctx context.Context, packageID int, datacenter string) (std, loc []softlayer.Item, err error) {
	std, err = r.cache.StandardItems(ctx, packageID)
	if err != nil {
		return nil, nil, err
	}
	loc, err = r.cache.LocationItems(ctx, packageID, datacenter)
	if err != nil {
		return nil, nil, err
	}
	return std, loc, nil
}

// Categories maps every category code of the package to the key-names legal
// for it in the given datacenter. Disk-slot categories all share the choices
// resolved for disk0, and categories with nothing to select are pruned.
func (r *Resolver) Categories(ctx context.Context, packageID int, datacenter string) (map[string][]string, error) {
	cats, err := r.cache.Configuration(ctx, packageID)
	if err != nil {
		return nil, err
	}
	std, err := r.cache.StandardItems(ctx, packageID)
	if err != nil {
		return nil, err
	}
	resolved, err := r.ItemsByID(ctx, packageID, datacenter)
	if err != nil {
		return nil, err
	}

	choices := make(map[string][]string, len(cats))
	for _, cat := range cats {
		var names []string
		seen := make(map[string]bool)
		// Standard slice order keeps the choice lists deterministic; the
		// resolved map only ever replaces entries, never adds or removes.
		for _, it := range std {
			item := resolved[it.ID]
			if item.CategoryID != cat.ID || seen[item.KeyName] {
				continue
			}
			seen[item.KeyName] = true
			names = append(names, item.KeyName)
		}
		choices[cat.Code] = names
	}

	if anchor, ok := choices[diskAnchor]; ok {
		for code := range choices {
			if diskSlotRE.MatchString(code) {
				choices[code] = anchor
			}
		}
	}

	for code, names := range choices {
		if len(names) == 0 {
			delete(choices, code)
		}
	}
	return choices, nil
}

// PriceIDFor resolves an option key-name to the id of the first price of its
// resolved item. The boolean is false when the key-name has no item in this
// (package, datacenter) context or the item carries no prices; that is not an
// error, callers drop such options from the order.
func (r *Resolver) PriceIDFor(ctx context.Context, keyName string, packageID int, datacenter string) (int, bool, error) {
	items, err := r.ItemsByKeyName(ctx, packageID, datacenter)
	if err != nil {
		return 0, false, err
	}
	item, ok := items[keyName]
	if !ok || len(item.Prices) == 0 {
		return 0, false, nil
	}
	return item.Prices[0].ID, true, nil
}
