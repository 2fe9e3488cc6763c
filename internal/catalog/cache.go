// Package catalog resolves a package's orderable options for a datacenter,
// memoizing remote catalog lookups for the duration of one run.
package catalog

import (
	"context"

	"slmetal/internal/platform/softlayer"
)

// locationKey keys per-(package, datacenter) lookups.
type locationKey struct {
	PackageID  int
	Datacenter string
}

// Cache memoizes catalog reads behind a softlayer.Client. It is rebuilt from
// scratch for every run; nothing is persisted across invocations. Access is
// single-threaded, so map inserts need no locking.
type Cache struct {
	client softlayer.Client

	datacenters []softlayer.Datacenter
	packages    []softlayer.Package
	configs     map[int][]softlayer.Category
	priceGroups map[string]softlayer.PriceGroups
	stdItems    map[int][]softlayer.Item
	locItems    map[locationKey][]softlayer.Item
}

// NewCache creates an empty cache over the given client.
func NewCache(client softlayer.Client) *Cache {
	return &Cache{
		client:      client,
		configs:     make(map[int][]softlayer.Category),
		priceGroups: make(map[string]softlayer.PriceGroups),
		stdItems:    make(map[int][]softlayer.Item),
		locItems:    make(map[locationKey][]softlayer.Item),
	}
}

// Datacenters returns the datacenter table, fetched at most once.
func (c *Cache) Datacenters(ctx context.Context) ([]softlayer.Datacenter, error) {
	if c.datacenters != nil {
		cacheHits.WithLabelValues("datacenters").Inc()
		return c.datacenters, nil
	}
	cacheMisses.WithLabelValues("datacenters").Inc()

	dcs, err := c.client.ListDatacenters(ctx)
	if err != nil {
		return nil, err
	}
	c.datacenters = dcs
	return dcs, nil
}

// Packages returns the orderable bare-metal packages, fetched at most once.
func (c *Cache) Packages(ctx context.Context) ([]softlayer.Package, error) {
	if c.packages != nil {
		cacheHits.WithLabelValues("packages").Inc()
		return c.packages, nil
	}
	cacheMisses.WithLabelValues("packages").Inc()

	pkgs, err := c.client.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	c.packages = pkgs
	return pkgs, nil
}

// Configuration returns the category set of a package, fetched at most once
// per package id.
func (c *Cache) Configuration(ctx context.Context, packageID int) ([]softlayer.Category, error) {
	if cats, ok := c.configs[packageID]; ok {
		cacheHits.WithLabelValues("configuration").Inc()
		return cats, nil
	}
	cacheMisses.WithLabelValues("configuration").Inc()

	cats, err := c.client.GetPackageConfiguration(ctx, packageID)
	if err != nil {
		return nil, err
	}
	c.configs[packageID] = cats
	return cats, nil
}

// PriceGroups returns the price group set of a named datacenter. A name
// missing from the datacenter table yields the Unfiltered sentinel without a
// remote call, so location filtering degrades to "return everything" instead
// of failing the run.
func (c *Cache) PriceGroups(ctx context.Context, datacenter string) (softlayer.PriceGroups, error) {
	if groups, ok := c.priceGroups[datacenter]; ok {
		cacheHits.WithLabelValues("price_groups").Inc()
		return groups, nil
	}
	cacheMisses.WithLabelValues("price_groups").Inc()

	dcs, err := c.Datacenters(ctx)
	if err != nil {
		return softlayer.PriceGroups{}, err
	}
	known := false
	for _, dc := range dcs {
		if dc.Name == datacenter {
			known = true
			break
		}
	}
	if !known {
		groups := softlayer.PriceGroups{Unfiltered: true}
		c.priceGroups[datacenter] = groups
		return groups, nil
	}

	ids, err := c.client.GetDatacenterPriceGroups(ctx, datacenter)
	if err != nil {
		return softlayer.PriceGroups{}, err
	}
	groups := softlayer.PriceGroups{IDs: ids}
	c.priceGroups[datacenter] = groups
	return groups, nil
}

// StandardItems returns a package's location-independent items, fetched at
// most once per package id.
func (c *Cache) StandardItems(ctx context.Context, packageID int) ([]softlayer.Item, error) {
	if items, ok := c.stdItems[packageID]; ok {
		cacheHits.WithLabelValues("standard_items").Inc()
		return items, nil
	}
	cacheMisses.WithLabelValues("standard_items").Inc()

	items, err := c.client.GetStandardItems(ctx, packageID)
	if err != nil {
		return nil, err
	}
	c.stdItems[packageID] = items
	return items, nil
}

// LocationItems returns a package's items carrying datacenter-specific
// pricing, fetched at most once per (package, datacenter) pair.
func (c *Cache) LocationItems(ctx context.Context, packageID int, datacenter string) ([]softlayer.Item, error) {
	key := locationKey{PackageID: packageID, Datacenter: datacenter}
	if items, ok := c.locItems[key]; ok {
		cacheHits.WithLabelValues("location_items").Inc()
		return items, nil
	}
	cacheMisses.WithLabelValues("location_items").Inc()

	groups, err := c.PriceGroups(ctx, datacenter)
	if err != nil {
		return nil, err
	}
	items, err := c.client.GetLocationItems(ctx, packageID, groups)
	if err != nil {
		return nil, err
	}
	c.locItems[key] = items
	return items, nil
}
