// Package softlayer provides a wrapper around the SoftLayer product catalog,
// ordering, and hardware lifecycle APIs.
package softlayer

import (
	"context"
	"errors"
)

// Sentinel errors returned by location lookups.
var (
	// ErrLocationNotFound is returned when a datacenter name resolves to no location.
	ErrLocationNotFound = errors.New("location not found")

	// ErrLocationAmbiguous is returned when a datacenter name resolves to more than one location.
	ErrLocationAmbiguous = errors.New("location ambiguous")
)

// Datacenter identifies a SoftLayer datacenter by its short name (e.g. "fra02").
type Datacenter struct {
	ID   int
	Name string
}

// Package identifies a product family. Only BARE_METAL_CPU typed packages are
// orderable through this adapter.
type Package struct {
	ID      int
	Name    string
	KeyName string
	Type    string
}

// Category is one configurable axis of a package order (e.g. "ram", "disk0").
// Required is scoped to the package the category was fetched for.
type Category struct {
	ID       int
	Code     string
	Name     string
	Required bool
}

// Price is the billable identifier tied to an item. LocationGroupID is nil for
// standard (location-independent) prices.
type Price struct {
	ID              int
	LocationGroupID *int
}

// Item is a concrete selectable option value within a category.
type Item struct {
	ID         int
	KeyName    string
	CategoryID int
	Prices     []Price
}

// PriceGroups is the set of price group ids for a datacenter. Unfiltered marks
// the fallback for datacenter names missing from the datacenter table: location
// filtering degrades to "return everything" instead of failing the run.
type PriceGroups struct {
	Unfiltered bool
	IDs        []int
}

// Hardware is an existing bare-metal server as reported by the account
// inventory. BillingItemID is zero when the caller lacks billing visibility.
type Hardware struct {
	ID            int
	Hostname      string
	Domain        string
	Datacenter    string
	BillingItemID int
}

// OrderPrice is one price line of an order payload. Name carries the option
// key-name it was resolved from and is informational only.
type OrderPrice struct {
	ID   int
	Name string
}

// HardwareSpec is the hardware block of an order payload.
type HardwareSpec struct {
	Hostname    string
	Domain      string
	PrimaryVLAN *int
	BackendVLAN *int
}

// StorageGroup arranges disks into a RAID group within an order.
type StorageGroup struct {
	ArrayTypeID         int
	HardDrives          []int
	ArraySize           *int
	PartitionTemplateID *int
}

// ProductOrder is the fully derived order payload. It is built once,
// immediately before verify/submit, and discarded after the call returns.
// A nil LocationID is submitted as-is; order verification rejects it, which
// surfaces an unresolvable datacenter at submission time by design.
type ProductOrder struct {
	Quantity         int
	Hardware         []HardwareSpec
	ImageTemplateID  *int
	LocationID       *int
	UseHourlyPricing bool
	PackageID        int
	Prices           []OrderPrice
	SSHKeyIDs        []int
	StorageGroups    []StorageGroup
}

// PricedItem is one priced line echoed back by order verification.
type PricedItem struct {
	ID                 int
	KeyName            string
	RecurringFee       float64
	HourlyRecurringFee float64
}

// OrderResponse is the result of verifying or placing an order. OrderID is
// only set for placed orders.
type OrderResponse struct {
	OrderID int
	Placed  bool
	Prices  []PricedItem
}

// CatalogClient reads the product catalog: datacenters, packages, categories,
// items, and datacenter price groups.
type CatalogClient interface {
	ListDatacenters(ctx context.Context) ([]Datacenter, error)
	ListPackages(ctx context.Context) ([]Package, error)
	GetPackageConfiguration(ctx context.Context, packageID int) ([]Category, error)
	GetDatacenterPriceGroups(ctx context.Context, name string) ([]int, error)
	// GetStandardItems returns items whose prices carry no location group.
	GetStandardItems(ctx context.Context, packageID int) ([]Item, error)
	// GetLocationItems returns items priced for the given price groups. An
	// Unfiltered argument matches every location-scoped price.
	GetLocationItems(ctx context.Context, packageID int, groups PriceGroups) ([]Item, error)
	// GetLocationID resolves a datacenter short name to exactly one location
	// id, returning ErrLocationNotFound or ErrLocationAmbiguous otherwise.
	GetLocationID(ctx context.Context, name string) (int, error)
}

// OrderClient verifies and places product orders.
type OrderClient interface {
	VerifyOrder(ctx context.Context, order ProductOrder) (*OrderResponse, error)
	PlaceOrder(ctx context.Context, order ProductOrder) (*OrderResponse, error)
}

// HardwareClient inspects and mutates existing bare-metal servers.
type HardwareClient interface {
	// ListHardware returns servers matching hostname, domain, and datacenter
	// by exact equality.
	ListHardware(ctx context.Context, hostname, domain, datacenter string) ([]Hardware, error)
	// CancelHardware cancels the server through its billing item.
	CancelHardware(ctx context.Context, hw Hardware, reason string) error
	// ReloadHardware reinstalls the operating system, installing the given
	// SSH keys.
	ReloadHardware(ctx context.Context, hardwareID int, sshKeyIDs []int) error
}

// Client combines every collaborator surface the adapter consumes.
type Client interface {
	CatalogClient
	OrderClient
	HardwareClient
}
