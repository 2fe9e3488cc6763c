// Package testing provides shared catalog fixtures for unit tests.
package testing

import (
	"context"

	"slmetal/internal/platform/softlayer"
	"slmetal/internal/util/ptr"
)

// Fixture identifiers used by the canned bare-metal catalog.
const (
	PackageID  = 253
	Datacenter = "fra02"

	// LocationID is the location id fra02 resolves to.
	LocationID = 449506

	// PriceGroupID is fra02's price group.
	PriceGroupID = 503
)

// Well-known option key-names in the canned catalog.
const (
	KeyServer    = "INTEL_XEON_2620_2_40"
	KeyRAM       = "RAM_64_GB_DDR3_1333_REG_2"
	KeyOS        = "OS_UBUNTU_14_04_LTS_TRUSTY_TAHR_64_BIT"
	KeyDisk      = "HARD_DRIVE_1_00_TB_SATA_2"
	KeyBandwidth = "BANDWIDTH_500_GB"

	// KeyUnpriced names an item that exists but carries no prices.
	KeyUnpriced = "MONITORING_PACKAGE_PLACEHOLDER"
)

// Price ids resolved for the well-known key-names (standard pricing).
const (
	PriceServer    = 50369
	PriceRAM       = 1017
	PriceOS        = 17438
	PriceDisk      = 876
	PriceBandwidth = 50233

	// Location-override price ids for fra02.
	PriceRAMFra02  = 201017
	PriceDiskFra02 = 200876
)

// CatalogFixture provides a pre-configured mock collaborator exposing a small
// but realistic bare-metal catalog for package 253 in fra02.
type CatalogFixture struct {
	mock *softlayer.MockClient
}

// NewCatalogFixture creates a fixture with the canned catalog wired in.
func NewCatalogFixture() *CatalogFixture {
	f := &CatalogFixture{mock: &softlayer.MockClient{}}

	f.mock.ListDatacentersFunc = func(_ context.Context) ([]softlayer.Datacenter, error) {
		return []softlayer.Datacenter{
			{ID: LocationID, Name: Datacenter},
			{ID: 265592, Name: "ams01"},
			{ID: 138124, Name: "dal05"},
		}, nil
	}

	f.mock.ListPackagesFunc = func(_ context.Context) ([]softlayer.Package, error) {
		return []softlayer.Package{
			{ID: PackageID, Name: "Dual E5-2600 (12 Drives)", KeyName: "DUAL_E52600_12_DRIVES", Type: "BARE_METAL_CPU"},
			{ID: 255, Name: "Quad Xeon (24 Drives)", KeyName: "QUAD_XEON_24_DRIVES", Type: "BARE_METAL_CPU"},
		}, nil
	}

	f.mock.GetPackageConfigurationFunc = func(_ context.Context, _ int) ([]softlayer.Category, error) {
		return []softlayer.Category{
			{ID: 1, Code: "server", Name: "Server", Required: true},
			{ID: 3, Code: "ram", Name: "RAM", Required: true},
			{ID: 12, Code: "os", Name: "Operating System", Required: true},
			{ID: 4, Code: "disk0", Name: "First Hard Drive", Required: true},
			{ID: 5, Code: "disk1", Name: "Second Hard Drive", Required: false},
			{ID: 6, Code: "disk2", Name: "Third Hard Drive", Required: false},
			{ID: 11, Code: "disk_controller", Name: "Disk Controller", Required: true},
			{ID: 10, Code: "bandwidth", Name: "Public Bandwidth", Required: true},
			{ID: 26, Code: "port_speed", Name: "Uplink Port Speeds", Required: true},
			{ID: 20, Code: "monitoring", Name: "Monitoring", Required: false},
			// No items resolve for this category; it must be pruned.
			{ID: 99, Code: "evault", Name: "EVault", Required: false},
		}, nil
	}

	f.mock.GetDatacenterPriceGroupsFunc = func(_ context.Context, name string) ([]int, error) {
		if name == Datacenter {
			return []int{PriceGroupID}, nil
		}
		return nil, nil
	}

	f.mock.GetStandardItemsFunc = func(_ context.Context, _ int) ([]softlayer.Item, error) {
		return []softlayer.Item{
			{ID: 4911, KeyName: KeyServer, CategoryID: 1, Prices: []softlayer.Price{{ID: PriceServer}}},
			{ID: 4912, KeyName: "INTEL_XEON_2650_2_30", CategoryID: 1, Prices: []softlayer.Price{{ID: 50373}}},
			{ID: 254, KeyName: KeyRAM, CategoryID: 3, Prices: []softlayer.Price{{ID: PriceRAM}}},
			{ID: 251, KeyName: "RAM_32_GB_DDR3_1333_REG_2", CategoryID: 3, Prices: []softlayer.Price{{ID: 1016}}},
			{ID: 4668, KeyName: KeyOS, CategoryID: 12, Prices: []softlayer.Price{{ID: PriceOS}}},
			{ID: 14, KeyName: KeyDisk, CategoryID: 4, Prices: []softlayer.Price{{ID: PriceDisk}}},
			{ID: 18, KeyName: "HARD_DRIVE_2_00_TB_SATA_2", CategoryID: 4, Prices: []softlayer.Price{{ID: 1258}}},
			// The catalog reports a different, inconsistent set for disk1.
			{ID: 19, KeyName: "HARD_DRIVE_4_00_TB_SATA_2", CategoryID: 5, Prices: []softlayer.Price{{ID: 1259}}},
			{ID: 876, KeyName: "DISK_CONTROLLER_NONRAID", CategoryID: 11, Prices: []softlayer.Price{{ID: 1065}}},
			{ID: 1800, KeyName: KeyBandwidth, CategoryID: 10, Prices: []softlayer.Price{{ID: PriceBandwidth}}},
			{ID: 1784, KeyName: "100_MBPS_PUBLIC_PRIVATE_NETWORK_UPLINKS", CategoryID: 26, Prices: []softlayer.Price{{ID: 26737}}},
			{ID: 56, KeyName: "MONITORING_HOST_PING", CategoryID: 20, Prices: []softlayer.Price{{ID: 55}}},
			{ID: 999, KeyName: KeyUnpriced, CategoryID: 20},
		}, nil
	}

	f.mock.GetLocationItemsFunc = func(_ context.Context, _ int, _ softlayer.PriceGroups) ([]softlayer.Item, error) {
		return []softlayer.Item{
			{ID: 254, KeyName: KeyRAM, CategoryID: 3, Prices: []softlayer.Price{{ID: PriceRAMFra02, LocationGroupID: ptr.Int(PriceGroupID)}}},
			{ID: 14, KeyName: KeyDisk, CategoryID: 4, Prices: []softlayer.Price{{ID: PriceDiskFra02, LocationGroupID: ptr.Int(PriceGroupID)}}},
			// No standard counterpart; the overlay must drop this entry.
			{ID: 5000, KeyName: "FRA02_ONLY_SPECIAL", CategoryID: 3, Prices: []softlayer.Price{{ID: 999999, LocationGroupID: ptr.Int(PriceGroupID)}}},
		}, nil
	}

	f.mock.GetLocationIDFunc = func(_ context.Context, name string) (int, error) {
		if name == Datacenter {
			return LocationID, nil
		}
		return 0, softlayer.ErrLocationNotFound
	}

	return f
}

// Mock returns the underlying MockClient for custom configuration.
func (f *CatalogFixture) Mock() *softlayer.MockClient {
	return f.mock
}

// WithExistingHardware makes the hardware inventory report the given servers
// for any lookup.
func (f *CatalogFixture) WithExistingHardware(hws ...softlayer.Hardware) *CatalogFixture {
	f.mock.ListHardwareFunc = func(_ context.Context, _, _, _ string) ([]softlayer.Hardware, error) {
		return hws, nil
	}
	return f
}
