package softlayer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/softlayer/softlayer-go/datatypes"
	"github.com/softlayer/softlayer-go/filter"
	"github.com/softlayer/softlayer-go/services"
	"github.com/softlayer/softlayer-go/session"
	"github.com/softlayer/softlayer-go/sl"

	"slmetal/internal/util/retry"
)

const (
	datacenterMask    = "id;name"
	packageMask       = "id;name;keyName;type.keyName"
	configurationMask = "isRequired;itemCategory.id;itemCategory.name;itemCategory.categoryCode"
	itemMask          = "id;keyName;itemCategory.id;prices.id;prices.locationGroupId"
	hardwareMask      = "id;hostname;domain;datacenter.name;billingItem.id"

	// bareMetalPackageType restricts package listings to the product family
	// this adapter can order.
	bareMetalPackageType = "BARE_METAL_CPU"

	hardwareOrderContainer = "SoftLayer_Container_Product_Order_Hardware_Server"

	// reloadToken acknowledges the destructive nature of an OS reload.
	reloadToken = "FORCE"
)

// RealClient implements Client against the SoftLayer API.
//
// The SoftLayer SDK is synchronous and carries no context; the ctx arguments
// only bound the retry loops around transient API failures.
type RealClient struct {
	sess        *session.Session
	maxAttempts int
	retryDelay  time.Duration
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithSession sets a custom SoftLayer session (useful for testing endpoints).
func WithSession(s *session.Session) ClientOption {
	return func(c *RealClient) {
		c.sess = s
	}
}

// WithRetry tunes the transient-error retry policy.
func WithRetry(maxAttempts int, initialDelay time.Duration) ClientOption {
	return func(c *RealClient) {
		c.maxAttempts = maxAttempts
		c.retryDelay = initialDelay
	}
}

// NewRealClient creates a client authenticated from the environment
// (SL_USERNAME / SL_API_KEY, or ~/.softlayer).
func NewRealClient(opts ...ClientOption) *RealClient {
	c := &RealClient{
		sess:        session.New(),
		maxAttempts: 3,
		retryDelay:  2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call runs one SDK operation with transient-error retry and metrics.
func (c *RealClient) call(ctx context.Context, method string, fn func() error) error {
	start := time.Now()
	err := retry.Do(ctx, func() error {
		if err := fn(); err != nil {
			if isTransient(err) {
				return err
			}
			return retry.Fatal(err)
		}
		return nil
	}, retry.MaxAttempts(c.maxAttempts), retry.InitialDelay(c.retryDelay))
	observeRequest(method, start, err)
	return err
}

// ListDatacenters returns every datacenter's short name and id.
func (c *RealClient) ListDatacenters(ctx context.Context) ([]Datacenter, error) {
	var raw []datatypes.Location
	err := c.call(ctx, "ListDatacenters", func() error {
		var err error
		raw, err = services.GetLocationDatacenterService(c.sess).
			Mask(datacenterMask).
			GetDatacenters()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list datacenters: %w", err)
	}

	dcs := make([]Datacenter, 0, len(raw))
	for _, l := range raw {
		if l.Id == nil || l.Name == nil {
			continue
		}
		dcs = append(dcs, Datacenter{ID: *l.Id, Name: *l.Name})
	}
	return dcs, nil
}

// ListPackages returns the orderable bare-metal package families.
func (c *RealClient) ListPackages(ctx context.Context) ([]Package, error) {
	var raw []datatypes.Product_Package
	err := c.call(ctx, "ListPackages", func() error {
		var err error
		raw, err = services.GetProductPackageService(c.sess).
			Mask(packageMask).
			Filter(filter.Build(filter.Path("type.keyName").Eq(bareMetalPackageType))).
			GetAllObjects()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	pkgs := make([]Package, 0, len(raw))
	for _, p := range raw {
		if p.Id == nil {
			continue
		}
		pkg := Package{
			ID:      *p.Id,
			Name:    sl.Get(p.Name, "").(string),
			KeyName: sl.Get(p.KeyName, "").(string),
		}
		if p.Type != nil && p.Type.KeyName != nil {
			pkg.Type = *p.Type.KeyName
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

// GetPackageConfiguration returns the configurable categories of a package,
// with the package-scoped required flag.
func (c *RealClient) GetPackageConfiguration(ctx context.Context, packageID int) ([]Category, error) {
	var raw []datatypes.Product_Package_Order_Configuration
	err := c.call(ctx, "GetPackageConfiguration", func() error {
		var err error
		raw, err = services.GetProductPackageService(c.sess).
			Id(packageID).
			Mask(configurationMask).
			GetConfiguration()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration for package %d: %w", packageID, err)
	}

	cats := make([]Category, 0, len(raw))
	for _, cfg := range raw {
		if cfg.ItemCategory == nil || cfg.ItemCategory.Id == nil || cfg.ItemCategory.CategoryCode == nil {
			continue
		}
		cats = append(cats, Category{
			ID:       *cfg.ItemCategory.Id,
			Code:     *cfg.ItemCategory.CategoryCode,
			Name:     sl.Get(cfg.ItemCategory.Name, "").(string),
			Required: cfg.IsRequired != nil && *cfg.IsRequired != 0,
		})
	}
	return cats, nil
}

// GetDatacenterPriceGroups returns the price group ids of the datacenter with
// the given short name.
func (c *RealClient) GetDatacenterPriceGroups(ctx context.Context, name string) ([]int, error) {
	var raw []datatypes.Location
	err := c.call(ctx, "GetDatacenterPriceGroups", func() error {
		var err error
		raw, err = services.GetLocationDatacenterService(c.sess).
			Mask("priceGroups").
			Filter(filter.Build(filter.Path("name").Eq(name))).
			GetDatacenters()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get price groups for %s: %w", name, err)
	}

	var ids []int
	if len(raw) > 0 {
		for _, g := range raw[0].PriceGroups {
			if g.Id != nil {
				ids = append(ids, *g.Id)
			}
		}
	}
	return ids, nil
}

// GetStandardItems returns the location-independent items of a package.
func (c *RealClient) GetStandardItems(ctx context.Context, packageID int) ([]Item, error) {
	return c.getItems(ctx, "GetStandardItems", packageID,
		filter.Build(filter.Path("items.prices.locationGroupId").IsNull()))
}

// GetLocationItems returns the items priced for the given price groups.
func (c *RealClient) GetLocationItems(ctx context.Context, packageID int, groups PriceGroups) ([]Item, error) {
	f := filter.Path("items.prices.locationGroupId").NotNull()
	if !groups.Unfiltered {
		args := make([]interface{}, len(groups.IDs))
		for i, id := range groups.IDs {
			args[i] = id
		}
		f = filter.Path("items.prices.locationGroupId").In(args...)
	}
	return c.getItems(ctx, "GetLocationItems", packageID, filter.Build(f))
}

func (c *RealClient) getItems(ctx context.Context, method string, packageID int, objectFilter string) ([]Item, error) {
	var raw []datatypes.Product_Item
	err := c.call(ctx, method, func() error {
		var err error
		raw, err = services.GetProductPackageService(c.sess).
			Id(packageID).
			Mask(itemMask).
			Filter(objectFilter).
			GetItems()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get items for package %d: %w", packageID, err)
	}

	items := make([]Item, 0, len(raw))
	for _, it := range raw {
		if it.Id == nil || it.KeyName == nil {
			continue
		}
		item := Item{ID: *it.Id, KeyName: *it.KeyName}
		if it.ItemCategory != nil && it.ItemCategory.Id != nil {
			item.CategoryID = *it.ItemCategory.Id
		}
		for _, p := range it.Prices {
			if p.Id == nil {
				continue
			}
			item.Prices = append(item.Prices, Price{ID: *p.Id, LocationGroupID: p.LocationGroupId})
		}
		items = append(items, item)
	}
	return items, nil
}

// GetLocationID resolves a datacenter short name to exactly one location id.
func (c *RealClient) GetLocationID(ctx context.Context, name string) (int, error) {
	var raw []datatypes.Location
	err := c.call(ctx, "GetLocationID", func() error {
		var err error
		raw, err = services.GetLocationService(c.sess).
			Mask(datacenterMask).
			Filter(filter.Build(filter.Path("name").Eq(name))).
			GetDatacenters()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to look up location %s: %w", name, err)
	}

	switch {
	case len(raw) > 1:
		return 0, fmt.Errorf("%w: %s matched %d locations", ErrLocationAmbiguous, name, len(raw))
	case len(raw) == 0 || raw[0].Id == nil:
		return 0, fmt.Errorf("%w: %s", ErrLocationNotFound, name)
	}
	return *raw[0].Id, nil
}

// VerifyOrder submits the order for server-side validation without placing it.
func (c *RealClient) VerifyOrder(ctx context.Context, order ProductOrder) (*OrderResponse, error) {
	container := toOrderContainer(order)

	var raw datatypes.Container_Product_Order
	err := c.call(ctx, "VerifyOrder", func() error {
		var err error
		raw, err = services.GetProductOrderService(c.sess).VerifyOrder(&container)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("order verification failed: %w", err)
	}

	return &OrderResponse{Prices: toPricedItems(raw.Prices)}, nil
}

// PlaceOrder submits the order for real.
func (c *RealClient) PlaceOrder(ctx context.Context, order ProductOrder) (*OrderResponse, error) {
	container := toOrderContainer(order)

	var receipt datatypes.Container_Product_Order_Receipt
	err := c.call(ctx, "PlaceOrder", func() error {
		var err error
		receipt, err = services.GetProductOrderService(c.sess).PlaceOrder(&container, sl.Bool(false))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("order placement failed: %w", err)
	}

	resp := &OrderResponse{Placed: true}
	if receipt.OrderId != nil {
		resp.OrderID = *receipt.OrderId
	}
	if receipt.OrderDetails != nil {
		resp.Prices = toPricedItems(receipt.OrderDetails.Prices)
	}
	return resp, nil
}

// ListHardware returns the account's hardware matching hostname, domain, and
// datacenter short name exactly.
func (c *RealClient) ListHardware(ctx context.Context, hostname, domain, datacenter string) ([]Hardware, error) {
	var raw []datatypes.Hardware
	err := c.call(ctx, "ListHardware", func() error {
		var err error
		raw, err = services.GetAccountService(c.sess).
			Mask(hardwareMask).
			Filter(filter.Build(
				filter.Path("hardware.hostname").Eq(hostname),
				filter.Path("hardware.domain").Eq(domain),
				filter.Path("hardware.datacenter.name").Eq(datacenter),
			)).
			GetHardware()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list hardware: %w", err)
	}

	hws := make([]Hardware, 0, len(raw))
	for _, h := range raw {
		if h.Id == nil {
			continue
		}
		hw := Hardware{
			ID:       *h.Id,
			Hostname: sl.Get(h.Hostname, "").(string),
			Domain:   sl.Get(h.Domain, "").(string),
		}
		if h.Datacenter != nil && h.Datacenter.Name != nil {
			hw.Datacenter = *h.Datacenter.Name
		}
		if h.BillingItem != nil && h.BillingItem.Id != nil {
			hw.BillingItemID = *h.BillingItem.Id
		}
		hws = append(hws, hw)
	}
	return hws, nil
}

// CancelHardware cancels the server's billing item on its anniversary date.
func (c *RealClient) CancelHardware(ctx context.Context, hw Hardware, reason string) error {
	if hw.BillingItemID == 0 {
		return fmt.Errorf("hardware %s.%s has no billing item to cancel", hw.Hostname, hw.Domain)
	}

	err := c.call(ctx, "CancelHardware", func() error {
		_, err := services.GetBillingItemService(c.sess).
			Id(hw.BillingItemID).
			CancelItem(sl.Bool(false), sl.Bool(true), sl.String(reason), sl.String(""))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to cancel hardware %s.%s: %w", hw.Hostname, hw.Domain, err)
	}
	return nil
}

// ReloadHardware reinstalls the operating system on the server.
func (c *RealClient) ReloadHardware(ctx context.Context, hardwareID int, sshKeyIDs []int) error {
	cfg := datatypes.Container_Hardware_Server_Configuration{
		SshKeyIds: sshKeyIDs,
	}

	err := c.call(ctx, "ReloadHardware", func() error {
		_, err := services.GetHardwareServerService(c.sess).
			Id(hardwareID).
			ReloadOperatingSystem(sl.String(reloadToken), &cfg)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to reload hardware %d: %w", hardwareID, err)
	}
	return nil
}

// toOrderContainer converts the adapter's order payload into the SDK's order
// container. SSH key ids are wrapped in a single container element, mirroring
// the API's expected nesting.
func toOrderContainer(order ProductOrder) datatypes.Container_Product_Order {
	container := datatypes.Container_Product_Order{
		ComplexType:      sl.String(hardwareOrderContainer),
		Quantity:         sl.Int(order.Quantity),
		PackageId:        sl.Int(order.PackageID),
		UseHourlyPricing: sl.Bool(order.UseHourlyPricing),
		ImageTemplateId:  order.ImageTemplateID,
	}

	if order.LocationID != nil {
		container.Location = sl.String(strconv.Itoa(*order.LocationID))
	}

	for _, hw := range order.Hardware {
		h := datatypes.Hardware{
			Hostname: sl.String(hw.Hostname),
			Domain:   sl.String(hw.Domain),
		}
		if hw.PrimaryVLAN != nil {
			h.PrimaryNetworkComponent = &datatypes.Network_Component{
				NetworkVlan: &datatypes.Network_Vlan{Id: hw.PrimaryVLAN},
			}
		}
		if hw.BackendVLAN != nil {
			h.PrimaryBackendNetworkComponent = &datatypes.Network_Component{
				NetworkVlan: &datatypes.Network_Vlan{Id: hw.BackendVLAN},
			}
		}
		container.Hardware = append(container.Hardware, h)
	}

	for _, p := range order.Prices {
		container.Prices = append(container.Prices, datatypes.Product_Item_Price{Id: sl.Int(p.ID)})
	}

	if len(order.SSHKeyIDs) > 0 {
		container.SshKeys = []datatypes.Container_Product_Order_SshKeys{
			{SshKeyIds: order.SSHKeyIDs},
		}
	}

	for _, sg := range order.StorageGroups {
		group := datatypes.Container_Product_Order_Storage_Group{
			ArrayTypeId:         sl.Int(sg.ArrayTypeID),
			HardDrives:          sg.HardDrives,
			PartitionTemplateId: sg.PartitionTemplateID,
		}
		if sg.ArraySize != nil {
			group.ArraySize = sl.Float(float64(*sg.ArraySize))
		}
		container.StorageGroups = append(container.StorageGroups, group)
	}

	return container
}

func toPricedItems(prices []datatypes.Product_Item_Price) []PricedItem {
	items := make([]PricedItem, 0, len(prices))
	for _, p := range prices {
		if p.Id == nil {
			continue
		}
		item := PricedItem{ID: *p.Id}
		if p.Item != nil && p.Item.KeyName != nil {
			item.KeyName = *p.Item.KeyName
		}
		if p.RecurringFee != nil {
			item.RecurringFee = float64(*p.RecurringFee)
		}
		if p.HourlyRecurringFee != nil {
			item.HourlyRecurringFee = float64(*p.HourlyRecurringFee)
		}
		items = append(items, item)
	}
	return items
}
