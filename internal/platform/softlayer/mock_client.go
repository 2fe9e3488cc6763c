package softlayer

import "context"

// MockClient is a mock implementation of Client. Each method delegates to the
// corresponding Func field when set and returns an empty default otherwise.
type MockClient struct {
	ListDatacentersFunc          func(ctx context.Context) ([]Datacenter, error)
	ListPackagesFunc             func(ctx context.Context) ([]Package, error)
	GetPackageConfigurationFunc  func(ctx context.Context, packageID int) ([]Category, error)
	GetDatacenterPriceGroupsFunc func(ctx context.Context, name string) ([]int, error)
	GetStandardItemsFunc         func(ctx context.Context, packageID int) ([]Item, error)
	GetLocationItemsFunc         func(ctx context.Context, packageID int, groups PriceGroups) ([]Item, error)
	GetLocationIDFunc            func(ctx context.Context, name string) (int, error)
	VerifyOrderFunc              func(ctx context.Context, order ProductOrder) (*OrderResponse, error)
	PlaceOrderFunc               func(ctx context.Context, order ProductOrder) (*OrderResponse, error)
	ListHardwareFunc             func(ctx context.Context, hostname, domain, datacenter string) ([]Hardware, error)
	CancelHardwareFunc           func(ctx context.Context, hw Hardware, reason string) error
	ReloadHardwareFunc           func(ctx context.Context, hardwareID int, sshKeyIDs []int) error

	// Call counters for asserting how often the remote was hit.
	StandardItemsCalls int
	LocationItemsCalls int
	PriceGroupsCalls   int
	VerifyOrderCalls   int
	PlaceOrderCalls    int
	ListHardwareCalls  int
	CancelCalls        int
	ReloadCalls        int
}

// Ensure interface compliance
var _ Client = (*MockClient)(nil)

// ListDatacenters mocks the datacenter listing.
func (m *MockClient) ListDatacenters(ctx context.Context) ([]Datacenter, error) {
	if m.ListDatacentersFunc != nil {
		return m.ListDatacentersFunc(ctx)
	}
	return nil, nil
}

// ListPackages mocks the package listing.
func (m *MockClient) ListPackages(ctx context.Context) ([]Package, error) {
	if m.ListPackagesFunc != nil {
		return m.ListPackagesFunc(ctx)
	}
	return nil, nil
}

// GetPackageConfiguration mocks the category lookup.
func (m *MockClient) GetPackageConfiguration(ctx context.Context, packageID int) ([]Category, error) {
	if m.GetPackageConfigurationFunc != nil {
		return m.GetPackageConfigurationFunc(ctx, packageID)
	}
	return nil, nil
}

// GetDatacenterPriceGroups mocks the price group lookup.
func (m *MockClient) GetDatacenterPriceGroups(ctx context.Context, name string) ([]int, error) {
	m.PriceGroupsCalls++
	if m.GetDatacenterPriceGroupsFunc != nil {
		return m.GetDatacenterPriceGroupsFunc(ctx, name)
	}
	return nil, nil
}

// GetStandardItems mocks the standard item listing.
func (m *MockClient) GetStandardItems(ctx context.Context, packageID int) ([]Item, error) {
	m.StandardItemsCalls++
	if m.GetStandardItemsFunc != nil {
		return m.GetStandardItemsFunc(ctx, packageID)
	}
	return nil, nil
}

// GetLocationItems mocks the location item listing.
func (m *MockClient) GetLocationItems(ctx context.Context, packageID int, groups PriceGroups) ([]Item, error) {
	m.LocationItemsCalls++
	if m.GetLocationItemsFunc != nil {
		return m.GetLocationItemsFunc(ctx, packageID, groups)
	}
	return nil, nil
}

// GetLocationID mocks the location id lookup.
func (m *MockClient) GetLocationID(ctx context.Context, name string) (int, error) {
	if m.GetLocationIDFunc != nil {
		return m.GetLocationIDFunc(ctx, name)
	}
	return 0, ErrLocationNotFound
}

// VerifyOrder mocks order verification.
func (m *MockClient) VerifyOrder(ctx context.Context, order ProductOrder) (*OrderResponse, error) {
	m.VerifyOrderCalls++
	if m.VerifyOrderFunc != nil {
		return m.VerifyOrderFunc(ctx, order)
	}
	return &OrderResponse{}, nil
}

// PlaceOrder mocks order placement.
func (m *MockClient) PlaceOrder(ctx context.Context, order ProductOrder) (*OrderResponse, error) {
	m.PlaceOrderCalls++
	if m.PlaceOrderFunc != nil {
		return m.PlaceOrderFunc(ctx, order)
	}
	return &OrderResponse{OrderID: 1, Placed: true}, nil
}

// ListHardware mocks the hardware inventory lookup.
func (m *MockClient) ListHardware(ctx context.Context, hostname, domain, datacenter string) ([]Hardware, error) {
	m.ListHardwareCalls++
	if m.ListHardwareFunc != nil {
		return m.ListHardwareFunc(ctx, hostname, domain, datacenter)
	}
	return nil, nil
}

// CancelHardware mocks hardware cancellation.
func (m *MockClient) CancelHardware(ctx context.Context, hw Hardware, reason string) error {
	m.CancelCalls++
	if m.CancelHardwareFunc != nil {
		return m.CancelHardwareFunc(ctx, hw, reason)
	}
	return nil
}

// ReloadHardware mocks an operating system reload.
func (m *MockClient) ReloadHardware(ctx context.Context, hardwareID int, sshKeyIDs []int) error {
	m.ReloadCalls++
	if m.ReloadHardwareFunc != nil {
		return m.ReloadHardwareFunc(ctx, hardwareID, sshKeyIDs)
	}
	return nil
}
