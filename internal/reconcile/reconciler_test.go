package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slmetal/internal/config"
	"slmetal/internal/platform/softlayer"
	testfix "slmetal/internal/testing"
)

func desired(state config.State) *config.DesiredState {
	return &config.DesiredState{
		Hostname:   "myserver",
		Domain:     "bestdomainevah.com",
		Datacenter: testfix.Datacenter,
		PackageID:  testfix.PackageID,
		State:      state,
		Options: map[string]string{
			"server":          testfix.KeyServer,
			"ram":             testfix.KeyRAM,
			"os":              testfix.KeyOS,
			"disk0":           testfix.KeyDisk,
			"disk_controller": "DISK_CONTROLLER_NONRAID",
			"bandwidth":       testfix.KeyBandwidth,
			"port_speed":      "100_MBPS_PUBLIC_PRIVATE_NETWORK_UPLINKS",
		},
	}
}

func existingServer() softlayer.Hardware {
	return softlayer.Hardware{
		ID:            90210,
		Hostname:      "myserver",
		Domain:        "bestdomainevah.com",
		Datacenter:    testfix.Datacenter,
		BillingItemID: 5511,
	}
}

func TestEvaluate_PresentOrdersWhenMissing(t *testing.T) {
	fix := testfix.NewCatalogFixture()
	var placed softlayer.ProductOrder
	fix.Mock().PlaceOrderFunc = func(_ context.Context, o softlayer.ProductOrder) (*softlayer.OrderResponse, error) {
		placed = o
		return &softlayer.OrderResponse{OrderID: 777, Placed: true}, nil
	}

	res, err := New(fix.Mock()).Evaluate(context.Background(), desired(config.StatePresent))
	require.NoError(t, err)

	assert.True(t, res.Changed)
	require.NotNil(t, res.Response)
	assert.Equal(t, 777, res.Response.OrderID)
	assert.Equal(t, 1, fix.Mock().PlaceOrderCalls)
	assert.Equal(t, 0, fix.Mock().VerifyOrderCalls)

	require.Len(t, placed.Hardware, 1)
	assert.Equal(t, "myserver", placed.Hardware[0].Hostname)
	assert.Equal(t, "bestdomainevah.com", placed.Hardware[0].Domain)
	assert.False(t, placed.UseHourlyPricing)
	names := make(map[string]bool)
	for _, p := range placed.Prices {
		names[p.Name] = true
	}
	assert.True(t, names[testfix.KeyServer])
	assert.True(t, names[testfix.KeyRAM])
}

func TestEvaluate_PresentUnchangedWhenExisting(t *testing.T) {
	fix := testfix.NewCatalogFixture().WithExistingHardware(existingServer())

	res, err := New(fix.Mock()).Evaluate(context.Background(), desired(config.StatePresent))
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.Equal(t, 0, fix.Mock().PlaceOrderCalls)
	assert.Equal(t, 0, fix.Mock().VerifyOrderCalls)
}

func TestEvaluate_PresentDryRunVerifies(t *testing.T) {
	fix := testfix.NewCatalogFixture()

	res, err := New(fix.Mock(), WithDryRun(true)).Evaluate(context.Background(), desired(config.StatePresent))
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.Equal(t, 1, fix.Mock().VerifyOrderCalls)
	assert.Equal(t, 0, fix.Mock().PlaceOrderCalls)
}

func TestEvaluate_PresentUnknownOptionIsValidationFailure(t *testing.T) {
	fix := testfix.NewCatalogFixture()
	ds := desired(config.StatePresent)
	ds.Options["flux_capacitor"] = "MK2"

	_, err := New(fix.Mock()).Evaluate(context.Background(), ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown option "flux_capacitor"`)
	assert.Equal(t, 0, fix.Mock().PlaceOrderCalls)
	assert.Equal(t, 0, fix.Mock().VerifyOrderCalls)
	assert.Equal(t, 0, fix.Mock().CancelCalls)
	assert.Equal(t, 0, fix.Mock().ReloadCalls)
}

func TestEvaluate_AbsentCancelsExisting(t *testing.T) {
	fix := testfix.NewCatalogFixture().WithExistingHardware(existingServer())
	var gotReason string
	var gotHW softlayer.Hardware
	fix.Mock().CancelHardwareFunc = func(_ context.Context, hw softlayer.Hardware, reason string) error {
		gotHW = hw
		gotReason = reason
		return nil
	}

	res, err := New(fix.Mock()).Evaluate(context.Background(), desired(config.StateAbsent))
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.Equal(t, 1, fix.Mock().CancelCalls)
	assert.Equal(t, 90210, gotHW.ID)
	assert.Equal(t, "No longer needed", gotReason)
}

func TestEvaluate_AbsentUnchangedWhenMissing(t *testing.T) {
	fix := testfix.NewCatalogFixture()

	res, err := New(fix.Mock()).Evaluate(context.Background(), desired(config.StateAbsent))
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.Equal(t, 0, fix.Mock().CancelCalls)
}

func TestEvaluate_AbsentCancelsOnlyFirstMatch(t *testing.T) {
	second := existingServer()
	second.ID = 90211
	fix := testfix.NewCatalogFixture().WithExistingHardware(existingServer(), second)

	res, err := New(fix.Mock()).Evaluate(context.Background(), desired(config.StateAbsent))
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.Equal(t, 1, fix.Mock().CancelCalls)
}

func TestEvaluate_ReloadedReinstallsExisting(t *testing.T) {
	fix := testfix.NewCatalogFixture().WithExistingHardware(existingServer())
	var gotID int
	var gotKeys []int
	fix.Mock().ReloadHardwareFunc = func(_ context.Context, hardwareID int, sshKeyIDs []int) error {
		gotID = hardwareID
		gotKeys = sshKeyIDs
		return nil
	}
	ds := desired(config.StateReloaded)
	ds.SSHKeyIDs = []int{42}

	res, err := New(fix.Mock()).Evaluate(context.Background(), ds)
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.Equal(t, 90210, gotID)
	assert.Equal(t, []int{42}, gotKeys)
}

func TestEvaluate_ReloadedFatalWhenMissing(t *testing.T) {
	fix := testfix.NewCatalogFixture()

	_, err := New(fix.Mock()).Evaluate(context.Background(), desired(config.StateReloaded))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "myserver.bestdomainevah.com in fra02 not found")
	assert.Equal(t, 0, fix.Mock().ReloadCalls)
}

func TestEvaluate_OptionsEmitsSchemaOnly(t *testing.T) {
	fix := testfix.NewCatalogFixture()

	res, err := New(fix.Mock()).Evaluate(context.Background(), desired(config.StateOptions))
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.Nil(t, res.Response)
	require.NotNil(t, res.Schema)
	assert.Contains(t, res.Schema, "ram")
	assert.Equal(t, 0, fix.Mock().ListHardwareCalls)
	assert.Equal(t, 0, fix.Mock().PlaceOrderCalls)
	assert.Equal(t, 0, fix.Mock().VerifyOrderCalls)
}
