package softlayer

import (
	"testing"

	"github.com/softlayer/softlayer-go/datatypes"
	"github.com/softlayer/softlayer-go/sl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrderContainer(t *testing.T) {
	locationID := 449506
	vlan := 1234
	size := 2000

	container := toOrderContainer(ProductOrder{
		Quantity:         1,
		PackageID:        253,
		UseHourlyPricing: true,
		LocationID:       &locationID,
		Hardware: []HardwareSpec{{
			Hostname:    "myserver",
			Domain:      "bestdomainevah.com",
			PrimaryVLAN: &vlan,
		}},
		Prices:    []OrderPrice{{ID: 50369, Name: "INTEL_XEON_2620_2_40"}, {ID: 1017, Name: "RAM_64_GB_DDR3_1333_REG_2"}},
		SSHKeyIDs: []int{42, 43},
		StorageGroups: []StorageGroup{
			{ArrayTypeID: 2, HardDrives: []int{0, 1}, ArraySize: &size},
		},
	})

	require.NotNil(t, container.ComplexType)
	assert.Equal(t, "SoftLayer_Container_Product_Order_Hardware_Server", *container.ComplexType)
	assert.Equal(t, 1, *container.Quantity)
	assert.Equal(t, 253, *container.PackageId)
	assert.True(t, *container.UseHourlyPricing)

	// The API takes the location id as a string.
	require.NotNil(t, container.Location)
	assert.Equal(t, "449506", *container.Location)

	require.Len(t, container.Hardware, 1)
	assert.Equal(t, "myserver", *container.Hardware[0].Hostname)
	require.NotNil(t, container.Hardware[0].PrimaryNetworkComponent)
	assert.Equal(t, 1234, *container.Hardware[0].PrimaryNetworkComponent.NetworkVlan.Id)
	assert.Nil(t, container.Hardware[0].PrimaryBackendNetworkComponent)

	require.Len(t, container.Prices, 2)
	assert.Equal(t, 50369, *container.Prices[0].Id)

	// All key ids share one wrapping container element.
	require.Len(t, container.SshKeys, 1)
	assert.Equal(t, []int{42, 43}, container.SshKeys[0].SshKeyIds)

	require.Len(t, container.StorageGroups, 1)
	assert.Equal(t, 2, *container.StorageGroups[0].ArrayTypeId)
	require.NotNil(t, container.StorageGroups[0].ArraySize)
	assert.Equal(t, datatypes.Float64(2000), *container.StorageGroups[0].ArraySize)
}

func TestToOrderContainer_OmitsEmptySections(t *testing.T) {
	container := toOrderContainer(ProductOrder{Quantity: 1, PackageID: 253})

	assert.Nil(t, container.Location)
	assert.Empty(t, container.SshKeys)
	assert.Empty(t, container.StorageGroups)
	assert.Nil(t, container.ImageTemplateId)
}

func TestToPricedItems(t *testing.T) {
	fee := datatypes.Float64(250.5)
	hourly := datatypes.Float64(0.38)
	items := toPricedItems([]datatypes.Product_Item_Price{
		{
			Id:                 sl.Int(50369),
			RecurringFee:       &fee,
			HourlyRecurringFee: &hourly,
			Item:               &datatypes.Product_Item{KeyName: sl.String("INTEL_XEON_2620_2_40")},
		},
		{Id: nil},
		{Id: sl.Int(1017)},
	})

	require.Len(t, items, 2)
	assert.Equal(t, 50369, items[0].ID)
	assert.Equal(t, "INTEL_XEON_2620_2_40", items[0].KeyName)
	assert.Equal(t, 250.5, items[0].RecurringFee)
	assert.Equal(t, 0.38, items[0].HourlyRecurringFee)
	assert.Equal(t, 1017, items[1].ID)
	assert.Equal(t, "", items[1].KeyName)
}

func TestMockClientImplementsClient(t *testing.T) {
	var client Client = &MockClient{}
	assert.NotNil(t, client)
}
