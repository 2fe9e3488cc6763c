package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slmetal/internal/platform/softlayer"
	testfix "slmetal/internal/testing"
)

func TestCache_StandardItemsFetchedOnce(t *testing.T) {
	fix := testfix.NewCatalogFixture()
	cache := NewCache(fix.Mock())
	ctx := context.Background()

	first, err := cache.StandardItems(ctx, testfix.PackageID)
	require.NoError(t, err)
	second, err := cache.StandardItems(ctx, testfix.PackageID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fix.Mock().StandardItemsCalls)
}

func TestCache_LocationItemsKeyedByPackageAndDatacenter(t *testing.T) {
	fix := testfix.NewCatalogFixture()
	cache := NewCache(fix.Mock())
	ctx := context.Background()

	_, err := cache.LocationItems(ctx, testfix.PackageID, testfix.Datacenter)
	require.NoError(t, err)
	_, err = cache.LocationItems(ctx, testfix.PackageID, testfix.Datacenter)
	require.NoError(t, err)
	assert.Equal(t, 1, fix.Mock().LocationItemsCalls)

	// A different datacenter is a different cache entry.
	_, err = cache.LocationItems(ctx, testfix.PackageID, "ams01")
	require.NoError(t, err)
	assert.Equal(t, 2, fix.Mock().LocationItemsCalls)
}

func TestCache_PriceGroupsKnownDatacenter(t *testing.T) {
	fix := testfix.NewCatalogFixture()
	cache := NewCache(fix.Mock())

	groups, err := cache.PriceGroups(context.Background(), testfix.Datacenter)
	require.NoError(t, err)

	assert.False(t, groups.Unfiltered)
	assert.Equal(t, []int{testfix.PriceGroupID}, groups.IDs)
	assert.Equal(t, 1, fix.Mock().PriceGroupsCalls)
}

func TestCache_PriceGroupsUnknownDatacenterIsUnfiltered(t *testing.T) {
	fix := testfix.NewCatalogFixture()
	cache := NewCache(fix.Mock())

	groups, err := cache.PriceGroups(context.Background(), "atlantis01")
	require.NoError(t, err)

	assert.True(t, groups.Unfiltered)
	assert.Empty(t, groups.IDs)
	// The fallback is decided from the datacenter table; no remote price
	// group lookup happens for an unknown name.
	assert.Equal(t, 0, fix.Mock().PriceGroupsCalls)
}

func TestCache_PriceGroupsMemoized(t *testing.T) {
	fix := testfix.NewCatalogFixture()
	cache := NewCache(fix.Mock())
	ctx := context.Background()

	_, err := cache.PriceGroups(ctx, testfix.Datacenter)
	require.NoError(t, err)
	_, err = cache.PriceGroups(ctx, testfix.Datacenter)
	require.NoError(t, err)

	assert.Equal(t, 1, fix.Mock().PriceGroupsCalls)
}

func TestCache_RemoteErrorPropagatesAndIsNotCached(t *testing.T) {
	boom := errors.New("api down")
	mock := &softlayer.MockClient{
		GetStandardItemsFunc: func(_ context.Context, _ int) ([]softlayer.Item, error) {
			return nil, boom
		},
	}
	cache := NewCache(mock)

	_, err := cache.StandardItems(context.Background(), testfix.PackageID)
	assert.ErrorIs(t, err, boom)

	_, err = cache.StandardItems(context.Background(), testfix.PackageID)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, mock.StandardItemsCalls)
}
