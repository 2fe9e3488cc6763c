package schema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slmetal/internal/catalog"
	"slmetal/internal/config"
	testfix "slmetal/internal/testing"
)

func synthesize(t *testing.T, state config.State) Schema {
	t.Helper()
	fix := testfix.NewCatalogFixture()
	res := catalog.NewResolver(catalog.NewCache(fix.Mock()))

	s, err := Synthesize(context.Background(), res, testfix.PackageID, testfix.Datacenter, state)
	require.NoError(t, err)
	return s
}

func TestSynthesize_StaticFields(t *testing.T) {
	s := synthesize(t, config.StatePresent)

	assert.True(t, s["hostname"].Required)
	assert.True(t, s["domain"].Required)
	assert.True(t, s["pkgid"].Required)
	assert.False(t, s["hourly"].Required)
	assert.False(t, s["ssh_keys"].Required)

	require.Contains(t, s, "datacenter")
	assert.True(t, s["datacenter"].Required)
	assert.Equal(t, []string{"ams01", "dal05", "fra02"}, s["datacenter"].Choices)
}

func TestSynthesize_DynamicFieldsCarryCatalogChoices(t *testing.T) {
	s := synthesize(t, config.StatePresent)

	require.Contains(t, s, "ram")
	assert.True(t, s["ram"].Required)
	assert.Contains(t, s["ram"].Choices, testfix.KeyRAM)

	require.Contains(t, s, "monitoring")
	assert.False(t, s["monitoring"].Required)
}

func TestSynthesize_EmptyCategoriesOmitted(t *testing.T) {
	s := synthesize(t, config.StatePresent)
	assert.NotContains(t, s, "evault")
}

func TestSynthesize_RequirednessInversion(t *testing.T) {
	for _, state := range []config.State{config.StateAbsent, config.StateReloaded} {
		s := synthesize(t, state)
		for _, name := range s.DynamicFields() {
			assert.False(t, s[name].Required, "state %s: dynamic field %s must not be required", state, name)
		}
	}

	for _, state := range []config.State{config.StatePresent, config.StateOptions} {
		s := synthesize(t, state)
		assert.True(t, s["server"].Required, "state %s: catalog requiredness must be preserved", state)
		assert.True(t, s["disk0"].Required, "state %s: catalog requiredness must be preserved", state)
	}
}

func TestValidate(t *testing.T) {
	s := synthesize(t, config.StatePresent)

	base := func() *config.DesiredState {
		return &config.DesiredState{
			Hostname:   "myserver",
			Domain:     "bestdomainevah.com",
			Datacenter: testfix.Datacenter,
			PackageID:  testfix.PackageID,
			State:      config.StatePresent,
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

	t.Run("valid record passes", func(t *testing.T) {
		assert.NoError(t, Validate(base(), s))
	})

	t.Run("unknown option rejected", func(t *testing.T) {
		ds := base()
		ds.Options["flux_capacitor"] = "MK2"
		err := Validate(ds, s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown option "flux_capacitor"`)
	})

	t.Run("value outside choice set rejected", func(t *testing.T) {
		ds := base()
		ds.Options["ram"] = "RAM_1_PB"
		err := Validate(ds, s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `not a valid choice`)
	})

	t.Run("missing required option rejected", func(t *testing.T) {
		ds := base()
		delete(ds.Options, "ram")
		err := Validate(ds, s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required option "ram" is missing`)
	})

	t.Run("unknown datacenter rejected", func(t *testing.T) {
		ds := base()
		ds.Datacenter = "atlantis01"
		err := Validate(ds, s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown datacenter`)
	})

	t.Run("cancel not blocked by missing options", func(t *testing.T) {
		absent := synthesize(t, config.StateAbsent)
		ds := base()
		ds.State = config.StateAbsent
		ds.Options = map[string]string{}
		assert.NoError(t, Validate(ds, absent))
	})
}
