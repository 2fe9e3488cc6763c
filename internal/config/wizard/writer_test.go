package wizard

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slmetal/internal/config"
	testfix "slmetal/internal/testing"
)

func TestWriteYAML_RoundTripsThroughLoader(t *testing.T) {
	r := &Result{
		Hostname:   "myserver",
		Domain:     "bestdomainevah.com",
		Datacenter: testfix.Datacenter,
		PackageID:  testfix.PackageID,
		Hourly:     false,
		Options: map[string]string{
			"server": testfix.KeyServer,
			"ram":    testfix.KeyRAM,
		},
	}

	path := filepath.Join(t.TempDir(), "slmetal.yaml")
	require.NoError(t, WriteYAML(r, path))

	ds, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "myserver", ds.Hostname)
	assert.Equal(t, "bestdomainevah.com", ds.Domain)
	assert.Equal(t, testfix.Datacenter, ds.Datacenter)
	assert.Equal(t, testfix.PackageID, ds.PackageID)
	assert.False(t, ds.Hourly)
	assert.Equal(t, config.StatePresent, ds.State)
	assert.Equal(t, testfix.KeyServer, ds.Options["server"])
	assert.Equal(t, testfix.KeyRAM, ds.Options["ram"])
}

func TestToDesiredState(t *testing.T) {
	r := &Result{
		Hostname:   "web1",
		Domain:     "example.com",
		Datacenter: "ams01",
		PackageID:  255,
		Hourly:     true,
		Options:    map[string]string{"ram": testfix.KeyRAM},
	}

	ds := r.ToDesiredState()
	assert.Equal(t, config.StatePresent, ds.State)
	assert.True(t, ds.Hourly)
	assert.Equal(t, "web1", ds.Hostname)
	assert.Equal(t, r.Options, ds.Options)
}

func TestValidateHostname(t *testing.T) {
	assert.NoError(t, validateHostname("web-01"))
	assert.Error(t, validateHostname(""))
	assert.Error(t, validateHostname("-web"))
	assert.Error(t, validateHostname("web_01"))
}

func TestValidateDomain(t *testing.T) {
	assert.NoError(t, validateDomain("example.com"))
	assert.Error(t, validateDomain(""))
	assert.Error(t, validateDomain("localhost"))
}
