// Package config defines the desired-state document for one bare-metal
// server and its loading and static validation.
package config

// State is the requested lifecycle state of the server.
type State string

const (
	// StatePresent orders the server if no matching hardware exists.
	StatePresent State = "present"
	// StateAbsent cancels matching hardware.
	StateAbsent State = "absent"
	// StateReloaded reinstalls the operating system on matching hardware.
	StateReloaded State = "reloaded"
	// StateOptions emits the dynamic option schema and performs no
	// reconciliation.
	StateOptions State = "options"
)

// ValidStates enumerates every accepted lifecycle state.
var ValidStates = []State{StatePresent, StateAbsent, StateReloaded, StateOptions}

// StorageGroup arranges disks into a RAID group.
type StorageGroup struct {
	ArrayTypeID         int   `mapstructure:"array_type_id" yaml:"array_type_id"`
	HardDrives          []int `mapstructure:"hard_drives" yaml:"hard_drives"`
	ArraySize           *int  `mapstructure:"array_size" yaml:"array_size,omitempty"`
	PartitionTemplateID *int  `mapstructure:"partition_template_id" yaml:"partition_template_id,omitempty"`
}

// DesiredState is the caller-supplied target configuration for one server.
// It is constructed once from the input document and never mutated.
//
// Options holds the package-specific option choices (category code to item
// key-name); its legal keys depend on the package and datacenter and are only
// known after the catalog has been consulted.
type DesiredState struct {
	Hostname        string         `mapstructure:"hostname"`
	Domain          string         `mapstructure:"domain"`
	Datacenter      string         `mapstructure:"datacenter"`
	PackageID       int            `mapstructure:"pkgid"`
	Hourly          bool           `mapstructure:"hourly"`
	ImageTemplateID *int           `mapstructure:"image_template_id"`
	SSHKeyIDs       []int          `mapstructure:"ssh_keys"`
	StorageGroups   []StorageGroup `mapstructure:"storage_groups"`
	PrimaryVLAN     *int           `mapstructure:"primary_vlan"`
	BackendVLAN     *int           `mapstructure:"backend_vlan"`
	State           State          `mapstructure:"state"`

	// Options collects every document key that is not one of the standard
	// fields above.
	Options map[string]string `mapstructure:"-"`
}
