package config

import "fmt"

// Validate checks the static fields of the desired state. Package-specific
// options are validated later against the dynamic schema synthesized from the
// catalog.
func (ds *DesiredState) Validate() error {
	if ds.Hostname == "" {
		return fmt.Errorf("hostname is required")
	}
	if ds.Domain == "" {
		return fmt.Errorf("domain is required")
	}
	if ds.Datacenter == "" {
		return fmt.Errorf("datacenter is required")
	}
	if ds.PackageID == 0 {
		return fmt.Errorf("pkgid is required")
	}

	if !ds.State.Valid() {
		return fmt.Errorf("invalid state %q: must be one of %v", ds.State, ValidStates)
	}

	for i, sg := range ds.StorageGroups {
		if len(sg.HardDrives) == 0 {
			return fmt.Errorf("storage group %d has no hard drives", i)
		}
	}

	return nil
}

// Valid reports whether s is an accepted lifecycle state.
func (s State) Valid() bool {
	for _, valid := range ValidStates {
		if s == valid {
			return true
		}
	}
	return false
}
