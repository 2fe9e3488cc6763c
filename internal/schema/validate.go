package schema

import (
	"fmt"
	"sort"

	"slmetal/internal/config"
)

// Validate checks a desired-state record against the synthesized schema:
// every supplied option key must be a known field, supplied values must be in
// the field's legal choice set, required fields must have a value, and the
// datacenter must be a known one. No remote mutation may happen before this
// passes.
func Validate(ds *config.DesiredState, s Schema) error {
	if dc, ok := s["datacenter"]; ok && dc.Choices != nil {
		if !contains(dc.Choices, ds.Datacenter) {
			return fmt.Errorf("unknown datacenter %q", ds.Datacenter)
		}
	}

	// Deterministic error selection.
	keys := make([]string, 0, len(ds.Options))
	for key := range ds.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field, ok := s[key]
		if !ok {
			return fmt.Errorf("unknown option %q", key)
		}
		value := ds.Options[key]
		if value == "" {
			continue
		}
		if field.Choices != nil && !contains(field.Choices, value) {
			return fmt.Errorf("option %q: %q is not a valid choice", key, value)
		}
	}

	for _, name := range s.DynamicFields() {
		if !s[name].Required {
			continue
		}
		if ds.Options[name] == "" {
			return fmt.Errorf("required option %q is missing", name)
		}
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
