package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a desired-state document from a YAML file.
func Load(path string) (*DesiredState, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read desired-state file: %w", err)
	}
	return Parse(data)
}

// Parse parses a desired-state document. Standard fields are decoded into the
// struct; every remaining key is collected into Options for the dynamic,
// catalog-dependent validation phase.
func Parse(data []byte) (*DesiredState, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var ds DesiredState
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &ds,
		Metadata:         &md,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode desired state: %w", err)
	}

	ds.Options = make(map[string]string, len(md.Unused))
	for _, key := range md.Unused {
		// Nested unused keys are reported with dotted paths; only top-level
		// leftovers are package-specific options.
		if strings.Contains(key, ".") {
			continue
		}
		value, err := optionValue(raw[key])
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", key, err)
		}
		ds.Options[key] = value
	}

	applyDefaults(&ds, raw)

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("desired-state validation failed: %w", err)
	}
	return &ds, nil
}

// applyDefaults fills fields the document left unset. Hourly defaults to true
// only when the key is genuinely absent, so an explicit "hourly: false"
// survives.
func applyDefaults(ds *DesiredState, raw map[string]interface{}) {
	if _, explicitlySet := raw["hourly"]; !explicitlySet {
		ds.Hourly = true
	}
	if ds.State == "" {
		ds.State = StatePresent
	}
}

// optionValue coerces a package-specific option to its key-name string.
func optionValue(v interface{}) (string, error) {
	switch value := v.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case int:
		return fmt.Sprintf("%d", value), nil
	default:
		return "", fmt.Errorf("expected an option key-name, got %T", v)
	}
}
