// Package schema synthesizes the dynamic option schema for a (package,
// datacenter) pair and validates desired-state records against it.
//
// The schema is a two-phase contract: Synthesize fetches category metadata
// and produces an explicit schema value, Validate checks a concrete record
// against it before any remote mutation.
package schema

import (
	"context"
	"sort"

	"slmetal/internal/catalog"
	"slmetal/internal/config"
)

// Field describes one recognized input field. Choices is nil for free-form
// fields and holds the full legal value set for catalog-backed ones.
type Field struct {
	Required bool
	Choices  []string
}

// Schema maps field names to their constraints.
type Schema map[string]Field

// Static document fields, always present with fixed requiredness.
var staticFields = map[string]bool{
	"hostname":          true,
	"domain":            true,
	"datacenter":        true,
	"pkgid":             true,
	"hourly":            false,
	"image_template_id": false,
	"ssh_keys":          false,
	"storage_groups":    false,
	"primary_vlan":      false,
	"backend_vlan":      false,
	"state":             false,
}

// Synthesize builds the recognized input schema for the package in the given
// datacenter. Dynamic fields are the category codes with at least one
// resolvable choice; their requiredness follows the catalog only for the
// present and options states, so cancel and reload requests are never blocked
// by missing provisioning-only options.
func Synthesize(ctx context.Context, res *catalog.Resolver, packageID int, datacenter string, state config.State) (Schema, error) {
	s := make(Schema, len(staticFields))
	for name, required := range staticFields {
		s[name] = Field{Required: required}
	}

	dcs, err := res.Datacenters(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dcs))
	for _, dc := range dcs {
		names = append(names, dc.Name)
	}
	sort.Strings(names)
	s["datacenter"] = Field{Required: true, Choices: names}

	cats, err := res.Configuration(ctx, packageID)
	if err != nil {
		return nil, err
	}
	choices, err := res.Categories(ctx, packageID, datacenter)
	if err != nil {
		return nil, err
	}

	provisioning := state == config.StatePresent || state == config.StateOptions
	for _, cat := range cats {
		values, ok := choices[cat.Code]
		if !ok {
			// Nothing valid to select; the field is omitted entirely.
			continue
		}
		s[cat.Code] = Field{
			Required: cat.Required && provisioning,
			Choices:  values,
		}
	}

	return s, nil
}

// DynamicFields returns the sorted catalog-backed field names, i.e. every
// field that is not one of the static document fields.
func (s Schema) DynamicFields() []string {
	var names []string
	for name := range s {
		if _, static := staticFields[name]; !static {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
