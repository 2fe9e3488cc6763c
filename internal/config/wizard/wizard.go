// Package wizard implements the interactive configuration wizard. It walks
// the user through the static server identity first, then derives the
// package-specific questions from the live catalog.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"slmetal/internal/catalog"
	"slmetal/internal/config"
	"slmetal/internal/schema"
)

// Result holds the user's choices.
type Result struct {
	Hostname   string
	Domain     string
	Datacenter string
	PackageID  int
	Hourly     bool
	Options    map[string]string
}

// Run walks the user through a new server configuration. The identity form
// runs first because the option questions depend on the chosen package and
// datacenter.
func Run(ctx context.Context, res *catalog.Resolver) (*Result, error) {
	result := &Result{
		Hourly:  true,
		Options: map[string]string{},
	}

	dcs, err := res.Datacenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading datacenters: %w", err)
	}
	dcOptions := make([]huh.Option[string], 0, len(dcs))
	for _, dc := range dcs {
		dcOptions = append(dcOptions, huh.NewOption(dc.Name, dc.Name))
	}

	pkgs, err := res.Packages(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	pkgOptions := make([]huh.Option[int], 0, len(pkgs))
	for _, pkg := range pkgs {
		pkgOptions = append(pkgOptions, huh.NewOption(fmt.Sprintf("%s (%d)", pkg.Name, pkg.ID), pkg.ID))
	}

	identity := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hostname").
				Description("Short hostname for the new server").
				Placeholder("myserver").
				Value(&result.Hostname).
				Validate(validateHostname),

			huh.NewInput().
				Title("Domain").
				Description("DNS domain the server belongs to").
				Placeholder("example.com").
				Value(&result.Domain).
				Validate(validateDomain),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Datacenter").
				Options(dcOptions...).
				Value(&result.Datacenter),

			huh.NewSelect[int]().
				Title("Package").
				Description("Bare-metal product family").
				Options(pkgOptions...).
				Value(&result.PackageID),

			huh.NewConfirm().
				Title("Hourly billing").
				Description("Yes: hourly pricing | No: monthly pricing").
				Value(&result.Hourly),
		),
	)
	if err := identity.RunWithContext(ctx); err != nil {
		return nil, err
	}

	if err := runOptionForm(ctx, res, result); err != nil {
		return nil, err
	}
	return result, nil
}

// runOptionForm asks one select question per required catalog option of the
// chosen (package, datacenter) pair.
func runOptionForm(ctx context.Context, res *catalog.Resolver, result *Result) error {
	s, err := schema.Synthesize(ctx, res, result.PackageID, result.Datacenter, config.StatePresent)
	if err != nil {
		return fmt.Errorf("loading options for package %d: %w", result.PackageID, err)
	}

	var fields []huh.Field
	values := map[string]*string{}
	for _, name := range s.DynamicFields() {
		field := s[name]
		if !field.Required {
			continue
		}
		choices := make([]huh.Option[string], 0, len(field.Choices))
		for _, c := range field.Choices {
			choices = append(choices, huh.NewOption(c, c))
		}
		value := new(string)
		values[name] = value
		fields = append(fields, huh.NewSelect[string]().
			Title(name).
			Options(choices...).
			Value(value))
	}
	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}
	for name, value := range values {
		result.Options[name] = *value
	}
	return nil
}

// ToDesiredState converts the wizard result into a desired-state record with
// state present.
func (r *Result) ToDesiredState() *config.DesiredState {
	return &config.DesiredState{
		Hostname:   r.Hostname,
		Domain:     r.Domain,
		Datacenter: r.Datacenter,
		PackageID:  r.PackageID,
		Hourly:     r.Hourly,
		State:      config.StatePresent,
		Options:    r.Options,
	}
}

func validateHostname(s string) error {
	if s == "" {
		return fmt.Errorf("hostname is required")
	}
	if len(s) > 63 {
		return fmt.Errorf("hostname must be 63 characters or less")
	}
	for _, c := range strings.ToLower(s) {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return fmt.Errorf("hostname can only contain letters, numbers, and hyphens")
		}
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return fmt.Errorf("hostname cannot start or end with a hyphen")
	}
	return nil
}

func validateDomain(s string) error {
	if s == "" {
		return fmt.Errorf("domain is required")
	}
	if len(strings.Split(s, ".")) < 2 {
		return fmt.Errorf("invalid domain format (expected example.com)")
	}
	return nil
}
