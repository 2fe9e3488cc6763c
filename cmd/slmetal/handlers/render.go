package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"slmetal/internal/config"
	"slmetal/internal/platform/softlayer"
	"slmetal/internal/reconcile"
	"slmetal/internal/schema"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	changedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)
)

// renderResult produces the verdict summary for one reconciliation run.
func renderResult(ds *config.DesiredState, result *reconcile.Result, dryRun bool) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  slmetal apply: %s.%s", ds.Hostname, ds.Domain)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	verdict := "unchanged"
	if result.Changed {
		verdict = "changed"
	}
	b.WriteString(fmt.Sprintf("    State:      %s\n", ds.State))
	b.WriteString("    Verdict:    ")
	if result.Changed {
		b.WriteString(changedStyle.Render(verdict))
	} else {
		b.WriteString(dimStyle.Render(verdict))
	}
	b.WriteString("\n")

	if result.Response != nil {
		renderOrderSection(&b, result.Response, dryRun)
	}

	return b.String()
}

func renderOrderSection(b *strings.Builder, resp *softlayer.OrderResponse, dryRun bool) {
	b.WriteString("\n")
	if dryRun {
		b.WriteString(sectionStyle.Render("  Verified Order (not placed)"))
	} else {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("  Placed Order %d", resp.OrderID)))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")

	for _, p := range resp.Prices {
		b.WriteString(fmt.Sprintf("    %-45s %8.2f /mo  %6.3f /hr\n", p.KeyName, p.RecurringFee, p.HourlyRecurringFee))
	}
}

// renderSchema produces the option listing for a (package, datacenter) pair.
func renderSchema(packageID int, datacenter string, s schema.Schema) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  slmetal options: package %d in %s", packageID, datacenter)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")

	for _, name := range s.DynamicFields() {
		field := s[name]
		b.WriteString("\n")
		header := name
		if field.Required {
			header += " (required)"
		}
		b.WriteString(sectionStyle.Render("  " + header))
		b.WriteString("\n")
		for _, choice := range field.Choices {
			b.WriteString(fmt.Sprintf("    %s\n", choice))
		}
	}

	return b.String()
}

// renderPackages produces the bare-metal package listing.
func renderPackages(pkgs []softlayer.Package) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  slmetal packages"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	for _, pkg := range pkgs {
		b.WriteString(fmt.Sprintf("    %6d  %-40s %s\n", pkg.ID, pkg.KeyName, pkg.Name))
	}

	return b.String()
}
