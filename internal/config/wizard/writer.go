package wizard

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

const fileHeader = `# slmetal server configuration.
# Run 'slmetal options' to list the legal option values for this
# package and datacenter, and 'slmetal apply' to reconcile.
`

// WriteYAML renders the wizard result as a commented configuration file.
// Package options are plain top-level keys, same as the static fields.
func WriteYAML(r *Result, path string) error {
	var b strings.Builder
	b.WriteString(fileHeader)
	fmt.Fprintf(&b, "hostname: %s\n", r.Hostname)
	fmt.Fprintf(&b, "domain: %s\n", r.Domain)
	fmt.Fprintf(&b, "datacenter: %s\n", r.Datacenter)
	fmt.Fprintf(&b, "pkgid: %d\n", r.PackageID)
	fmt.Fprintf(&b, "hourly: %t\n", r.Hourly)
	fmt.Fprintf(&b, "state: present\n")

	if len(r.Options) > 0 {
		b.WriteString("\n# Package options\n")
		keys := make([]string, 0, len(r.Options))
		for key := range r.Options {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&b, "%s: %s\n", key, r.Options[key])
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
