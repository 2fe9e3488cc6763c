// Package main is the entry point for the slmetal CLI.
//
// slmetal is a command-line tool for declarative provisioning of SoftLayer
// bare-metal servers. A single YAML document describes the desired server;
// slmetal reconciles it against the live account catalog and order system.
//
// Commands: init, apply, options, packages, version.
//
// For detailed usage information, run:
//
//	slmetal --help
package main

import (
	"fmt"
	"os"

	"slmetal/cmd/slmetal/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
