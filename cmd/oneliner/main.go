// Package main is the entry point for the oneliner CLI.
//
// oneliner provisions a VPC, its networking and a single EC2 instance,
// then writes an SSH key and an Ansible inventory for the sample
// application deployment.
//
// For detailed usage information, run:
//
//	oneliner --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/oneliner/cmd/oneliner/commands"
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
