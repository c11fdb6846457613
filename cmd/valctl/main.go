// Package main is the entry point for the valctl CLI.
//
// valctl manages a single-host cluster of distributed-ledger validator
// nodes. Nodes run either as containers (docker backend) or as host daemon
// processes (daemon backend); the cluster record is persisted between
// invocations, so commands are idempotent and safe to re-run after a
// partial failure.
//
// Commands: cluster start, cluster stop, cluster status, version.
//
// For detailed usage information, run:
//
//	valctl --help
package main

import (
	"fmt"
	"os"

	"github.com/valmesh/valctl/cmd/valctl/commands"
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
