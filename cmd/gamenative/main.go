package main

import (
	"os"

	"github.com/gamenative/gamenative-tui/internal/cli"
)

// Set by ldflags at release time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.NewRootCommand(version, commit, date).Execute(); err != nil {
		os.Exit(1)
	}
}
