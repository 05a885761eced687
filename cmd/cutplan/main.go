// Package main provides the entry point for the cutplan CLI tool.
package main

import (
	"github.com/panelworks/cutplan/cmd/cutplan/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
