// Package main is the docnav command entry point.
package main

import (
	"os"

	"github.com/docnav-labs/docnav/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
