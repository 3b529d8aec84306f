// Package main provides the devsite CLI.
package main

import (
	"os"

	"github.com/nethippo/developer-website/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
