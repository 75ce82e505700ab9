// Package main is the entry point for the preflight CLI.
package main

import (
	"os"

	"github.com/preflight-run/preflight/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
