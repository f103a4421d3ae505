// Package main is the entry point for the Arcon CLI.
package main

import (
	"os"

	"github.com/faithfularchive/arcon/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
