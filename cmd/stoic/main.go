// SPDX-License-Identifier: MIT

// Command stoic balances chemical equations from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/stoic/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
