// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

// Command deltac is the command-line front end for the delta package: it
// mmaps reference/version files, runs the chosen encoder, and writes the
// resulting container atomically.
package main

import (
	"os"

	"github.com/darrelllong/deltac/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdout, os.Stderr, os.Args[1:]))
}
