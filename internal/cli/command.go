// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

// Package cli implements the deltac command-line front end: subcommand
// dispatch, flag parsing, and atomic output writes layered over the delta
// package's core encode/place/codec/apply surface. Grounded on
// calvinalkan-agent-task's internal/cli package — a Command table keyed by
// name, spf13/pflag flag sets per subcommand, Run returning a process exit
// code for main to propagate.
package cli

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one deltac subcommand.
type Command struct {
	// Flags holds the subcommand's own flags. Command identity comes from
	// Usage, not the FlagSet's name.
	Flags *flag.FlagSet

	// Usage is the freeform usage string shown after "deltac" in help
	// (e.g. "encode <algo> <ref> <ver> <out>").
	Usage string

	// Short is a one-line description shown in the top-level command list.
	Short string

	// Exec runs the subcommand against its positional arguments (flags
	// already stripped and parsed).
	Exec func(out, errOut *os.File, args []string) error
}

// Name returns the command name (the first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// Run parses args against the command's flags and executes it, returning a
// process exit code.
func (c *Command) Run(out, errOut *os.File, args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // discard pflag's own usage text

	if err := c.Flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintln(errOut, "usage: deltac", c.Usage)
			return 0
		}
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	if err := c.Exec(out, errOut, c.Flags.Args()); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	return 0
}
