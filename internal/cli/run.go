// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package cli

import (
	"fmt"
	"os"
)

// Run is deltac's entry point. It dispatches args[0] to a subcommand and
// returns a process exit code.
func Run(out, errOut *os.File, args []string) int {
	commands := allCommands()

	byName := make(map[string]*Command, len(commands))
	for _, c := range commands {
		byName[c.Name()] = c
	}

	if len(args) == 0 {
		printUsage(errOut, commands)
		return 1
	}

	if args[0] == "-h" || args[0] == "--help" {
		printUsage(out, commands)
		return 0
	}

	cmd, ok := byName[args[0]]
	if !ok {
		fmt.Fprintln(errOut, "error: unknown command:", args[0])
		printUsage(errOut, commands)
		return 1
	}

	return cmd.Run(out, errOut, args[1:])
}

func allCommands() []*Command {
	return []*Command{
		EncodeCmd(),
		DecodeCmd(),
		InfoCmd(),
	}
}

func printUsage(w *os.File, commands []*Command) {
	fmt.Fprintln(w, "deltac - reference/version differential compression")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: deltac <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-38s %s\n", c.Usage, c.Short)
	}
}
