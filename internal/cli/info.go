// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package cli

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	delta "github.com/darrelllong/deltac"
	"github.com/darrelllong/deltac/internal/mmapfile"
)

// InfoCmd implements `deltac info <delta>`: the §4.14 human-readable
// statistics report over a container's header and command stream.
func InfoCmd() *Command {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "info <delta>",
		Short: "print a delta container's header and command statistics",
		Exec: func(out, errOut *os.File, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("info: expected <delta>, got %d args", len(args))
			}

			d, err := mmapfile.Open(args[0])
			if err != nil {
				return err
			}
			defer d.Close()

			placed, inplace, vLen, err := delta.Deserialize(d.Bytes())
			if err != nil {
				return fmt.Errorf("info: %w", err)
			}

			mode := "sequential"
			if inplace {
				mode = "in-place"
			}

			var copies, adds int
			var copyBytes, addBytes uint64
			for _, p := range placed {
				if p.Kind == delta.KindCopy {
					copies++
					copyBytes += p.Length
				} else {
					adds++
					addBytes += uint64(len(p.Data))
				}
			}

			fmt.Fprintf(out, "mode:          %s\n", mode)
			fmt.Fprintf(out, "version len:   %d\n", vLen)
			fmt.Fprintf(out, "commands:      %d (%d copy, %d add)\n", len(placed), copies, adds)
			fmt.Fprintf(out, "copy bytes:    %d\n", copyBytes)
			fmt.Fprintf(out, "literal bytes: %d\n", addBytes)
			fmt.Fprintf(out, "container:     %d bytes\n", len(d.Bytes()))
			if vLen > 0 {
				fmt.Fprintf(out, "ratio:         %.3f\n", float64(len(d.Bytes()))/float64(vLen))
			}
			return nil
		},
	}
}

// reportSummary prints the §4.14 statistics lines emitted at the end of
// `encode`. `info` prints its own per-command breakdown instead.
func reportSummary(out *os.File, outPath string, refLen, verLen, containerLen, cyclesBroken int) {
	fmt.Fprintf(out, "wrote %s (%d bytes)\n", outPath, containerLen)
	fmt.Fprintf(out, "ref:   %d bytes\n", refLen)
	fmt.Fprintf(out, "ver:   %d bytes\n", verLen)
	if verLen > 0 {
		fmt.Fprintf(out, "ratio: %.3f\n", float64(containerLen)/float64(verLen))
	}
	if cyclesBroken > 0 {
		fmt.Fprintf(out, "cycles broken: %d\n", cyclesBroken)
	}
}
