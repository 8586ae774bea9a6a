// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	delta "github.com/darrelllong/deltac"
	"github.com/darrelllong/deltac/internal/mmapfile"
)

// EncodeCmd implements `deltac encode <algo> <ref> <ver> <out>`.
func EncodeCmd() *Command {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	seedLen := fs.Int("seed-len", 0, "seed length p (default 16)")
	tableSize := fs.Int("table-size", 0, "seed index capacity hint")
	minCopy := fs.Int("min-copy", 0, "minimum accepted copy length (default seed-len)")
	bufCap := fs.Int("buf-cap", 0, "tentative-match buffer capacity (correcting encoder)")
	useSplay := fs.Bool("splay", false, "use the splay-tree seed index backend (greedy only)")
	inplace := fs.Bool("inplace", false, "convert the output to an in-place schedule")
	policy := fs.String("policy", "localmin", "in-place demotion policy: localmin|constant")
	verbose := fs.Bool("verbose", false, "write diagnostics to stderr")

	return &Command{
		Flags: fs,
		Usage: "encode <greedy|onepass|correcting> <ref> <ver> <out>",
		Short: "compute a delta of <ver> against <ref>",
		Exec: func(out, errOut *os.File, args []string) error {
			if len(args) != 4 {
				return fmt.Errorf("encode: expected <algo> <ref> <ver> <out>, got %d args", len(args))
			}

			algo, err := parseAlgorithm(args[0])
			if err != nil {
				return err
			}

			ref, err := mmapfile.Open(args[1])
			if err != nil {
				return err
			}
			defer ref.Close()

			ver, err := mmapfile.Open(args[2])
			if err != nil {
				return err
			}
			defer ver.Close()

			opts := delta.DefaultEncodeOptions()
			opts.SeedLen = *seedLen
			opts.TableSize = *tableSize
			opts.MinCopy = *minCopy
			opts.BufCap = *bufCap
			opts.UseSplay = *useSplay
			if *verbose {
				opts.Verbose = errOut
			}

			commands, err := delta.Encode(algo, ref.Bytes(), ver.Bytes(), opts)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			pol, err := parsePolicy(*policy)
			if err != nil {
				return err
			}

			placed, cyclesBroken, err := delta.Place(ref.Bytes(), commands, *inplace, pol)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if *verbose && *inplace {
				fmt.Fprintf(errOut, "event=place.inplace cycles_broken=%d\n", cyclesBroken)
			}

			data, err := delta.Serialize(placed, *inplace, len(ver.Bytes()))
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if err := atomic.WriteFile(args[3], bytes.NewReader(data)); err != nil {
				return fmt.Errorf("encode: writing %s: %w", args[3], err)
			}

			reportSummary(out, args[3], len(ref.Bytes()), len(ver.Bytes()), len(data), cyclesBroken)
			return nil
		},
	}
}

func parseAlgorithm(s string) (delta.Algorithm, error) {
	switch s {
	case "greedy":
		return delta.AlgoGreedy, nil
	case "onepass":
		return delta.AlgoOnePass, nil
	case "correcting":
		return delta.AlgoCorrecting, nil
	default:
		return 0, fmt.Errorf("encode: unknown algorithm %q (want greedy, onepass, or correcting)", s)
	}
}

func parsePolicy(s string) (delta.PlacementPolicy, error) {
	switch s {
	case "localmin":
		return delta.PolicyLocalMin, nil
	case "constant":
		return delta.PolicyConstant, nil
	default:
		return 0, fmt.Errorf("encode: unknown policy %q (want localmin or constant)", s)
	}
}
