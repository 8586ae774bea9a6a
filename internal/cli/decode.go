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

// DecodeCmd implements `deltac decode <ref> <delta> <out>`.
func DecodeCmd() *Command {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "decode <ref> <delta> <out>",
		Short: "reconstruct <out> from <ref> and a delta file",
		Exec: func(out, errOut *os.File, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("decode: expected <ref> <delta> <out>, got %d args", len(args))
			}

			ref, err := mmapfile.Open(args[0])
			if err != nil {
				return err
			}
			defer ref.Close()

			d, err := mmapfile.Open(args[1])
			if err != nil {
				return err
			}
			defer d.Close()

			placed, inplace, vLen, err := delta.Deserialize(d.Bytes())
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			var result []byte
			if inplace {
				result, err = delta.ApplyInplace(ref.Bytes(), placed, vLen)
			} else {
				result, err = delta.ApplySequential(ref.Bytes(), delta.Unplace(placed))
			}
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			if err := atomic.WriteFile(args[2], bytes.NewReader(result)); err != nil {
				return fmt.Errorf("decode: writing %s: %w", args[2], err)
			}

			fmt.Fprintf(out, "wrote %s (%d bytes)\n", args[2], len(result))
			return nil
		},
	}
}
