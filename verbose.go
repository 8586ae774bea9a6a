// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

import (
	"fmt"
	"io"
)

// diagnostics is the §4.11 reporting hook: when EncodeOptions.Verbose is
// non-nil, Encode writes one fixed-format key=value line summarizing the
// finished command stream (COPY/ADD counts and bytes). Seed hit rates,
// evictions and cycles broken are not reported here; Place takes no sink.
// It is purely observational — nothing
// it writes ever feeds back into the produced commands, and a nil Verbose
// makes every method here a no-op.
type diagnostics struct {
	w io.Writer
}

func newDiagnostics(w io.Writer) diagnostics {
	return diagnostics{w: w}
}

func (d diagnostics) event(event string, pairs ...any) {
	if d.w == nil {
		return
	}
	fmt.Fprintf(d.w, "event=%s", event)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(d.w, " %v=%v", pairs[i], pairs[i+1])
	}
	fmt.Fprintln(d.w)
}

// summarizeCommands reports the shape of a finished command stream: how
// many COPY vs ADD commands it contains and how many bytes each kind
// contributed to V.
func (d diagnostics) summarizeCommands(event string, commands []Command) {
	if d.w == nil {
		return
	}

	var copies, adds int
	var copyBytes, addBytes uint64
	for _, c := range commands {
		if c.Kind == KindCopy {
			copies++
			copyBytes += c.Length
		} else {
			adds++
			addBytes += uint64(len(c.Data))
		}
	}

	d.event(event,
		"copies", copies, "copy_bytes", copyBytes,
		"adds", adds, "add_bytes", addBytes,
	)
}
