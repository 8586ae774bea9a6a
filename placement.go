// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

import "sort"

// place performs the linear pass of §4.7: accumulate a running destination
// cursor over the sequential command stream, annotating each command with
// its dst. It never fails — every sequential stream produced by an encoder
// already covers V by construction.
func place(commands []Command) []PlacedCommand {
	placed := make([]PlacedCommand, len(commands))
	var dst uint64
	for i, c := range commands {
		placed[i] = PlacedCommand{
			Kind:      c.Kind,
			Dst:       dst,
			SrcOffset: c.SrcOffset,
			Length:    c.Length,
			Data:      c.Data,
		}
		dst += c.outputLen()
	}
	return placed
}

// Unplace sorts placed commands by destination offset and strips the dst
// field, recovering the sequential stream. It is the inverse of place, and
// of the identity placement produced when in-place conversion is skipped.
func Unplace(placed []PlacedCommand) []Command {
	sorted := make([]PlacedCommand, len(placed))
	copy(sorted, placed)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Dst < sorted[j].Dst })

	cmds := make([]Command, len(sorted))
	for i, p := range sorted {
		cmds[i] = Command{Kind: p.Kind, SrcOffset: p.SrcOffset, Length: p.Length, Data: p.Data}
	}
	return cmds
}

// Place converts a sequential command stream into a placed (destination
// addressed) stream. If inplace is false, the result is simply the
// sequential placement (execution order == V order) and cyclesBroken is
// always 0. If inplace is true, the placed stream is further reordered by
// convertInPlace under the given policy to satisfy the read-before-write
// schedule of §4.8; cyclesBroken counts the number of copies demoted to
// literal ADDs to break a dependency cycle.
//
// r is required only for inplace conversion: demoting a COPY to break a
// cycle must materialize the literal bytes R would have supplied, which the
// sequential Command stream does not itself carry. r is ignored when
// inplace is false.
func Place(r []byte, commands []Command, inplace bool, policy PlacementPolicy) (placed []PlacedCommand, cyclesBroken int, err error) {
	seq := place(commands)
	if !inplace {
		return seq, 0, nil
	}

	return convertInPlace(r, seq, policy)
}
