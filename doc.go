// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

/*
Package delta implements differential compression between a reference byte
sequence R and a version byte sequence V, producing a compact delta D from
which V can be reconstructed given R and D.

It realizes the family of algorithms described by Ajtai, Burns, Fagin, Long
and Stockmeyer (JACM 2002): an offline greedy optimal encoder, a streaming
one-pass encoder, and a 1.5-pass "correcting" encoder, all built on a
Karp-Rabin rolling-fingerprint seed index over R.

# Encode

Pick an algorithm and encode V against R:

	cmds, err := delta.Encode(delta.AlgoOnePass, r, v, delta.DefaultEncodeOptions())

# Place and serialize

A sequential command stream is destination-addressed and optionally
converted to an in-place schedule before being framed into the binary
container format:

	placed, broken, err := delta.Place(r, cmds, true, delta.PolicyLocalMin)
	blob, err := delta.Serialize(placed, true, len(v))

# Decode and apply

	placed, inplace, vLen, err := delta.Deserialize(blob)
	out, err := delta.ApplyInplace(r, placed, vLen)
*/
package delta
