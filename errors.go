// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

import "errors"

// Sentinel errors for the core encode/place/codec/apply surface. Each is
// distinguishable with errors.Is; callers needing the offending value get it
// wrapped with fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidArgument is returned by Encode for a negative seed length or
	// minimum copy length, or an unknown algorithm. A zero SeedLen,
	// TableSize or MinCopy is not an error: Encode replaces it with the
	// default.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFormatError is returned by Deserialize for a structurally broken
	// container: bad magic, unsupported version, truncated stream, or a
	// varint that overflows 64 bits.
	ErrFormatError = errors.New("delta format error")

	// ErrChecksumMismatch is returned by Deserialize when the trailing
	// CRC-64/XZ does not equal the checksum computed over the payload.
	ErrChecksumMismatch = errors.New("delta checksum mismatch")

	// ErrInvalidDelta is returned by Deserialize or Apply* when a COPY
	// references bytes outside R, the commands do not tile V exactly, or
	// (in-place mode) two destination ranges overlap.
	ErrInvalidDelta = errors.New("invalid delta")

	// ErrCycleUnresolvable is returned by Place when in-place conversion
	// cannot break a dependency cycle under the requested policy. Reaching
	// this indicates an internal invariant violation: both localmin and
	// constant demote at least one copy of every remaining cycle per pass.
	ErrCycleUnresolvable = errors.New("unresolvable cycle in in-place schedule")
)
