// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

import "io"

// Algorithm selects which delta-discovery algorithm Encode runs.
type Algorithm int

const (
	// AlgoGreedy is the offline optimal encoder (full index over R, lazy matching).
	AlgoGreedy Algorithm = iota
	// AlgoOnePass is the streaming encoder with a fixed-size index.
	AlgoOnePass
	// AlgoCorrecting is the 1.5-pass encoder with a tentative-match buffer.
	AlgoCorrecting
)

// String renders the algorithm name used in CLI flags and diagnostics.
func (a Algorithm) String() string {
	switch a {
	case AlgoGreedy:
		return "greedy"
	case AlgoOnePass:
		return "onepass"
	case AlgoCorrecting:
		return "correcting"
	default:
		return "unknown"
	}
}

// PlacementPolicy selects how Place breaks read-before-write cycles when
// converting a sequential command stream to an in-place schedule.
type PlacementPolicy int

const (
	// PolicyLocalMin demotes the cheapest copy in each strongly connected
	// component (by output length) until the conflict graph is acyclic.
	PolicyLocalMin PlacementPolicy = iota
	// PolicyConstant demotes every copy in any cycle, regardless of cost.
	PolicyConstant
)

// defaultSeedLen is the default seed length p used to fingerprint R.
const defaultSeedLen = 16

// defaultTableSize is the default hash-table capacity hint; Encode rounds it
// up to a prime via nextPrime before allocating a backend.
const defaultTableSize = 1 << 17

// defaultBufCap is the default tentative-match ring capacity for the
// correcting encoder.
const defaultBufCap = 256

// defaultLazyLookahead (Δ) bounds how far ahead the greedy encoder looks for
// a strictly longer match before committing to the current one. Fixed per
// spec Open Question (a); results are only deterministic for a fixed Δ.
const defaultLazyLookahead = 32

// EncodeOptions configures Encode. A nil pointer is equivalent to
// DefaultEncodeOptions().
type EncodeOptions struct {
	// SeedLen is the seed length p used to fingerprint R (default 16).
	SeedLen int
	// TableSize is a capacity hint for hash-table seed index backends
	// (default a prime near 2^17); encoders with their own sizing rule
	// (one-pass, correcting) treat this as a floor.
	TableSize int
	// MinCopy is the minimum accepted match length (0 ⇒ use SeedLen).
	MinCopy int
	// UseSplay selects the splay-tree seed index backend instead of the
	// open-addressed hash table for the greedy encoder. The one-pass and
	// correcting encoders always use the hash table.
	UseSplay bool
	// BufCap is the tentative-match ring capacity for the correcting
	// encoder (default 256). Unused by greedy and one-pass.
	BufCap int
	// Verbose, if non-nil, receives a diagnostics report at the end of
	// encoding. Purely observational; never affects the produced commands.
	Verbose io.Writer
}

// DefaultEncodeOptions returns options with the package defaults.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		SeedLen:   defaultSeedLen,
		TableSize: defaultTableSize,
		BufCap:    defaultBufCap,
	}
}

// normalized returns a copy of opts (or the defaults, if opts is nil) with
// zero-valued fields filled in and MinCopy resolved.
func (opts *EncodeOptions) normalized() *EncodeOptions {
	var o EncodeOptions
	if opts != nil {
		o = *opts
	} else {
		o = *DefaultEncodeOptions()
	}

	if o.SeedLen == 0 {
		o.SeedLen = defaultSeedLen
	}
	if o.TableSize == 0 {
		o.TableSize = defaultTableSize
	}
	if o.MinCopy == 0 {
		o.MinCopy = o.SeedLen
	}
	if o.BufCap == 0 {
		o.BufCap = defaultBufCap
	}

	return &o
}
