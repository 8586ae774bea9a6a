// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

import "math/bits"

// Karp-Rabin rolling fingerprint modulo the Mersenne prime 2^61 - 1. The
// rolling state mirrors the teacher's ring-buffer cursor (an insertPos that
// advances one byte at a time), but here the "window" is a modular integer
// rather than a byte buffer.

// mersenneExp61 is M = 2^61 - 1, a Mersenne prime.
const mersenneExp61 = (1 << 61) - 1

// fingerprintBase is the polynomial base B. Any fixed prime in [2, M) works;
// 257 is used here (> 255 so distinct byte values never collide trivially
// under a single multiply-add step).
const fingerprintBase uint64 = 257

// mulModMersenne61 computes (a*b) mod (2^61 - 1) without overflowing 64 bits,
// using 128-bit multiplication via math/bits and the Mersenne reduction
// trick: x mod M = (x & M) + (x >> 61), iterated until the result is ≤ M.
func mulModMersenne61(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return reduceMersenne61(hi, lo)
}

// addModMersenne61 computes (a+b) mod (2^61 - 1), where a and b are already
// reduced (≤ M).
func addModMersenne61(a, b uint64) uint64 {
	s := a + b
	if s >= mersenneExp61 {
		s -= mersenneExp61
	}
	return s
}

// subModMersenne61 computes (a-b) mod (2^61 - 1), where a and b are already
// reduced (≤ M).
func subModMersenne61(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return mersenneExp61 - (b - a)
}

// reduceMersenne61 folds a 128-bit product (hi:lo, i.e. x = hi*2^64 + lo)
// down to a value ≤ M = 2^61-1, using the identity 2^64 ≡ 8 (mod M) (since
// 2^64 = 8*(2^61-1) + 8) together with the usual Mersenne fold
// x mod M = (x & M) + (x >> 61), iterated until the result is ≤ M.
func reduceMersenne61(hi, lo uint64) uint64 {
	x := hi*8 + (lo & mersenneExp61) + (lo >> 61)
	for x > mersenneExp61 {
		x = (x & mersenneExp61) + (x >> 61)
	}
	if x == mersenneExp61 {
		x = 0
	}
	return x
}

// rollingFingerprint is a cursor over a p-byte window, advanced one byte at
// a time in O(1). It is owned exclusively by a single Encode call; per the
// shared-resource policy there is no global or thread-local fingerprint
// state, so B^p mod M is recomputed (O(p), cheap for the small seed lengths
// this package uses) each time a cursor is constructed rather than cached
// in a package-level map.
type rollingFingerprint struct {
	value   uint64 // current fingerprint, always < M
	seedLen int
	bpMod   uint64 // B^p mod M, precomputed once per (B, p)
}

// newRollingFingerprint computes the initial fingerprint of data[offset:offset+p]
// in O(p) and precomputes B^p mod M for later rolling.
func newRollingFingerprint(data []byte, offset, p int) *rollingFingerprint {
	rf := &rollingFingerprint{seedLen: p, bpMod: bPowMod(p)}
	var v uint64
	for i := 0; i < p; i++ {
		v = mulModMersenne61(v, fingerprintBase)
		v = addModMersenne61(v, uint64(data[offset+i]))
	}
	rf.value = v
	return rf
}

// roll advances the fingerprint by one byte: the window drops outByte (the
// byte leaving the window on the left) and gains inByte (the byte entering
// on the right).
func (rf *rollingFingerprint) roll(outByte, inByte byte) {
	// new = old·B − out·B^p + in, which equals (old − out·B^(p−1))·B + in.
	v := mulModMersenne61(rf.value, fingerprintBase)
	term := mulModMersenne61(uint64(outByte), rf.bpMod)
	v = subModMersenne61(v, term)
	v = addModMersenne61(v, uint64(inByte))
	rf.value = v
}

// Value returns the current fingerprint.
func (rf *rollingFingerprint) Value() uint64 {
	return rf.value
}

// bPowMod returns B^p mod M. Encoders construct a rolling fingerprint at the
// start of V and again after each emitted match, so this runs once per
// cursor rather than once per byte.
func bPowMod(p int) uint64 {
	v := uint64(1)
	for i := 0; i < p; i++ {
		v = mulModMersenne61(v, fingerprintBase)
	}
	return v
}

// directFingerprint computes the fingerprint of data[offset:offset+p] from
// scratch in O(p). Used by tests to check rolling correctness and by the
// correcting encoder to recompute a checkpoint.
func directFingerprint(data []byte, offset, p int) uint64 {
	var v uint64
	for i := 0; i < p; i++ {
		v = mulModMersenne61(v, fingerprintBase)
		v = addModMersenne61(v, uint64(data[offset+i]))
	}
	return v
}
