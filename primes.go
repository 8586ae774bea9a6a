// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

import "math/bits"

// millerRabinWitnesses is a deterministic witness set sufficient to decide
// primality correctly for all 64-bit inputs.
var millerRabinWitnesses = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// mulModGeneric computes (a*b) mod n for arbitrary n, using 128-bit
// multiplication and division via math/bits so it never overflows.
func mulModGeneric(a, b, n uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % n
	}
	_, rem := bits.Div64(hi%n, lo, n)
	return rem
}

// powModGeneric computes base^exp mod n by square-and-multiply.
func powModGeneric(base, exp, n uint64) uint64 {
	result := uint64(1) % n
	base %= n
	for exp > 0 {
		if exp&1 == 1 {
			result = mulModGeneric(result, base, n)
		}
		base = mulModGeneric(base, base, n)
		exp >>= 1
	}
	return result
}

// isPrime reports whether n is prime, deciding n < 4 and even n directly and
// using a deterministic Miller-Rabin test (fixed witness set, correct for
// all 64-bit n) otherwise.
func isPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0:
		return false
	}

	// Write n-1 = d * 2^r with d odd.
	d := n - 1
	r := 0
	for d%2 == 0 {
		d /= 2
		r++
	}

	for _, a := range millerRabinWitnesses {
		if a >= n {
			continue
		}

		x := powModGeneric(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}

		composite := true
		for i := 0; i < r-1; i++ {
			x = mulModGeneric(x, x, n)
			if x == n-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}

	return true
}

// nextPrime returns the least prime ≥ n. Used to size hash-table seed index
// backends to a prime capacity.
func nextPrime(n uint64) uint64 {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}
