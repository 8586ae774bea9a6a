// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// seedIndex is the capability set both seed index backends (§4.2) satisfy:
// record a (fingerprint, reference offset) seed, and look up every offset
// recorded under a fingerprint. lookup never filters collisions itself —
// every candidate must be reverified against R by the match extender.
type seedIndex interface {
	insert(fp, offset uint64)
	lookup(fp uint64, dst []uint64) []uint64
}

// buildSeedIndex builds a seed index over r by striding at multiples of p
// (non-overlapping seeds), inserting fingerprint(r[i:i+p]) -> i for each
// stride position. tableSize is only consulted for the hash backend.
func buildSeedIndex(r []byte, p int, tableSize uint64, useSplay bool) seedIndex {
	if useSplay {
		idx := newSplaySeedIndex()
		strideSeedIndex(idx, r, p)
		return idx
	}

	idx := newHashSeedIndex(tableSize)
	strideSeedIndex(idx, r, p)
	return idx
}

// strideSeedIndex inserts one seed per p-byte stride of r into idx.
func strideSeedIndex(idx seedIndex, r []byte, p int) {
	limit := len(r) - p + 1
	if limit <= 0 {
		return
	}
	for i := 0; i <= limit-1; i += p {
		idx.insert(directFingerprint(r, i, p), uint64(i))
	}
}

// buildFullSeedIndex builds a seed index over every byte offset of r (used
// by the greedy encoder, which needs the strongest possible match finder).
func buildFullSeedIndex(r []byte, p int, tableSize uint64, useSplay bool) seedIndex {
	var idx seedIndex
	if useSplay {
		idx = newSplaySeedIndex()
	} else {
		idx = newHashSeedIndex(tableSize)
	}

	limit := len(r) - p + 1
	if limit <= 0 {
		return idx
	}

	rf := newRollingFingerprint(r, 0, p)
	idx.insert(rf.Value(), 0)
	for i := 1; i < limit; i++ {
		rf.roll(r[i-1], r[i+p-1])
		idx.insert(rf.Value(), uint64(i))
	}
	return idx
}
