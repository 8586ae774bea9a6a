// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// hashSeedIndex is the open-addressed fixed-capacity seed index backend
// (§4.2): a prime-sized slot array keyed by fingerprint mod capacity, with a
// short bounded probe chain on collision. When the chain is full, the new
// seed displaces the slot at the probe anchor (cyclic overwrite) and the
// oldest seed at that slot is lost. This is the reference behavior from the
// paper; it bounds space to the table capacity and lookup time to O(1)
// amortized. Structurally this replaces the teacher's hash-chain sliding
// window dictionary (hashHead2/hashHead3 + chainNext) with a flatter,
// single-slot-per-probe design, since seed matching here keys off a single
// p-byte fingerprint rather than 2-byte/3-byte LZO hash heads.
type hashSeedIndex struct {
	capacity uint64
	slots    []seedSlot
}

type seedSlot struct {
	valid  bool
	fp     uint64
	offset uint64
}

// seedProbeLen bounds how many slots insert/lookup will probe before
// overwriting the anchor slot (insert) or stopping (lookup).
const seedProbeLen = 8

// newHashSeedIndex allocates a backend with capacity the least prime ≥ want.
func newHashSeedIndex(want uint64) *hashSeedIndex {
	sz := nextPrime(want)
	return &hashSeedIndex{
		capacity: sz,
		slots:    make([]seedSlot, sz),
	}
}

// reset clears the table in place, reusing the backing array if its
// capacity already matches want (or growing it otherwise). Used by the
// pool in seedindex_pool.go to amortize allocation across Encode calls.
func (h *hashSeedIndex) reset(want uint64) {
	sz := nextPrime(want)
	if uint64(len(h.slots)) != sz {
		h.slots = make([]seedSlot, sz)
	} else {
		for i := range h.slots {
			h.slots[i] = seedSlot{}
		}
	}
	h.capacity = sz
}

// insert records a (fingerprint, reference offset) seed.
func (h *hashSeedIndex) insert(fp, offset uint64) {
	base := fp % h.capacity
	for i := uint64(0); i < seedProbeLen; i++ {
		idx := (base + i) % h.capacity
		if !h.slots[idx].valid {
			h.slots[idx] = seedSlot{valid: true, fp: fp, offset: offset}
			return
		}
	}
	// Probe chain full: cyclic overwrite at the anchor slot.
	h.slots[base] = seedSlot{valid: true, fp: fp, offset: offset}
}

// lookup appends every offset recorded under fingerprint fp to dst and
// returns the extended slice. Callers must reverify each candidate against
// R before trusting it as a match: a fingerprint match does not imply a
// byte-for-byte match.
func (h *hashSeedIndex) lookup(fp uint64, dst []uint64) []uint64 {
	base := fp % h.capacity
	for i := uint64(0); i < seedProbeLen; i++ {
		idx := (base + i) % h.capacity
		s := h.slots[idx]
		if s.valid && s.fp == fp {
			dst = append(dst, s.offset)
		}
	}
	return dst
}
