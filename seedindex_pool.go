// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

import "sync"

// hashSeedIndexPool pools hashSeedIndex backends so repeated one-pass or
// correcting encodes against similarly sized references don't reallocate
// the slot array every call.
var hashSeedIndexPool = sync.Pool{
	New: func() any {
		return &hashSeedIndex{}
	},
}

// acquireHashSeedIndex gets a backend from the pool sized to at least want
// slots (rounded up to a prime).
func acquireHashSeedIndex(want uint64) *hashSeedIndex {
	h := hashSeedIndexPool.Get().(*hashSeedIndex)
	h.reset(want)
	return h
}

// releaseHashSeedIndex returns a backend to the pool.
func releaseHashSeedIndex(h *hashSeedIndex) {
	if h == nil {
		return
	}
	hashSeedIndexPool.Put(h)
}
