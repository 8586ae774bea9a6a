// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

import "sort"

// interval is a half-open [Start, End) range tagged with the id of the
// placed command it belongs to.
type interval struct {
	Start, End uint64
	ID         int
}

// intervalIndex answers "which intervals overlap [qs, qe)?" in O(log n + k)
// after an O(n log n) build, per §4.8's requirement that the in-place
// conflict graph be built in O(n log n) rather than O(n²). It is a segment
// tree over intervals sorted by Start, each node storing the max End within
// its range so a query can prune whole subtrees whose intervals all end
// before qs.
type intervalIndex struct {
	items  []interval // sorted by Start
	maxEnd []uint64   // complete binary tree, 1-indexed, size 4*len(items)
}

// newIntervalIndex builds an index over items (which is sorted in place).
func newIntervalIndex(items []interval) *intervalIndex {
	sort.Slice(items, func(i, j int) bool { return items[i].Start < items[j].Start })

	ix := &intervalIndex{items: items}
	if len(items) > 0 {
		ix.maxEnd = make([]uint64, 4*len(items))
		ix.build(1, 0, len(items)-1)
	}
	return ix
}

func (ix *intervalIndex) build(node, lo, hi int) {
	if lo == hi {
		ix.maxEnd[node] = ix.items[lo].End
		return
	}
	mid := (lo + hi) / 2
	ix.build(2*node, lo, mid)
	ix.build(2*node+1, mid+1, hi)
	ix.maxEnd[node] = maxU64(ix.maxEnd[2*node], ix.maxEnd[2*node+1])
}

// queryOverlapping invokes visit(id) once for every interval in the index
// whose [Start, End) overlaps [qs, qe), excluding any interval whose ID
// equals exclude (used to skip self-overlap).
func (ix *intervalIndex) queryOverlapping(qs, qe uint64, exclude int, visit func(id int)) {
	if len(ix.items) == 0 {
		return
	}

	// All intervals with Start < qe lie in the prefix [0, p-1] of the
	// Start-sorted array.
	p := sort.Search(len(ix.items), func(i int) bool { return ix.items[i].Start >= qe })
	if p == 0 {
		return
	}

	ix.search(1, 0, len(ix.items)-1, p-1, qs, exclude, visit)
}

// search walks the segment tree node covering [lo, hi], restricted to the
// prefix [0, limit], reporting leaves whose End > qs (Start < qe is already
// guaranteed by the caller's prefix bound).
func (ix *intervalIndex) search(node, lo, hi, limit int, qs uint64, exclude int, visit func(id int)) {
	if lo > limit || ix.maxEnd[node] <= qs {
		return
	}
	if lo == hi {
		it := ix.items[lo]
		if it.End > qs && it.ID != exclude {
			visit(it.ID)
		}
		return
	}

	mid := (lo + hi) / 2
	ix.search(2*node, lo, mid, limit, qs, exclude, visit)
	ix.search(2*node+1, mid+1, hi, limit, qs, exclude, visit)
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
