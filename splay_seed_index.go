// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// splaySeedIndex is the splay-tree seed index backend (§4.2), keyed by
// fingerprint with each node holding every offset recorded under that
// fingerprint. Splaying brings recently queried fingerprints to the root,
// giving O(log n) amortized lookups with strong locality when the access
// distribution is skewed — unlike hashSeedIndex, nothing is ever evicted.
// No library in the example pack implements a splay tree, so this is a
// hand-rolled top-down splay (Sleator-Tarjan), the same way the teacher
// hand-rolls its sliding-window dictionary rather than reaching for one.
type splaySeedIndex struct {
	root *splayNode
}

type splayNode struct {
	fp      uint64
	offsets []uint64
	left    *splayNode
	right   *splayNode
}

func newSplaySeedIndex() *splaySeedIndex {
	return &splaySeedIndex{}
}

// splay performs a top-down splay of fp to the root, using the standard
// header-and-two-tail technique. After splay, t.root is the node with key
// fp if present, or the node that would be its parent otherwise.
func (t *splaySeedIndex) splay(fp uint64) {
	if t.root == nil {
		return
	}

	var header splayNode
	left, right := &header, &header
	node := t.root

	for {
		switch {
		case fp < node.fp:
			if node.left == nil {
				goto done
			}
			if fp < node.left.fp {
				// rotate right
				y := node.left
				node.left = y.right
				y.right = node
				node = y
				if node.left == nil {
					goto done
				}
			}
			right.left = node
			right = node
			node = node.left

		case fp > node.fp:
			if node.right == nil {
				goto done
			}
			if fp > node.right.fp {
				// rotate left
				y := node.right
				node.right = y.left
				y.left = node
				node = y
				if node.right == nil {
					goto done
				}
			}
			left.right = node
			left = node
			node = node.right

		default:
			goto done
		}
	}

done:
	left.right = node.left
	right.left = node.right
	node.left = header.right
	node.right = header.left
	t.root = node
}

// insert records offset under fingerprint fp, creating a node if needed.
func (t *splaySeedIndex) insert(fp, offset uint64) {
	if t.root == nil {
		t.root = &splayNode{fp: fp, offsets: []uint64{offset}}
		return
	}

	t.splay(fp)

	switch {
	case fp == t.root.fp:
		t.root.offsets = append(t.root.offsets, offset)
	case fp < t.root.fp:
		n := &splayNode{fp: fp, offsets: []uint64{offset}, left: t.root.left, right: t.root}
		t.root.left = nil
		t.root = n
	default:
		n := &splayNode{fp: fp, offsets: []uint64{offset}, left: t.root, right: t.root.right}
		t.root.right = nil
		t.root = n
	}
}

// lookup appends every offset recorded under fingerprint fp to dst and
// returns the extended slice. List order among equal fingerprints is
// implementation-defined (spec Open Question (b)); callers must not depend
// on which of several equal-fingerprint offsets comes first.
func (t *splaySeedIndex) lookup(fp uint64, dst []uint64) []uint64 {
	t.splay(fp)
	if t.root == nil || t.root.fp != fp {
		return dst
	}
	return append(dst, t.root.offsets...)
}
