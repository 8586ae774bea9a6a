// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// encodeOnePass is the streaming encoder of §4.5: a single scan of R to
// build a fixed-size, strided seed index, followed by a single scan of V
// with no lookahead or backtracking. It trades the greedy encoder's
// optimality for O(|V|·c + q') time and O(q') space, where q' is the
// (prime-rounded) index capacity — making it the right choice when R is
// too large to index at every offset, or V arrives as a single pass.
func encodeOnePass(r, v []byte, o *EncodeOptions) ([]Command, error) {
	p := o.SeedLen
	minCopy := o.MinCopy
	if p <= 0 || minCopy <= 0 {
		return nil, ErrInvalidArgument
	}

	if len(v) < p || len(r) < p {
		return literalAll(v), nil
	}

	want := onePassIndexSize(r, p, uint64(o.TableSize))
	idx := acquireHashSeedIndex(want)
	defer releaseHashSeedIndex(idx)
	strideSeedIndex(idx, r, p)

	var commands []Command
	var candidates []uint64

	floor := 0
	vCursor := 0

	var rf *rollingFingerprint
	for vCursor+p <= len(v) {
		if rf == nil {
			rf = newRollingFingerprint(v, vCursor, p)
		}

		candidates = idx.lookup(rf.Value(), candidates[:0])
		src, dst, length, ok := bestCandidate(r, v, candidates, vCursor, floor, minCopy)
		if !ok {
			if vCursor+p < len(v) {
				rf.roll(v[vCursor], v[vCursor+p])
			} else {
				rf = nil
			}
			vCursor++
			continue
		}

		if dst > floor {
			commands = append(commands, Add(cloneBytes(v[floor:dst])))
		}
		commands = append(commands, Copy(uint64(src), uint64(length)))

		floor = dst + length
		vCursor = floor
		rf = nil
	}

	if floor < len(v) {
		commands = append(commands, Add(cloneBytes(v[floor:])))
	}

	return commands, nil
}

// onePassIndexSize computes q' = next_prime(max(q, ceil((|R|-p+1)/p))) per
// §4.5, where q is the caller's table size hint.
func onePassIndexSize(r []byte, p int, q uint64) uint64 {
	seeds := strideSeedCount(len(r), p)
	want := q
	if seeds > want {
		want = seeds
	}
	return nextPrime(want)
}

// strideSeedCount returns ceil((n-p+1)/p), or 0 if no seed fits.
func strideSeedCount(n, p int) uint64 {
	limit := n - p + 1
	if limit <= 0 {
		return 0
	}
	return uint64((limit + p - 1) / p)
}
