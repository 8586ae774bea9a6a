// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// encodeGreedy is the offline optimal encoder (§4.4): it indexes every
// offset of R (buildFullSeedIndex), then scans V left to right, at each
// position taking the candidate match that maximizes rightward extent
// (bestCandidate), subject to lazy matching — before committing to a match
// it looks up to defaultLazyLookahead (Δ) bytes further into V for a
// strictly longer one, and commits to whichever is best. This trades one
// bounded lookahead pass for materially better compression than a pure
// greedy left-to-right choice, at the cost of being an offline algorithm:
// it requires the whole of R and V resident before it can start.
func encodeGreedy(r, v []byte, o *EncodeOptions) ([]Command, error) {
	p := o.SeedLen
	minCopy := o.MinCopy
	if p <= 0 || minCopy <= 0 {
		return nil, ErrInvalidArgument
	}

	if len(v) < p || len(r) < p {
		return literalAll(v), nil
	}

	idx := buildFullSeedIndex(r, p, uint64(o.TableSize), o.UseSplay)

	var commands []Command
	var candidates []uint64

	floor := 0 // v offset before which everything is already committed
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

		bestSrc, bestDst, bestLen := src, dst, length

		peek := *rf
		peekPos := vCursor
		for step := 1; step <= defaultLazyLookahead && vCursor+step+p <= len(v); step++ {
			peek.roll(v[peekPos], v[peekPos+p])
			peekPos++

			candidates = idx.lookup(peek.Value(), candidates[:0])
			s2, d2, l2, ok2 := bestCandidate(r, v, candidates, peekPos, floor, minCopy)
			if ok2 && l2 > bestLen {
				bestSrc, bestDst, bestLen = s2, d2, l2
			}
		}

		if bestDst > floor {
			commands = append(commands, Add(cloneBytes(v[floor:bestDst])))
		}
		commands = append(commands, Copy(uint64(bestSrc), uint64(bestLen)))

		floor = bestDst + bestLen
		vCursor = floor
		rf = nil
	}

	if floor < len(v) {
		commands = append(commands, Add(cloneBytes(v[floor:])))
	}

	return commands, nil
}

// literalAll returns the single-command stream that reproduces v as one
// ADD, used when V (or R) is shorter than the seed length and no seed can
// ever be formed.
func literalAll(v []byte) []Command {
	if len(v) == 0 {
		return nil
	}
	return []Command{Add(cloneBytes(v))}
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
