// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// tentativeMatch is one pending entry in the correcting encoder's buffer T
// (§4.6): a seed hit extended against R, not yet committed to the output
// stream. checkpointFP fingerprints the p bytes of R immediately following
// the match as it stood at detection time; recomputing and comparing this
// at commit time catches a tentative that conflict resolution has silently
// invalidated without correctly unwinding it from T.
type tentativeMatch struct {
	src, dst, length int
	checkpointFP     uint64
	checkpointValid  bool
}

// encodeCorrecting is the 1.5-pass encoder of §4.6. It scans V once, but
// delays committing a seed hit to the output stream until either the
// tentative buffer T overflows its capacity or V is exhausted. While a
// match sits in T it can still be displaced by a later, longer match
// covering an overlapping span of V — the correction the one-pass encoder
// cannot make, because it commits immediately and can never take back an
// early short match that pre-empted a longer one starting nearby.
func encodeCorrecting(r, v []byte, o *EncodeOptions) ([]Command, error) {
	p := o.SeedLen
	minCopy := o.MinCopy
	if p <= 0 || minCopy <= 0 {
		return nil, ErrInvalidArgument
	}

	if len(v) < p || len(r) < p {
		return literalAll(v), nil
	}

	want := correctingIndexSize(r, p, uint64(o.TableSize))
	idx := acquireHashSeedIndex(want)
	defer releaseHashSeedIndex(idx)
	strideSeedIndex(idx, r, p)

	bufCap := o.BufCap
	if bufCap <= 0 {
		bufCap = defaultBufCap
	}

	var commands []Command
	var candidates []uint64
	var t []tentativeMatch

	floor := 0
	vCursor := 0

	commitOldest := func() {
		if len(t) == 0 {
			return
		}
		m := t[0]
		t = t[1:]
		commands = commitTentative(commands, r, v, &floor, m, p)
	}

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

		cand := tentativeMatch{src: src, dst: dst, length: length}
		cand.checkpointFP, cand.checkpointValid = checkpointFingerprint(r, src+length, p)

		t = resolveTentative(t, cand)

		if len(t) > bufCap {
			commitOldest()
		}

		vCursor = dst + length
		rf = nil
	}

	for len(t) > 0 {
		commitOldest()
	}

	if floor < len(v) {
		commands = append(commands, Add(cloneBytes(v[floor:])))
	}

	return commands, nil
}

// resolveTentative implements §4.6 step 2: a new tentative that overlaps
// (in V) with one already buffered survives only if it is strictly longer;
// the loser is dropped. A non-overlapping tentative is simply appended.
func resolveTentative(t []tentativeMatch, cand tentativeMatch) []tentativeMatch {
	out := t[:0]
	keep := true
	for _, existing := range t {
		if overlapsV(existing, cand) {
			if cand.length > existing.length {
				continue // existing is dropped
			}
			keep = false
			out = append(out, existing)
			continue
		}
		out = append(out, existing)
	}
	if keep {
		out = append(out, cand)
	}
	return out
}

func overlapsV(a, b tentativeMatch) bool {
	return a.dst < b.dst+b.length && b.dst < a.dst+a.length
}

// checkpointFingerprint fingerprints R[offset:offset+p], returning ok=false
// if that range runs past the end of R (the match abuts R's end, so there
// is nothing to checkpoint and staleness cannot be detected — commit
// proceeds unconditionally in that case).
func checkpointFingerprint(r []byte, offset, p int) (uint64, bool) {
	if offset < 0 || offset+p > len(r) {
		return 0, false
	}
	return directFingerprint(r, offset, p), true
}

// commitTentative finalizes one tentative match: it re-verifies the
// checkpoint, re-extends the match against R and V (leftward extension is
// now bounded by the commit floor, which may have advanced since the match
// was detected), and — if still valid — flushes the
// intervening literal run and emits the COPY. A failed checkpoint discards
// the tentative silently; its V bytes fall through into the next commit's
// preceding ADD.
func commitTentative(commands []Command, r, v []byte, floor *int, m tentativeMatch, p int) []Command {
	if m.checkpointValid {
		fp, ok := checkpointFingerprint(r, m.src+m.length, p)
		if !ok || fp != m.checkpointFP {
			return commands
		}
	}

	src, dst, length, ok := extendMatch(r, v, m.src, m.dst, *floor, 1)
	if !ok {
		return commands
	}

	if dst > *floor {
		commands = append(commands, Add(cloneBytes(v[*floor:dst])))
	}
	commands = append(commands, Copy(uint64(src), uint64(length)))
	*floor = dst + length
	return commands
}

// correctingIndexSize computes q' = next_prime(max(q, ceil(2*(|R|-p+1)/p)))
// per §4.6 — double the one-pass encoder's density, since the correcting
// algorithm relies on catching more candidate seeds to have something to
// correct against.
func correctingIndexSize(r []byte, p int, q uint64) uint64 {
	seeds := strideSeedCount(len(r), p)
	want := q
	if 2*seeds > want {
		want = 2 * seeds
	}
	return nextPrime(want)
}
