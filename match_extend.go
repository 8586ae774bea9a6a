// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// extendMatch extends a tentative (rOff, vOff) seed hit to the maximal
// common substring (§4.3): rightward while bytes agree and both spans have
// room, leftward while r and v are both > their respective floors (R's
// floor is 0; V's floor is lastCommittedV, the destination boundary already
// claimed by a prior committed command). Returns ok=false if the extended
// length falls short of minCopy.
func extendMatch(r, v []byte, rOff, vOff, lastCommittedV, minCopy int) (src, dst, length int, ok bool) {
	right := 0
	for rOff+right < len(r) && vOff+right < len(v) && r[rOff+right] == v[vOff+right] {
		right++
	}

	left := 0
	for rOff-left > 0 && vOff-left > lastCommittedV && r[rOff-left-1] == v[vOff-left-1] {
		left++
	}

	length = left + right
	if length < minCopy {
		return 0, 0, 0, false
	}

	return rOff - left, vOff - left, length, true
}

// bestCandidate scans candidate reference offsets sharing v's current
// fingerprint, extends each against (r, v) at cursor (candidates, vOff), and
// returns the match that maximizes rightward extent from vOff (ties broken
// by the leftmost src, per §4.4 step 2). ok is false if no candidate clears
// minCopy.
func bestCandidate(r, v []byte, candidates []uint64, vOff, lastCommittedV, minCopy int) (src, dst, length int, ok bool) {
	bestRight := -1
	var bestSrc, bestDst, bestLen int

	for _, c := range candidates {
		rOff := int(c)
		if rOff+minCopy > len(r) || vOff+minCopy > len(v) {
			continue
		}
		if !bytesEqual(r[rOff:rOff+minCopy], v[vOff:vOff+minCopy]) {
			continue
		}

		s, d, l, extOK := extendMatch(r, v, rOff, vOff, lastCommittedV, minCopy)
		if !extOK {
			continue
		}

		right := d + l - vOff
		if right > bestRight || (right == bestRight && s < bestSrc) {
			bestRight = right
			bestLen = l
			bestSrc = s
			bestDst = d
		}
	}

	if bestRight < 0 {
		return 0, 0, 0, false
	}
	return bestSrc, bestDst, bestLen, true
}

// bytesEqual is a tiny local alias kept for readability at call sites;
// bytes.Equal would pull in the bytes package for a single comparison used
// in the hot match-finding loop.
func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
