// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// overlapSafeCopy copies length bytes from buf[srcStart:srcStart+length] to
// buf[dstStart:dstStart+length] within the same buffer (§4.10 in-place
// apply). Unlike the teacher's LZ back-reference copy (which must support a
// *growing* self-referential copy when dist < length, because newly written
// bytes become valid source for the remainder of that same match), an
// in-place delta's COPY always reads a fixed region of R that existed
// before this command ran — the in-place converter's scheduling guarantee
// (§4.8) is exactly what makes that region safe to read here. So a single
// call to Go's copy(), which already implements memmove semantics for any
// overlap direction, is sufficient; no exponential-doubling expansion is
// needed.
//
// rLen bounds the source side to the true reference length rather than the
// (possibly larger) shared buffer: buf is sized to max(len(r), vLen), so a
// srcStart+length that overruns R but still lands within buf's scratch tail
// must still be rejected per §3 invariant (b).
func overlapSafeCopy(buf []byte, dstStart, srcStart, length, rLen int) error {
	if srcStart < 0 || srcStart+length > rLen {
		return ErrInvalidDelta
	}
	if dstStart < 0 || dstStart+length > len(buf) {
		return ErrInvalidDelta
	}

	copy(buf[dstStart:dstStart+length], buf[srcStart:srcStart+length])
	return nil
}
