// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// ApplySequential reconstructs V by replaying a sequential command stream
// against r (§4.10). It allocates the output once, sized from the sum of
// each command's produced length, and rejects a COPY whose source range
// falls outside r.
func ApplySequential(r []byte, commands []Command) ([]byte, error) {
	var total uint64
	for _, c := range commands {
		total += c.outputLen()
	}

	out := make([]byte, total)
	var pos uint64
	for _, c := range commands {
		switch c.Kind {
		case KindCopy:
			if c.SrcOffset+c.Length > uint64(len(r)) {
				return nil, ErrInvalidDelta
			}
			copy(out[pos:pos+c.Length], r[c.SrcOffset:c.SrcOffset+c.Length])
			pos += c.Length
		case KindAdd:
			n := uint64(len(c.Data))
			copy(out[pos:pos+n], c.Data)
			pos += n
		default:
			return nil, ErrInvalidDelta
		}
	}

	if pos != total {
		return nil, ErrInvalidDelta
	}
	return out, nil
}

// ApplyInplace reconstructs V by executing a placed command stream in its
// stored order over a single shared buffer (§4.10): R is preloaded into the
// low |R| bytes, each command writes through overlapSafeCopy or a direct
// literal copy, and the buffer is truncated to vLen once every command has
// run. The caller is responsible for having produced placed in a schedule
// that respects every read-before-write dependency (Place's job); this
// function trusts that ordering and only validates range bounds.
func ApplyInplace(r []byte, placed []PlacedCommand, vLen int) ([]byte, error) {
	size := len(r)
	if vLen > size {
		size = vLen
	}
	buf := make([]byte, size)
	copy(buf, r)

	for _, p := range placed {
		end := p.Dst + p.outputLen()
		if end > uint64(size) {
			return nil, ErrInvalidDelta
		}

		switch p.Kind {
		case KindCopy:
			if p.SrcOffset+p.Length > uint64(len(r)) {
				return nil, ErrInvalidDelta
			}
			if err := overlapSafeCopy(buf, int(p.Dst), int(p.SrcOffset), int(p.Length), len(r)); err != nil {
				return nil, err
			}
		case KindAdd:
			copy(buf[p.Dst:end], p.Data)
		default:
			return nil, ErrInvalidDelta
		}
	}

	if vLen > len(buf) {
		return nil, ErrInvalidDelta
	}
	return buf[:vLen], nil
}
