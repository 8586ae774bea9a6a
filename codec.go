// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
)

// Serialize frames placed into the binary container of §4.9: magic,
// version, mode, |V|, command count, the framed commands themselves, and a
// trailing CRC-64/XZ over everything that precedes it. inplace selects the
// tag-byte and per-command encoding (whether a destination varint is
// present); vLen is the reconstructed length of V, carried so Deserialize
// can check that the commands tile [0, vLen) and so ApplyInplace can size
// its output without re-deriving it from the commands.
func Serialize(placed []PlacedCommand, inplace bool, vLen int) ([]byte, error) {
	if vLen < 0 {
		return nil, ErrInvalidArgument
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(formatVersion)
	if inplace {
		buf.WriteByte(modeInPlace)
	} else {
		buf.WriteByte(modeSequential)
	}

	var varintBuf [maxVarintLen]byte
	writeUvarint(&buf, varintBuf[:], uint64(vLen))
	writeUvarint(&buf, varintBuf[:], uint64(len(placed)))

	for _, p := range placed {
		if err := writeCommand(&buf, varintBuf[:], p, inplace); err != nil {
			return nil, err
		}
	}

	sum := crc64XZ(buf.Bytes())
	var crcBytes [crcSize]byte
	binary.BigEndian.PutUint64(crcBytes[:], sum)
	buf.Write(crcBytes[:])

	return buf.Bytes(), nil
}

func writeUvarint(buf *bytes.Buffer, scratch []byte, v uint64) {
	n := binary.PutUvarint(scratch, v)
	buf.Write(scratch[:n])
}

func writeCommand(buf *bytes.Buffer, scratch []byte, p PlacedCommand, inplace bool) error {
	switch p.Kind {
	case KindCopy:
		if inplace {
			buf.WriteByte(tagCopyPlaced)
			writeUvarint(buf, scratch, p.Dst)
		} else {
			buf.WriteByte(tagCopySeq)
		}
		writeUvarint(buf, scratch, p.Length)
		writeUvarint(buf, scratch, p.SrcOffset)
	case KindAdd:
		if inplace {
			buf.WriteByte(tagAddPlaced)
			writeUvarint(buf, scratch, p.Dst)
		} else {
			buf.WriteByte(tagAddSeq)
		}
		writeUvarint(buf, scratch, uint64(len(p.Data)))
		buf.Write(p.Data)
	default:
		return fmt.Errorf("%w: unknown command kind %d", ErrInvalidArgument, p.Kind)
	}
	return nil
}

// Deserialize parses a container produced by Serialize, verifying the
// magic, version, and trailing checksum before returning the placed
// commands. inplace reports which mode the container was written in;
// vLen is the reconstructed length of V.
func Deserialize(data []byte) (placed []PlacedCommand, inplace bool, vLen int, err error) {
	if len(data) < len(magic)+1+1+crcSize {
		return nil, false, 0, ErrFormatError
	}
	if !bytes.Equal(data[:len(magic)], magic[:]) {
		return nil, false, 0, ErrFormatError
	}

	payload := data[:len(data)-crcSize]
	wantCRC := binary.BigEndian.Uint64(data[len(data)-crcSize:])
	if crc64XZ(payload) != wantCRC {
		return nil, false, 0, ErrChecksumMismatch
	}

	r := &byteReader{b: payload, pos: len(magic)}

	version, ok := r.readByte()
	if !ok || version != formatVersion {
		return nil, false, 0, ErrFormatError
	}

	modeByte, ok := r.readByte()
	if !ok {
		return nil, false, 0, ErrFormatError
	}
	switch modeByte {
	case modeSequential:
		inplace = false
	case modeInPlace:
		inplace = true
	default:
		return nil, false, 0, ErrFormatError
	}

	v64, ok := r.readUvarint()
	if !ok {
		return nil, false, 0, ErrFormatError
	}
	vLen = int(v64)

	count, ok := r.readUvarint()
	if !ok {
		return nil, false, 0, ErrFormatError
	}

	placed = make([]PlacedCommand, 0, count)
	var cursor uint64
	for i := uint64(0); i < count; i++ {
		p, ok := r.readCommand(inplace)
		if !ok {
			return nil, false, 0, ErrFormatError
		}
		if !inplace {
			// Sequential commands carry no dst: they are laid out in V order.
			p.Dst = cursor
			cursor += p.outputLen()
		}
		placed = append(placed, p)
	}

	if !r.atEnd() {
		return nil, false, 0, ErrFormatError
	}

	if !tilesExactly(placed, vLen) {
		return nil, false, 0, ErrInvalidDelta
	}

	return placed, inplace, vLen, nil
}

// tilesExactly checks invariant (a) of §3: sorted by Dst, the commands'
// destination ranges are contiguous and cover [0, vLen) with no gap or
// overlap. This is the general form of what the container format calls out
// as "in-place dst ranges overlap" — a sequential stream that fails to
// tile V is equally invalid.
func tilesExactly(placed []PlacedCommand, vLen int) bool {
	sorted := make([]PlacedCommand, len(placed))
	copy(sorted, placed)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Dst < sorted[j].Dst })

	var want uint64
	for _, p := range sorted {
		if p.Dst != want {
			return false
		}
		want += p.outputLen()
	}
	return want == uint64(vLen)
}

// byteReader is a minimal forward-only cursor over a framed delta payload.
type byteReader struct {
	b   []byte
	pos int
}

func (r *byteReader) readByte() (byte, bool) {
	if r.pos >= len(r.b) {
		return 0, false
	}
	v := r.b[r.pos]
	r.pos++
	return v, true
}

func (r *byteReader) readUvarint() (uint64, bool) {
	v, n := binary.Uvarint(r.b[r.pos:])
	if n <= 0 {
		return 0, false
	}
	r.pos += n
	return v, true
}

func (r *byteReader) readBytes(n uint64) ([]byte, bool) {
	if n > uint64(len(r.b)-r.pos) {
		return nil, false
	}
	out := make([]byte, n)
	copy(out, r.b[r.pos:r.pos+int(n)])
	r.pos += int(n)
	return out, true
}

func (r *byteReader) atEnd() bool {
	return r.pos == len(r.b)
}

func (r *byteReader) readCommand(inplace bool) (PlacedCommand, bool) {
	tag, ok := r.readByte()
	if !ok {
		return PlacedCommand{}, false
	}

	var p PlacedCommand
	switch tag {
	case tagCopySeq:
		if inplace {
			return PlacedCommand{}, false
		}
		length, ok := r.readUvarint()
		if !ok {
			return PlacedCommand{}, false
		}
		src, ok := r.readUvarint()
		if !ok {
			return PlacedCommand{}, false
		}
		p = PlacedCommand{Kind: KindCopy, SrcOffset: src, Length: length}

	case tagAddSeq:
		if inplace {
			return PlacedCommand{}, false
		}
		length, ok := r.readUvarint()
		if !ok {
			return PlacedCommand{}, false
		}
		data, ok := r.readBytes(length)
		if !ok {
			return PlacedCommand{}, false
		}
		p = PlacedCommand{Kind: KindAdd, Data: data}

	case tagCopyPlaced:
		if !inplace {
			return PlacedCommand{}, false
		}
		dst, ok := r.readUvarint()
		if !ok {
			return PlacedCommand{}, false
		}
		length, ok := r.readUvarint()
		if !ok {
			return PlacedCommand{}, false
		}
		src, ok := r.readUvarint()
		if !ok {
			return PlacedCommand{}, false
		}
		p = PlacedCommand{Kind: KindCopy, Dst: dst, SrcOffset: src, Length: length}

	case tagAddPlaced:
		if !inplace {
			return PlacedCommand{}, false
		}
		dst, ok := r.readUvarint()
		if !ok {
			return PlacedCommand{}, false
		}
		length, ok := r.readUvarint()
		if !ok {
			return PlacedCommand{}, false
		}
		data, ok := r.readBytes(length)
		if !ok {
			return PlacedCommand{}, false
		}
		p = PlacedCommand{Kind: KindAdd, Dst: dst, Data: data}

	default:
		return PlacedCommand{}, false
	}

	return p, true
}
