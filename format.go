// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// Binary delta container constants (see §4.9 of the design): magic, version,
// mode bytes, and the tag bytes that prefix each framed command.

// magic is the 5-byte container identifier.
var magic = [5]byte{'D', 'E', 'L', 'T', 'A'}

// formatVersion is the only supported container version.
const formatVersion = 1

// Mode bytes.
const (
	modeSequential = 0
	modeInPlace    = 1
)

// Command tag bytes. Sequential-mode commands omit the destination; in-place
// commands carry it as a varint immediately after the tag.
const (
	tagCopySeq     = 0x01
	tagAddSeq      = 0x02
	tagCopyPlaced  = 0x11
	tagAddPlaced   = 0x12
)

// crcSize is the width in bytes of the trailing CRC-64/XZ field.
const crcSize = 8

// maxVarintLen is the maximum number of bytes an unsigned LEB128 varint may
// occupy for a 64-bit value.
const maxVarintLen = 10
