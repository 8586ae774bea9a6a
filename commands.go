// SPDX-License-Identifier: MIT
// Source: github.com/darrelllong/deltac

package delta

// CommandKind tags a Command or PlacedCommand as a COPY or an ADD, per the
// design note on representing sum types by tag + payload rather than a
// subclass hierarchy.
type CommandKind int

const (
	// KindCopy reproduces Length bytes of R starting at SrcOffset.
	KindCopy CommandKind = iota
	// KindAdd inserts the literal bytes in Data.
	KindAdd
)

// Command is a single step of a sequential delta stream: either a COPY of a
// run of R, or an ADD of literal bytes. Exactly one of the payload fields is
// meaningful depending on Kind.
type Command struct {
	Kind      CommandKind
	SrcOffset uint64 // valid when Kind == KindCopy
	Length    uint64 // valid when Kind == KindCopy; an ADD's length is len(Data)
	Data      []byte // valid when Kind == KindAdd
}

// outputLen returns the number of V bytes this command produces.
func (c Command) outputLen() uint64 {
	if c.Kind == KindCopy {
		return c.Length
	}
	return uint64(len(c.Data))
}

// Copy constructs a COPY command.
func Copy(srcOffset, length uint64) Command {
	return Command{Kind: KindCopy, SrcOffset: srcOffset, Length: length}
}

// Add constructs an ADD command. data is retained, not copied.
func Add(data []byte) Command {
	return Command{Kind: KindAdd, Data: data}
}

// PlacedCommand is a Command annotated with its destination offset in V.
type PlacedCommand struct {
	Kind      CommandKind
	Dst       uint64
	SrcOffset uint64 // valid when Kind == KindCopy
	Length    uint64 // valid when Kind == KindCopy
	Data      []byte // valid when Kind == KindAdd
}

// outputLen returns the number of V bytes this placed command produces.
func (p PlacedCommand) outputLen() uint64 {
	if p.Kind == KindCopy {
		return p.Length
	}
	return uint64(len(p.Data))
}

// srcRange returns the [start, end) range of R this placed copy reads, and
// ok=false for an ADD (which has no source dependency beyond its own Dst).
func (p PlacedCommand) srcRange() (start, end uint64, ok bool) {
	if p.Kind != KindCopy {
		return 0, 0, false
	}
	return p.SrcOffset, p.SrcOffset + p.Length, true
}

// dstRange returns the [start, end) range of V this placed command writes.
func (p PlacedCommand) dstRange() (start, end uint64) {
	return p.Dst, p.Dst + p.outputLen()
}
