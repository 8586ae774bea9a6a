package delta

import (
	"bytes"
	"testing"
)

func TestConvertInPlaceBreaksSimpleCycle(t *testing.T) {
	r := []byte("ABCDEFGH") // two 4-byte halves, swapped to build V
	v := []byte("EFGHABCD")

	seq := []PlacedCommand{
		{Kind: KindCopy, Dst: 0, SrcOffset: 4, Length: 4}, // reads R[4:8], writes V[0:4]
		{Kind: KindCopy, Dst: 4, SrcOffset: 0, Length: 4}, // reads R[0:4], writes V[4:8]
	}

	placed, broken, err := convertInPlace(r, seq, PolicyLocalMin)
	if err != nil {
		t.Fatalf("convertInPlace: %v", err)
	}
	if broken < 1 {
		t.Fatalf("broken = %d, want at least 1 for a genuine two-cycle", broken)
	}

	out, err := ApplyInplace(r, placed, len(v))
	if err != nil {
		t.Fatalf("ApplyInplace: %v", err)
	}
	if !bytes.Equal(out, v) {
		t.Fatalf("ApplyInplace = %q, want %q", out, v)
	}
}

func TestConvertInPlaceAcyclicIsUnchanged(t *testing.T) {
	r := []byte("ABCDEFGH")
	v := []byte("ABCDEFGH")

	seq := []PlacedCommand{
		{Kind: KindCopy, Dst: 0, SrcOffset: 0, Length: 8},
	}

	placed, broken, err := convertInPlace(r, seq, PolicyLocalMin)
	if err != nil {
		t.Fatalf("convertInPlace: %v", err)
	}
	if broken != 0 {
		t.Fatalf("broken = %d, want 0 for an acyclic single copy", broken)
	}

	out, err := ApplyInplace(r, placed, len(v))
	if err != nil {
		t.Fatalf("ApplyInplace: %v", err)
	}
	if !bytes.Equal(out, v) {
		t.Fatalf("ApplyInplace = %q, want %q", out, v)
	}
}

func TestConvertInPlaceConstantPolicyDemotesWholeCycle(t *testing.T) {
	r := []byte("ABCDEFGH")
	v := []byte("EFGHABCD")

	seq := []PlacedCommand{
		{Kind: KindCopy, Dst: 0, SrcOffset: 4, Length: 4},
		{Kind: KindCopy, Dst: 4, SrcOffset: 0, Length: 4},
	}

	placed, broken, err := convertInPlace(r, seq, PolicyConstant)
	if err != nil {
		t.Fatalf("convertInPlace: %v", err)
	}
	if broken != 2 {
		t.Fatalf("broken = %d, want 2 (constant demotes every copy in the cycle)", broken)
	}

	for _, p := range placed {
		if p.Kind != KindAdd {
			t.Fatalf("expected all commands demoted to ADD under PolicyConstant, got %+v", p)
		}
	}

	out, err := ApplyInplace(r, placed, len(v))
	if err != nil {
		t.Fatalf("ApplyInplace: %v", err)
	}
	if !bytes.Equal(out, v) {
		t.Fatalf("ApplyInplace = %q, want %q", out, v)
	}
}

func TestPlaceInPlaceEndToEnd(t *testing.T) {
	r := []byte("ABCDEFGH")
	v := []byte("EFGHABCD")
	cmds := []Command{
		Copy(4, 4),
		Copy(0, 4),
	}

	placed, broken, err := Place(r, cmds, true, PolicyLocalMin)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if broken < 1 {
		t.Fatalf("broken = %d, want at least 1", broken)
	}

	out, err := ApplyInplace(r, placed, len(v))
	if err != nil {
		t.Fatalf("ApplyInplace: %v", err)
	}
	if !bytes.Equal(out, v) {
		t.Fatalf("ApplyInplace = %q, want %q", out, v)
	}
}
