package delta

import (
	"bytes"
	"errors"
	"testing"
)

func TestSerializeDeserializeRoundTripSequential(t *testing.T) {
	placed := []PlacedCommand{
		{Kind: KindAdd, Dst: 0, Data: []byte("xx")},
		{Kind: KindCopy, Dst: 2, SrcOffset: 0, Length: 8},
		{Kind: KindAdd, Dst: 10, Data: []byte("yy")},
	}

	data, err := Serialize(placed, false, 12)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	got, inplace, vLen, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if inplace {
		t.Fatal("expected sequential mode")
	}
	if vLen != 12 {
		t.Fatalf("vLen = %d, want 12", vLen)
	}
	if len(got) != len(placed) {
		t.Fatalf("got %d commands, want %d", len(got), len(placed))
	}
	for i := range placed {
		if got[i].Kind != placed[i].Kind || got[i].Dst != placed[i].Dst ||
			got[i].SrcOffset != placed[i].SrcOffset || got[i].Length != placed[i].Length ||
			!bytes.Equal(got[i].Data, placed[i].Data) {
			t.Fatalf("command %d: got %+v, want %+v", i, got[i], placed[i])
		}
	}
}

func TestSerializeDeserializeRoundTripInPlace(t *testing.T) {
	placed := []PlacedCommand{
		{Kind: KindCopy, Dst: 4, SrcOffset: 0, Length: 4},
		{Kind: KindCopy, Dst: 0, SrcOffset: 4, Length: 4},
	}

	data, err := Serialize(placed, true, 8)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	got, inplace, vLen, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !inplace {
		t.Fatal("expected in-place mode")
	}
	if vLen != 8 {
		t.Fatalf("vLen = %d, want 8", vLen)
	}
	if len(got) != 2 {
		t.Fatalf("got %d commands, want 2", len(got))
	}
}

func TestDeserializeRejectsBadMagic(t *testing.T) {
	data, _ := Serialize(nil, false, 0)
	data[0] ^= 0xFF
	_, _, _, err := Deserialize(data)
	if !errors.Is(err, ErrFormatError) {
		t.Fatalf("got %v, want ErrFormatError", err)
	}
}

func TestDeserializeRejectsChecksumMismatch(t *testing.T) {
	placed := []PlacedCommand{{Kind: KindAdd, Dst: 0, Data: []byte("hello")}}
	data, err := Serialize(placed, false, 5)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	data[len(data)-1] ^= 0xFF
	_, _, _, err = Deserialize(data)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("got %v, want ErrChecksumMismatch", err)
	}
}

func TestDeserializeRejectsTruncation(t *testing.T) {
	placed := []PlacedCommand{
		{Kind: KindCopy, Dst: 0, SrcOffset: 0, Length: 8},
	}
	data, err := Serialize(placed, false, 8)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	for cut := 1; cut < len(data); cut++ {
		truncated := data[:len(data)-cut]
		_, _, _, err := Deserialize(truncated)
		if err == nil {
			t.Fatalf("cut=%d: expected error", cut)
		}
	}
}

func TestDeserializeRejectsNonTilingCommands(t *testing.T) {
	// Two commands that leave a gap: [0,4) and [8,12) over a 12-byte V.
	placed := []PlacedCommand{
		{Kind: KindAdd, Dst: 0, Data: []byte("abcd")},
		{Kind: KindAdd, Dst: 8, Data: []byte("efgh")},
	}
	data, err := Serialize(placed, true, 12)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	_, _, _, err = Deserialize(data)
	if !errors.Is(err, ErrInvalidDelta) {
		t.Fatalf("got %v, want ErrInvalidDelta", err)
	}
}

func TestDeserializeEmptyContainer(t *testing.T) {
	data, err := Serialize(nil, false, 0)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	placed, inplace, vLen, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if inplace || vLen != 0 || len(placed) != 0 {
		t.Fatalf("got inplace=%v vLen=%d placed=%v, want all zero", inplace, vLen, placed)
	}
}
