package delta

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPlaceAssignsSequentialDestinations(t *testing.T) {
	cmds := []Command{
		Add([]byte("xx")),
		Copy(0, 8),
		Add([]byte("yy")),
	}

	placed, broken, err := Place(nil, cmds, false, PolicyLocalMin)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if broken != 0 {
		t.Fatalf("broken = %d, want 0 for non-inplace", broken)
	}

	wantDst := []uint64{0, 2, 10}
	for i, p := range placed {
		if p.Dst != wantDst[i] {
			t.Errorf("placed[%d].Dst = %d, want %d", i, p.Dst, wantDst[i])
		}
	}
}

func TestUnplaceIsInverseOfPlace(t *testing.T) {
	cmds := []Command{
		Add([]byte("xx")),
		Copy(0, 8),
		Add([]byte("yy")),
	}

	placed, _, err := Place(nil, cmds, false, PolicyLocalMin)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	got := Unplace(placed)
	if diff := cmp.Diff(cmds, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Unplace(Place(cmds)) mismatch (-want +got):\n%s", diff)
	}
}

func TestUnplaceSortsOutOfOrderInput(t *testing.T) {
	placed := []PlacedCommand{
		{Kind: KindAdd, Dst: 4, Data: []byte("BBBB")},
		{Kind: KindAdd, Dst: 0, Data: []byte("AAAA")},
	}
	got := Unplace(placed)
	if !bytes.Equal(got[0].Data, []byte("AAAA")) || !bytes.Equal(got[1].Data, []byte("BBBB")) {
		t.Fatalf("Unplace did not sort by Dst: %+v", got)
	}
}

func TestPlaceTilesV(t *testing.T) {
	cmds := []Command{
		Copy(0, 5),
		Add([]byte("hello")),
		Copy(3, 2),
	}
	placed, _, err := Place(nil, cmds, false, PolicyLocalMin)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if !tilesExactly(placed, 12) {
		t.Fatalf("placed commands do not tile [0,12): %+v", placed)
	}
}
