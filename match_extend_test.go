package delta

import "testing"

func TestExtendMatchRightAndLeft(t *testing.T) {
	r := []byte("XXabcdefghYY")
	v := []byte("ZZZabcdefghWW")

	// Seed hit at r-offset 2 ("ab"), v-offset 3.
	src, dst, length, ok := extendMatch(r, v, 2, 3, 0, 4)
	if !ok {
		t.Fatal("expected match")
	}
	if src != 2 || dst != 3 || length != 8 {
		t.Fatalf("got src=%d dst=%d length=%d, want src=2 dst=3 length=8", src, dst, length)
	}
}

func TestExtendMatchRespectsLastCommittedV(t *testing.T) {
	r := []byte("abcdefgh")
	v := []byte("xxabcdefgh")

	// lastCommittedV=3 should prevent leftward extension past v-offset 3.
	_, dst, _, ok := extendMatch(r, v, 2, 4, 3, 1)
	if !ok {
		t.Fatal("expected match")
	}
	if dst < 3 {
		t.Fatalf("leftward extension crossed lastCommittedV: dst=%d", dst)
	}
}

func TestExtendMatchRejectsBelowMinCopy(t *testing.T) {
	r := []byte("abXYdefgh")
	v := []byte("abZZdefgh")

	_, _, _, ok := extendMatch(r, v, 0, 0, 0, 3)
	if ok {
		t.Fatal("expected rejection: only 2 bytes match before divergence")
	}
}

func TestBestCandidatePicksLongestExtent(t *testing.T) {
	r := []byte("aaaaXXXXXXXXbbbb")
	v := []byte("----XXXXXXXXbbbbcccc")

	candidates := []uint64{4} // r-offset of the long run
	src, dst, length, ok := bestCandidate(r, v, candidates, 4, 0, 4)
	if !ok {
		t.Fatal("expected a match")
	}
	if src != 4 || dst != 4 || length != 12 {
		t.Fatalf("got src=%d dst=%d length=%d", src, dst, length)
	}
}
