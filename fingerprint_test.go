package delta

import (
	"math/rand"
	"testing"
)

func TestRollingFingerprintMatchesDirect(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, again and again")
	p := 8

	rf := newRollingFingerprint(data, 0, p)
	for i := 0; i+p <= len(data); i++ {
		want := directFingerprint(data, i, p)
		if rf.Value() != want {
			t.Fatalf("offset %d: rolling=%d direct=%d", i, rf.Value(), want)
		}
		if i+p < len(data) {
			rf.roll(data[i], data[i+p])
		}
	}
}

func TestRollingFingerprintRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 4096)
	rng.Read(data)

	for _, p := range []int{1, 4, 16, 64} {
		rf := newRollingFingerprint(data, 0, p)
		for i := 0; i+p <= len(data); i++ {
			if rf.Value() != directFingerprint(data, i, p) {
				t.Fatalf("p=%d offset=%d mismatch", p, i)
			}
			if i+p < len(data) {
				rf.roll(data[i], data[i+p])
			}
		}
	}
}

func TestMersenneReductionBounds(t *testing.T) {
	// a, b both close to M should still reduce to a value < M.
	a := uint64(mersenneExp61 - 1)
	b := uint64(mersenneExp61 - 1)
	got := mulModMersenne61(a, b)
	if got >= mersenneExp61 {
		t.Fatalf("mulModMersenne61 returned unreduced value %d", got)
	}
}
