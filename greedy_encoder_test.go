package delta

import (
	"bytes"
	"testing"
)

func TestEncodeGreedyLazyMatchingPrefersLongerLaterMatch(t *testing.T) {
	// R contains a short match early and a longer one a few bytes later
	// that covers the same span of V; greedy's lazy lookahead must prefer
	// the longer later match rather than committing to the short one.
	r := []byte("ZZZZlongmatchbodyXXXXXlongmatchbodyANDMORE")
	v := []byte("prefix-longmatchbodyANDMORE-suffix")

	commands, err := Encode(AlgoGreedy, r, v, &EncodeOptions{SeedLen: 4, MinCopy: 4})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var longestCopy uint64
	for _, c := range commands {
		if c.Kind == KindCopy && c.Length > longestCopy {
			longestCopy = c.Length
		}
	}
	if longestCopy < uint64(len("longmatchbodyANDMORE")) {
		t.Fatalf("longest copy = %d, want at least %d (the joint later match)", longestCopy, len("longmatchbodyANDMORE"))
	}

	out, err := ApplySequential(r, commands)
	if err != nil {
		t.Fatalf("ApplySequential: %v", err)
	}
	if !bytes.Equal(out, v) {
		t.Fatalf("got %q, want %q", out, v)
	}
}

func TestEncodeGreedyEmptyVersionYieldsNoCommands(t *testing.T) {
	commands, err := Encode(AlgoGreedy, []byte("123456789"), nil, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(commands) != 0 {
		t.Fatalf("expected 0 commands for empty V, got %d", len(commands))
	}
}

func TestEncodeGreedyIdenticalInputIsSingleCopy(t *testing.T) {
	data := []byte("hello world")
	commands, err := Encode(AlgoGreedy, data, data, &EncodeOptions{SeedLen: 4})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(commands) != 1 || commands[0].Kind != KindCopy || commands[0].Length != uint64(len(data)) {
		t.Fatalf("got %+v, want a single Copy{0, %d}", commands, len(data))
	}
}
