package delta

import (
	"sort"
	"testing"
)

func TestIntervalIndexQueryOverlapping(t *testing.T) {
	items := []interval{
		{Start: 0, End: 10, ID: 0},
		{Start: 10, End: 20, ID: 1},
		{Start: 5, End: 15, ID: 2},
		{Start: 30, End: 40, ID: 3},
	}
	ix := newIntervalIndex(append([]interval(nil), items...))

	var got []int
	ix.queryOverlapping(8, 12, -1, func(id int) { got = append(got, id) })
	sort.Ints(got)

	want := []int{0, 1, 2} // [0,10), [10,20), [5,15) all intersect [8,12)
	if !equalInts(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestIntervalIndexExcludesSelf(t *testing.T) {
	items := []interval{{Start: 0, End: 10, ID: 0}}
	ix := newIntervalIndex(items)

	var got []int
	ix.queryOverlapping(0, 10, 0, func(id int) { got = append(got, id) })
	if len(got) != 0 {
		t.Fatalf("expected no results when excluding the only overlapping id, got %v", got)
	}
}

func TestIntervalIndexNoOverlap(t *testing.T) {
	items := []interval{
		{Start: 0, End: 5, ID: 0},
		{Start: 20, End: 25, ID: 1},
	}
	ix := newIntervalIndex(items)

	var got []int
	ix.queryOverlapping(10, 15, -1, func(id int) { got = append(got, id) })
	if len(got) != 0 {
		t.Fatalf("expected no overlaps, got %v", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
