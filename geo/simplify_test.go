package geo

import (
	"slices"
	"testing"

	"github.com/paulmach/orb"
)

func TestSimplifyShortLinesUnchanged(t *testing.T) {
	for _, line := range []orb.LineString{
		{},
		{{0, 0}},
		{{0, 0}, {1, 1}},
	} {
		got := Simplify(line, 10)
		if !slices.Equal(got, line) {
			t.Errorf("Simplify(%v) = %v, want unchanged", line, got)
		}
	}
}

func TestSimplifyZeroToleranceUnchanged(t *testing.T) {
	line := orb.LineString{{0, 0}, {0.001, 0}, {0.002, 0}, {0.003, 0}}
	got := Simplify(line, 0)
	if !slices.Equal(got, line) {
		t.Errorf("Simplify(tolerance=0) = %v, want unchanged", got)
	}
}

func TestSimplifyCollinearCollapses(t *testing.T) {
	// 100 evenly spaced points along the equator. Any positive tolerance
	// flattens the straight run down to its endpoints.
	line := make(orb.LineString, 100)
	for i := range line {
		line[i] = orb.Point{float64(i) * 0.001, 0}
	}
	got := Simplify(line, 1)
	if len(got) != 2 {
		t.Fatalf("collinear simplify kept %d points, want 2", len(got))
	}
	if got[0] != line[0] || got[1] != line[len(line)-1] {
		t.Errorf("simplify endpoints = %v, %v; want %v, %v", got[0], got[1], line[0], line[len(line)-1])
	}
}

func TestSimplifyKeepsDeviatingPoint(t *testing.T) {
	// Middle point sits ~111 m off the chord.
	line := orb.LineString{{0, 0}, {0.0005, 0.001}, {0.001, 0}}
	if got := Simplify(line, 50); len(got) != 3 {
		t.Errorf("tolerance below deviation: kept %d points, want 3", len(got))
	}
	if got := Simplify(line, 150); len(got) != 2 {
		t.Errorf("tolerance above deviation: kept %d points, want 2", len(got))
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	line := orb.LineString{
		{0, 0}, {0.001, 0.0002}, {0.002, -0.0001}, {0.003, 0.0004},
		{0.004, 0}, {0.005, 0.0008}, {0.006, 0.0001},
	}
	once := Simplify(line, 20)
	twice := Simplify(once, 20)
	if !slices.Equal(once, twice) {
		t.Errorf("simplify not idempotent: %v then %v", once, twice)
	}
}

func TestSimplifyDoesNotMutateInput(t *testing.T) {
	line := orb.LineString{{0, 0}, {0.001, 0}, {0.002, 0}}
	backup := line.Clone()
	_ = Simplify(line, 100)
	if !slices.Equal(line, backup) {
		t.Errorf("input mutated: %v, want %v", line, backup)
	}
}
