package clean

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/paulmach/orb"
)

func TestFilterDistanceDropsSpike(t *testing.T) {
	// Equatorial trace with a single ~1,113 km teleport in the middle.
	line := orb.LineString{{0, 0}, {0.001, 0}, {10, 0}, {0.002, 0}, {0.003, 0}}
	got, err := FilterDistance(line, 500)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("kept %d points, want 4: %v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Lon() <= got[i-1].Lon() {
			t.Errorf("longitude not monotonically increasing at %d: %v", i, got)
		}
	}
}

func TestFilterDistanceRetainsEndpoints(t *testing.T) {
	// Total signal loss: every interior point is beyond the cutoff.
	line := orb.LineString{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	got, err := FilterDistance(line, 500)
	if err != nil {
		t.Fatal(err)
	}
	want := orb.LineString{{0, 0}, {3, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("FilterDistance = %v, want %v", got, want)
	}
}

func TestFilterDistanceZeroCutoff(t *testing.T) {
	// Cutoff 0 keeps only points identical to the anchor.
	line := orb.LineString{{0, 0}, {0, 0}, {0.001, 0}, {0.002, 0}}
	got, err := FilterDistance(line, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := orb.LineString{{0, 0}, {0, 0}, {0.002, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("FilterDistance = %v, want %v", got, want)
	}
}

func TestFilterDistanceSelfHeals(t *testing.T) {
	// Two consecutive bad fixes, then the trace returns into range of the
	// anchor. Both spikes absorbed, nothing else lost.
	line := orb.LineString{{0, 0}, {5, 0}, {5.001, 0}, {0.001, 0}, {0.002, 0}}
	got, err := FilterDistance(line, 500)
	if err != nil {
		t.Fatal(err)
	}
	want := orb.LineString{{0, 0}, {0.001, 0}, {0.002, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("FilterDistance = %v, want %v", got, want)
	}
}

func TestFilterDistanceDegenerate(t *testing.T) {
	for _, line := range []orb.LineString{{}, {{1, 1}}} {
		got, err := FilterDistance(line, 500)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, line) {
			t.Errorf("FilterDistance(%v) = %v, want identity", line, got)
		}
	}
}

func TestFilterAngleDropsReversalSpike(t *testing.T) {
	// One point jumps ~1.1 km sideways, making a ~6 degree hairpin.
	// The neighbors turn far more gently and must survive.
	line := orb.LineString{{0, 0}, {0.001, 0}, {0.0015, 0.01}, {0.002, 0}, {0.003, 0}}
	got, err := FilterAngle(line, 45)
	if err != nil {
		t.Fatal(err)
	}
	want := orb.LineString{{0, 0}, {0.001, 0}, {0.002, 0}, {0.003, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("FilterAngle = %v, want %v", got, want)
	}
}

func TestFilterAngleRetainsEndpoints(t *testing.T) {
	// A zig-zag where every interior angle is sharp. Endpoints stay.
	line := orb.LineString{{0, 0}, {0.001, 0.01}, {0.002, -0.01}, {0.003, 0.01}, {0.004, 0}}
	got, err := FilterAngle(line, 170)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != line[0] || got[len(got)-1] != line[len(line)-1] {
		t.Errorf("endpoints not retained: %v", got)
	}
}

func TestFilterAngleStraightLineUntouched(t *testing.T) {
	line := orb.LineString{{0, 0}, {0.001, 0}, {0.002, 0}, {0.003, 0}}
	got, err := FilterAngle(line, 45)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, line) {
		t.Errorf("FilterAngle = %v, want %v", got, line)
	}
}

func TestFilterSimplifyCollapsesStraightRun(t *testing.T) {
	line := make(orb.LineString, 100)
	for i := range line {
		line[i] = orb.Point{float64(i) * 0.001, 0}
	}
	got, err := FilterSimplify(line, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("kept %d points, want 2", len(got))
	}
}

func TestFilterSimplifyZeroLevelIdentity(t *testing.T) {
	line := orb.LineString{{0, 0}, {0.001, 0}, {0.002, 0}}
	got, err := FilterSimplify(line, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, line) {
		t.Errorf("FilterSimplify(0) = %v, want identity", got)
	}
}

func TestNegativeParametersRejected(t *testing.T) {
	line := orb.LineString{{0, 0}, {0.001, 0}, {0.002, 0}}
	if _, err := FilterDistance(line, -1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("FilterDistance(-1) err = %v, want ErrInvalidParameter", err)
	}
	if _, err := FilterAngle(line, -1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("FilterAngle(-1) err = %v, want ErrInvalidParameter", err)
	}
	if _, err := FilterSimplify(line, -1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("FilterSimplify(-1) err = %v, want ErrInvalidParameter", err)
	}
}

func TestMetersPerGranularLevel(t *testing.T) {
	// Level 5, the default, should tolerate roughly 17 m of deviation.
	if tol := 5 * MetersPerGranularLevel; math.Abs(tol-16.7) > 0.1 {
		t.Errorf("default tolerance = %v, want ~16.7", tol)
	}
}
