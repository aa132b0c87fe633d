package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// metersPerDegree is the length of one degree of latitude on the
// spherical earth model.
var metersPerDegree = orb.EarthRadius * math.Pi / 180

// projectMeters maps line onto a local equirectangular grid denominated in
// meters, with longitudes scaled by the cosine of the line's mid-latitude.
// One degree of longitude shrinks toward the poles; without the scale a
// degree-space tolerance means different things at different latitudes.
func projectMeters(line orb.LineString) orb.LineString {
	center := line.Bound().Center()
	scale := math.Cos(center.Lat() * math.Pi / 180)
	out := make(orb.LineString, len(line))
	for i, p := range line {
		out[i] = orb.Point{p.Lon() * scale * metersPerDegree, p.Lat() * metersPerDegree}
	}
	return out
}

// Simplify returns a Douglas-Peucker subsequence of line: the first and
// last points are always retained, and no discarded point deviates from
// the retained polyline by more than toleranceMeters of perpendicular
// distance. Deterministic given point order and tolerance.
//
// Lines with fewer than 3 points are returned unchanged, as is any line
// at tolerance zero ("no simplification"). The traversal uses an explicit
// stack; recursion depth on a long noisy trace is nobody's friend.
func Simplify(line orb.LineString, toleranceMeters float64) orb.LineString {
	out := make(orb.LineString, 0, len(line))
	if len(line) < 3 || toleranceMeters == 0 {
		return append(out, line...)
	}

	proj := projectMeters(line)
	keep := make([]bool, len(line))
	keep[0], keep[len(line)-1] = true, true

	type span struct{ first, last int }
	stack := []span{{0, len(line) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist, maxIdx := 0.0, 0
		for i := s.first + 1; i < s.last; i++ {
			if d := planar.DistanceFromSegment(proj[s.first], proj[s.last], proj[i]); d > maxDist {
				maxDist, maxIdx = d, i
			}
		}
		if maxDist > toleranceMeters {
			keep[maxIdx] = true
			stack = append(stack, span{s.first, maxIdx}, span{maxIdx, s.last})
		}
	}

	for i, k := range keep {
		if k {
			out = append(out, line[i])
		}
	}
	return out
}
