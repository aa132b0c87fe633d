// Package geo provides the geometric primitives for route smoothing:
// pairwise great-circle distance, turn angle at a vertex, polyline length,
// and Douglas-Peucker simplification. All functions are pure.
//
// Points follow the orb convention: orb.Point{lon, lat}, decimal degrees.
// Distances are meters on the spherical earth model (orb.EarthRadius).
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Distance returns the great-circle distance between a and b in meters,
// using the haversine formula. Symmetric; zero for equal points.
func Distance(a, b orb.Point) float64 {
	return orbgeo.DistanceHaversine(a, b)
}

// Length returns the sum of pairwise distances over consecutive points
// of line, in meters. Zero for lines with fewer than two points.
func Length(line orb.LineString) float64 {
	var total float64
	for i := 1; i < len(line); i++ {
		total += Distance(line[i-1], line[i])
	}
	return total
}

// TurnAngle returns the angle at mid between the legs prev->mid and
// mid->next, in degrees in [0, 180]. 180 means the path continues straight
// through mid; 0 means it reverses on itself. Computed with the law of
// cosines over the haversine leg lengths.
//
// A zero-length leg (prev == mid or mid == next) leaves the angle
// undefined; it is clamped to 180 so that a zero-length segment never
// reads as a spike.
func TurnAngle(prev, mid, next orb.Point) float64 {
	a := Distance(prev, mid)
	c := Distance(mid, next)
	if a == 0 || c == 0 {
		return 180
	}
	b := Distance(prev, next)
	cos := (a*a + c*c - b*b) / (2 * a * c)
	// Rounding can push the cosine just outside [-1, 1].
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}
