// Package clean implements the three route smoothing stages as pure
// functions over an orb.LineString. Each stage returns a new line; the
// input is never mutated.
package clean

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/rotblauer/routecat/geo"
)

// ErrInvalidParameter is returned when a cutoff or granular level is
// negative. Parameters are validated before any scanning; out-of-range
// values are never silently clamped.
var ErrInvalidParameter = errors.New("invalid parameter")

// MetersPerGranularLevel converts a granular level to a Douglas-Peucker
// tolerance in meters. One level is 3e-5 degrees of arc at the equator,
// which is ~3.34 m; the default level 5 tolerates ~16.7 m of deviation.
const MetersPerGranularLevel = 3.34

// FilterDistance drops coordinates that jump implausibly far from the
// last accepted coordinate. The scan keeps a single anchor: the first
// point is always accepted, and each interior candidate within
// cutoffMeters of the anchor is accepted and becomes the new anchor.
// A candidate beyond the cutoff is a spike; it is dropped without moving
// the anchor, so the scan self-heals once the trace returns into range.
// The first and last points are always retained.
func FilterDistance(line orb.LineString, cutoffMeters float64) (orb.LineString, error) {
	if cutoffMeters < 0 {
		return nil, fmt.Errorf("%w: cutoff distance %v is negative", ErrInvalidParameter, cutoffMeters)
	}
	if len(line) < 2 {
		return line.Clone(), nil
	}
	out := make(orb.LineString, 0, len(line))
	out = append(out, line[0])
	anchor := line[0]
	for i := 1; i < len(line)-1; i++ {
		if geo.Distance(anchor, line[i]) <= cutoffMeters {
			out = append(out, line[i])
			anchor = line[i]
		}
	}
	out = append(out, line[len(line)-1])
	return out, nil
}

// FilterAngle drops interior coordinates whose local turn angle falls
// below cutoffDegrees, i.e. where the path doubles back sharply — a
// positional glitch rather than a real turn. Each candidate's angle is
// measured against the last accepted point and the next original point;
// a dropped candidate does not advance the anchor. Endpoints have no
// turn angle and are always retained.
func FilterAngle(line orb.LineString, cutoffDegrees float64) (orb.LineString, error) {
	if cutoffDegrees < 0 {
		return nil, fmt.Errorf("%w: cutoff angle %v is negative", ErrInvalidParameter, cutoffDegrees)
	}
	if len(line) < 2 {
		return line.Clone(), nil
	}
	out := make(orb.LineString, 0, len(line))
	out = append(out, line[0])
	anchor := line[0]
	for i := 1; i < len(line)-1; i++ {
		if geo.TurnAngle(anchor, line[i], line[i+1]) >= cutoffDegrees {
			out = append(out, line[i])
			anchor = line[i]
		}
	}
	out = append(out, line[len(line)-1])
	return out, nil
}

// FilterSimplify reduces point density with Douglas-Peucker, translating
// granularLevel into a meter tolerance (MetersPerGranularLevel).
func FilterSimplify(line orb.LineString, granularLevel float64) (orb.LineString, error) {
	if granularLevel < 0 {
		return nil, fmt.Errorf("%w: granular level %v is negative", ErrInvalidParameter, granularLevel)
	}
	return geo.Simplify(line, granularLevel*MetersPerGranularLevel), nil
}
