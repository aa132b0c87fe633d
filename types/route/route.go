// Package route defines the Route type: an ordered GPS coordinate
// sequence with smoothing and distance queries. A Route owns its working
// sequence exclusively; every filter stage produces a complete new
// sequence which is swapped in atomically, so a failed smoothing call
// leaves the route untouched.
package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/rotblauer/routecat/common"
	"github.com/rotblauer/routecat/geo"
	"github.com/rotblauer/routecat/geo/clean"
	"github.com/rotblauer/routecat/params"
)

// ErrInvalidCoordinate is returned by New when a coordinate is non-finite
// or outside valid lon/lat ranges. Surfaced at construction, not deferred
// to filter time.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Route is a single polyline traced by a GPS sensor, in temporal order.
// Not safe for concurrent mutation; read-only queries on an unmutated
// Route may run concurrently.
type Route struct {
	line orb.LineString
}

// New constructs a Route from an ordered coordinate sequence.
// Coordinates are validated (finite, lat in [-90,90], lon in [-180,180])
// and consecutive exact duplicates are dropped. Sequences of 0 or 1
// points are legal; all operations on such a route are identity/zero.
func New(line orb.LineString) (*Route, error) {
	for i, p := range line {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}
	return &Route{line: dedupeConsecutive(line)}, nil
}

func validate(p orb.Point) error {
	lon, lat := p.Lon(), p.Lat()
	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return fmt.Errorf("%w: non-finite (%v %v)", ErrInvalidCoordinate, lon, lat)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: out of range (%v %v)", ErrInvalidCoordinate, lon, lat)
	}
	return nil
}

// dedupeConsecutive removes points identical to their predecessor.
// Duplicate fixes produce zero-length segments, which carry no distance
// and no defined turn angle.
func dedupeConsecutive(line orb.LineString) orb.LineString {
	out := make(orb.LineString, 0, len(line))
	for _, p := range line {
		if len(out) > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Len returns the number of points in the working sequence.
func (r *Route) Len() int {
	return len(r.line)
}

// LineString returns a copy of the working sequence for export.
func (r *Route) LineString() orb.LineString {
	return r.line.Clone()
}

// TotalDistance returns the sum of pairwise great-circle distances over
// the working sequence, in meters. Zero for routes with fewer than 2 points.
func (r *Route) TotalDistance() float64 {
	return geo.Length(r.line)
}

// TotalDistanceKilometers returns TotalDistance in kilometers, fixed to
// 3 decimal places (meter resolution).
func (r *Route) TotalDistanceKilometers() float64 {
	return common.DecimalToFixed(r.TotalDistance()/1000, 3)
}

// Smoothen replaces the working sequence with the denoised one:
// distance filter, then angle filter, then simplification. A nil cfg
// uses params.DefaultSmoothingConfig. On error the working sequence is
// left unchanged.
func (r *Route) Smoothen(cfg *params.SmoothingConfig) error {
	if cfg == nil {
		cfg = params.DefaultSmoothingConfig
	}
	if len(r.line) < 2 {
		// Degenerate routes pass through untouched, but bad parameters
		// still surface.
		if cfg.CutoffDistance < 0 || cfg.CutoffAngle < 0 || cfg.GranularLevel < 0 {
			return clean.ErrInvalidParameter
		}
		return nil
	}
	filtered, err := clean.FilterDistance(r.line, cfg.CutoffDistance)
	if err != nil {
		return err
	}
	filtered, err = clean.FilterAngle(filtered, cfg.CutoffAngle)
	if err != nil {
		return err
	}
	filtered, err = clean.FilterSimplify(filtered, cfg.GranularLevel)
	if err != nil {
		return err
	}
	r.line = filtered
	return nil
}
