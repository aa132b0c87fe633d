package params

// SmoothingConfig parameterizes the route smoothing pipeline.
// The pipeline always runs distance filter -> angle filter -> simplification,
// in that order. Distance spikes are removed first because a spike corrupts
// the turn angles measured at its neighbors; simplification runs last so it
// works on an already-denoised trace.
type SmoothingConfig struct {
	// CutoffDistance is the maximum allowed distance, in meters, between
	// two consecutive accepted coordinates. A candidate farther than this
	// from the last accepted point is considered a sensor spike.
	CutoffDistance float64

	// CutoffAngle is the minimum allowed turn angle, in degrees, at an
	// interior coordinate. 180 means the path continues straight, 0 means
	// it doubles back on itself. A candidate with a sharper (smaller)
	// angle is considered a sensor spike.
	CutoffAngle float64

	// GranularLevel scales the Douglas-Peucker tolerance used by the
	// simplification stage. Higher levels flatten more. One level is
	// worth about 3.34 meters of allowed perpendicular deviation.
	GranularLevel float64
}

var DefaultSmoothingConfig = &SmoothingConfig{
	CutoffDistance: 500.0,
	CutoffAngle:    45.0,
	GranularLevel:  5.0,
}
