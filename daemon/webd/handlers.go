package webd

import (
	"io"
	"net/http"
	"strconv"

	"github.com/jellydator/ttlcache/v3"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rotblauer/routecat/params"
	"github.com/rotblauer/routecat/routefile"
	"github.com/rotblauer/routecat/types/route"
)

func pingPong(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}

// smoothRequest is the cache key structure: the raw geometry plus the
// effective smoothing parameters.
type smoothRequest struct {
	Line   orb.LineString
	Config params.SmoothingConfig
}

// handleSmooth accepts a GeoJSON Feature, FeatureCollection, or bare
// LineString geometry and responds with the smoothed feature. Properties
// report point counts and distances (meters) before and after. Smoothing
// parameters may be overridden with the cutoffDistance, cutoffAngle, and
// granularLevel query params.
func (s *WebDaemon) handleSmooth(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	line, err := routefile.ParseGeoJSON(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cfg := *params.DefaultSmoothingConfig
	if err := overrideConfigFromQuery(r, &cfg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key, hashOK := requestKey(line, cfg)
	if hashOK {
		if item := s.cache.Get(key); item != nil {
			w.Write(item.Value())
			return
		}
	}

	rt, err := route.New(line)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	pointsBefore, distanceBefore := rt.Len(), rt.TotalDistance()
	if err := rt.Smoothen(&cfg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := geojson.NewFeature(rt.LineString())
	f.Properties["PointsBefore"] = pointsBefore
	f.Properties["PointsAfter"] = rt.Len()
	f.Properties["DistanceBefore"] = distanceBefore
	f.Properties["DistanceAfter"] = rt.TotalDistance()

	data, err := f.MarshalJSON()
	if err != nil {
		s.logger.Error("Failed to marshal smoothed feature", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if hashOK {
		s.cache.Set(key, data, ttlcache.DefaultTTL)
	}
	w.Write(data)
}

func requestKey(line orb.LineString, cfg params.SmoothingConfig) (uint64, bool) {
	hash, err := hashstructure.Hash(smoothRequest{Line: line, Config: cfg}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, false
	}
	return hash, true
}

func overrideConfigFromQuery(r *http.Request, cfg *params.SmoothingConfig) error {
	for param, target := range map[string]*float64{
		"cutoffDistance": &cfg.CutoffDistance,
		"cutoffAngle":    &cfg.CutoffAngle,
		"granularLevel":  &cfg.GranularLevel,
	} {
		raw := r.URL.Query().Get(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*target = v
	}
	return nil
}
