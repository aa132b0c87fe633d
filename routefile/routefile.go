// Package routefile reads and writes single-polyline route files.
// Two formats are supported: KML (the trace format of the field sensors)
// and GeoJSON. A route file is expected to carry exactly one LineString;
// the first one found wins.
package routefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
)

type Format int

const (
	FormatUnknown Format = iota
	FormatKML
	FormatGeoJSON
)

var (
	// ErrNoLineString means the file parsed fine but held no usable polyline.
	ErrNoLineString = errors.New("no linestring found")

	// ErrUnknownFormat means the payload is neither KML nor GeoJSON.
	ErrUnknownFormat = errors.New("unknown route file format")
)

// DetectFormat sniffs the payload. JSON-looking data is probed with gjson
// before committing to a full GeoJSON decode; anything XML-shaped that
// mentions a kml element is treated as KML.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' && gjson.ValidBytes(trimmed) {
		return FormatGeoJSON
	}
	if trimmed[0] == '<' && bytes.Contains(trimmed, []byte("<kml")) {
		return FormatKML
	}
	return FormatUnknown
}

// Read opens and decodes a route file.
func Read(path string) (orb.LineString, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	line, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return line, nil
}

// ReadFrom decodes a route from r, sniffing the format.
func ReadFrom(r io.Reader) (orb.LineString, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch DetectFormat(data) {
	case FormatGeoJSON:
		return ParseGeoJSON(data)
	case FormatKML:
		return ParseKML(data)
	}
	return nil, ErrUnknownFormat
}

// ParseGeoJSON extracts the first LineString from a GeoJSON
// FeatureCollection, Feature, or bare Geometry.
func ParseGeoJSON(data []byte) (orb.LineString, error) {
	switch gjson.GetBytes(data, "type").String() {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			if ls, ok := f.Geometry.(orb.LineString); ok {
				return ls, nil
			}
		}
		return nil, ErrNoLineString
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		if ls, ok := f.Geometry.(orb.LineString); ok {
			return ls, nil
		}
		return nil, ErrNoLineString
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		if ls, ok := g.Geometry().(orb.LineString); ok {
			return ls, nil
		}
		return nil, ErrNoLineString
	}
}

// parseCoordinates parses a KML coordinates blob: whitespace-separated
// lon,lat[,alt] tuples. Altitude is dropped; routes are planimetric.
func parseCoordinates(raw string) (orb.LineString, error) {
	fields := strings.Fields(raw)
	line := make(orb.LineString, 0, len(fields))
	for _, field := range fields {
		parts := strings.Split(field, ",")
		if len(parts) < 2 {
			return nil, fmt.Errorf("malformed coordinate tuple %q", field)
		}
		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate tuple %q: %w", field, err)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate tuple %q: %w", field, err)
		}
		line = append(line, orb.Point{lon, lat})
	}
	if len(line) == 0 {
		return nil, ErrNoLineString
	}
	return line, nil
}

// Write encodes line to path, picking the format from the extension
// (.kml, .geojson, .json).
func Write(path string, line orb.LineString) error {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kml":
		format = FormatKML
	case ".geojson", ".json":
		format = FormatGeoJSON
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTo(f, format, line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo encodes line to w in the given format.
func WriteTo(w io.Writer, format Format, line orb.LineString) error {
	switch format {
	case FormatKML:
		return writeKML(w, line)
	case FormatGeoJSON:
		return writeGeoJSON(w, line)
	}
	return ErrUnknownFormat
}

func writeGeoJSON(w io.Writer, line orb.LineString) error {
	data, err := geojson.NewFeature(line).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
