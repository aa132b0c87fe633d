package routefile

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/paulmach/orb"
	kml "github.com/twpayne/go-kml/v2"
)

// ParseKML extracts the first Placemark LineString from a KML document.
// go-kml is a builder API without an unmarshaller, so decoding walks the
// token stream and grabs the coordinates of the first LineString element,
// wherever it nests (Document, Folder, bare Placemark).
func ParseKML(data []byte) (orb.LineString, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	inLineString := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "LineString":
				inLineString = true
			case "coordinates":
				if !inLineString {
					continue
				}
				var raw string
				if err := dec.DecodeElement(&raw, &el); err != nil {
					return nil, err
				}
				return parseCoordinates(raw)
			}
		case xml.EndElement:
			if el.Name.Local == "LineString" {
				inLineString = false
			}
		}
	}
	return nil, ErrNoLineString
}

func writeKML(w io.Writer, line orb.LineString) error {
	coords := make([]kml.Coordinate, len(line))
	for i, p := range line {
		coords[i] = kml.Coordinate{Lon: p.Lon(), Lat: p.Lat()}
	}
	doc := kml.KML(
		kml.Document(
			kml.Placemark(
				kml.LineString(
					kml.Coordinates(coords...),
				),
			),
		),
	)
	return doc.WriteIndent(w, "", "  ")
}
