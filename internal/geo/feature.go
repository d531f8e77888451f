// Package geo implements the GeoJSON feature model (Point, LineString, Polygon),
// coordinate validation and the ray-casting point-in-polygon test.
package geo

import (
	"encoding/json"
	"strconv"

	"github.com/mohae/deepcopy"
	"github.com/rs/zerolog/log"
)

// FeatureType is the fixed discriminator of every GeoJSON feature envelope.
const FeatureType = "Feature"

// GeometryType identifies the geometry variant carried by a feature.
type GeometryType string

// Supported geometry variants.
const (
	PointType      GeometryType = "Point"
	LineStringType GeometryType = "LineString"
	PolygonType    GeometryType = "Polygon"
)

// Valid reports whether t is one of the supported geometry variants.
func (t GeometryType) Valid() bool {
	switch t {
	case PointType, LineStringType, PolygonType:
		return true
	default:
		return false
	}
}

// Position is a single [longitude, latitude] coordinate pair.
type Position [2]float64

// Ring is a closed sequence of positions, first equal to last.
type Ring []Position

// Properties holds the free-form key-values of a feature.
type Properties map[string]any

// MarshalJSON encodes a nil map as an empty object.
func (p Properties) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(p))
}

// clone returns a deep copy so that no two features share a properties map.
func (p Properties) clone() Properties {
	if len(p) == 0 {
		return Properties{}
	}
	return deepcopy.Copy(p).(Properties)
}

// FeatureCollection represents a collection of geographic features.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// NewFeatureCollection returns an empty collection ready for appending.
func NewFeatureCollection() FeatureCollection {
	return FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
}

// Feature is the GeoJSON (RFC 7946) envelope shared by every geometry variant.
// Field order matches the wire format: type, geometry, properties.
type Feature struct {
	Type       string     `json:"type" yaml:"type"`
	Geometry   Geometry   `json:"geometry" yaml:"geometry"`
	Properties Properties `json:"properties" yaml:"properties"`
}

// Geometry is the discriminated payload of a feature.
type Geometry struct {
	Type        GeometryType `json:"type" yaml:"type"`
	Coordinates any          `json:"coordinates" yaml:"coordinates"`
}

// NewFeature builds a raw feature envelope. The concrete constructors
// (NewPoint, NewLineString, NewPolygon) always pass a valid type; a missing or
// unknown type only logs a warning so new variants can still be carried.
func NewFeature(t GeometryType, coordinates any, props Properties) Feature {
	switch {
	case t == "":
		log.Warn().Msg("Feature being created without a geometry type")
	case !t.Valid():
		log.Warn().
			Str("geometry_type", string(t)).
			Msg("Feature being created with an unsupported geometry type")
	}

	return Feature{
		Type: FeatureType,
		Geometry: Geometry{
			Type:        t,
			Coordinates: coordinates,
		},
		Properties: props.clone(),
	}
}

// DecodeFeature parses a GeoJSON feature object.
func DecodeFeature(data []byte) (Feature, error) {
	var f Feature
	if err := json.Unmarshal(data, &f); err != nil {
		return Feature{}, err
	}
	if f.Type != FeatureType {
		return Feature{}, &ArgumentError{Msg: "geojson object type must be Feature, got " + strconv.Quote(f.Type)}
	}

	return f, nil
}

// Point converts the envelope into a validated Point.
func (f Feature) Point() (Point, error) {
	if f.Geometry.Type != PointType {
		return Point{}, wrongType(PointType, f.Geometry.Type)
	}

	switch c := f.Geometry.Coordinates.(type) {
	case Position:
		return NewPoint(c[0], c[1], f.Properties)
	case []any:
		if len(c) != 2 {
			return Point{}, &ConstructionError{Lng: c, Lat: nil}
		}
		return NewPointFromValues(c[0], c[1], f.Properties)
	default:
		return Point{}, &ConstructionError{Lng: c, Lat: nil}
	}
}

// LineString converts the envelope into a LineString.
func (f Feature) LineString() (LineString, error) {
	if f.Geometry.Type != LineStringType {
		return LineString{}, wrongType(LineStringType, f.Geometry.Type)
	}

	coords, err := toPositions(f.Geometry.Coordinates)
	if err != nil {
		return LineString{}, err
	}

	return NewLineString(coords, f.Properties), nil
}

// Polygon converts the envelope into a Polygon using its outer ring.
func (f Feature) Polygon() (Polygon, error) {
	if f.Geometry.Type != PolygonType {
		return Polygon{}, wrongType(PolygonType, f.Geometry.Type)
	}

	var ring []Position
	switch c := f.Geometry.Coordinates.(type) {
	case []Ring:
		if len(c) == 0 {
			return Polygon{}, &ArgumentError{Msg: "polygon has no rings"}
		}
		ring = c[0]
	case []any:
		if len(c) == 0 {
			return Polygon{}, &ArgumentError{Msg: "polygon has no rings"}
		}
		var err error
		if ring, err = toPositions(c[0]); err != nil {
			return Polygon{}, err
		}
	default:
		return Polygon{}, &ArgumentError{Msg: "polygon coordinates must be a list of rings"}
	}

	return NewPolygon(ring, f.Properties)
}

// toPositions converts decoded JSON/YAML coordinates into positions.
func toPositions(v any) ([]Position, error) {
	switch c := v.(type) {
	case []Position:
		return c, nil
	case Ring:
		return c, nil
	case []any:
		out := make([]Position, 0, len(c))
		for _, raw := range c {
			pair, ok := raw.([]any)
			if !ok || len(pair) != 2 {
				return nil, &ArgumentError{Msg: "coordinate must be a [lng, lat] pair"}
			}
			lng, okLng := Coordinate(pair[0])
			lat, okLat := Coordinate(pair[1])
			if !okLng || !okLat {
				return nil, &ArgumentError{Msg: "coordinate must be numeric"}
			}
			out = append(out, Position{lng, lat})
		}
		return out, nil
	default:
		return nil, &ArgumentError{Msg: "coordinates must be a list of positions"}
	}
}

func wrongType(want, got GeometryType) error {
	return &ArgumentError{Msg: "geometry type must be " + string(want) + ", got " + strconv.Quote(string(got))}
}
