package geo

import "encoding/json"

// LineString is an ordered list of positions. Within this package it is used
// as a single directed segment from the first to the second position.
type LineString struct {
	coordinates []Position
	properties  Properties
}

// NewLineString creates a line string. Positions are copied but not range
// checked; Start and End validate when reading endpoints as points.
func NewLineString(coords []Position, props Properties) LineString {
	owned := make([]Position, len(coords))
	copy(owned, coords)

	return LineString{
		coordinates: owned,
		properties:  props.clone(),
	}
}

// Coordinates returns a copy of the line positions.
func (l LineString) Coordinates() []Position {
	out := make([]Position, len(l.coordinates))
	copy(out, l.coordinates)
	return out
}

// Properties returns the line's own properties map.
func (l LineString) Properties() Properties {
	return l.properties
}

// Start returns the first position as a Point.
func (l LineString) Start() (Point, error) {
	return l.pointAt(0)
}

// End returns the second position as a Point.
func (l LineString) End() (Point, error) {
	return l.pointAt(1)
}

func (l LineString) pointAt(i int) (Point, error) {
	if i >= len(l.coordinates) {
		return Point{}, &ArgumentError{Msg: "line string has no position at this index"}
	}

	c := l.coordinates[i]
	return NewPoint(c[0], c[1], nil)
}

// IsEastOf reports whether the segment A->B lies east of target, that is,
// whether a horizontal ray cast eastward from target crosses it.
//
// Endpoints are ordered so that A is the lower one. The ray counts a vertex
// only on the upper end of an edge, which keeps shared vertices between
// adjacent edges from being counted twice. A target on A's longitude makes
// the slope division infinite or NaN; that result is kept as is.
func (l LineString) IsEastOf(target Point) bool {
	if len(l.coordinates) < 2 {
		return false
	}

	a, b := l.coordinates[0], l.coordinates[1]
	if a[1] > b[1] {
		a, b = b, a
	}

	lngA, latA := a[0], a[1]
	lngB, latB := b[0], b[1]
	lngT, latT := target.Longitude(), target.Latitude()

	if latT <= latA || latT > latB || (lngT >= lngA && lngT >= lngB) {
		return false
	}
	if lngT < lngA && lngT < lngB {
		return true
	}

	return (latT-latA)/(lngT-lngA) > (latB-latA)/(lngB-lngA)
}

// Feature returns the GeoJSON envelope of the line.
func (l LineString) Feature() Feature {
	return NewFeature(LineStringType, l.Coordinates(), l.properties)
}

// MarshalJSON encodes the line as a GeoJSON feature.
func (l LineString) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Feature())
}

// MarshalYAML encodes the line as a GeoJSON feature.
func (l LineString) MarshalYAML() (any, error) {
	return l.Feature(), nil
}
