package geo

import "encoding/json"

// Point is a single validated [longitude, latitude] position.
// Only its properties may change after construction.
type Point struct {
	coordinates Position
	properties  Properties
}

// NewPoint creates a point, failing with a *ConstructionError when the
// longitude is outside [-180, 180], the latitude outside [-90, 90], or
// either value is NaN or infinite.
func NewPoint(lng, lat float64, props Properties) (Point, error) {
	if !IsValidLngLat([2]float64{lng, lat}) {
		return Point{}, &ConstructionError{Lng: lng, Lat: lat}
	}

	return Point{
		coordinates: Position{lng, lat},
		properties:  props.clone(),
	}, nil
}

// NewPointFromValues creates a point from untyped values such as decoded
// JSON or YAML. Non-numeric values fail like out-of-range ones.
func NewPointFromValues(lng, lat any, props Properties) (Point, error) {
	x, okLng := Coordinate(lng)
	y, okLat := Coordinate(lat)
	if !okLng || !okLat {
		return Point{}, &ConstructionError{Lng: lng, Lat: lat}
	}

	p, err := NewPoint(x, y, props)
	if err != nil {
		return Point{}, &ConstructionError{Lng: lng, Lat: lat}
	}

	return p, nil
}

// Longitude returns the point longitude.
func (p Point) Longitude() float64 { return p.coordinates[0] }

// Latitude returns the point latitude.
func (p Point) Latitude() float64 { return p.coordinates[1] }

// Coordinates returns the [lng, lat] pair.
func (p Point) Coordinates() Position { return p.coordinates }

// Properties returns the point's own properties map.
func (p Point) Properties() Properties {
	return p.properties
}

// Feature returns the GeoJSON envelope of the point.
func (p Point) Feature() Feature {
	return NewFeature(PointType, p.coordinates, p.properties)
}

// MarshalJSON encodes the point as a GeoJSON feature.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Feature())
}

// MarshalYAML encodes the point as a GeoJSON feature.
func (p Point) MarshalYAML() (any, error) {
	return p.Feature(), nil
}
