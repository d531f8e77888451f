package geo

import "encoding/json"

// MinRingSize is the smallest closed ring: a triangle plus the closing position.
const MinRingSize = 4

// rectPointsRejected is the point count RectFromPoints refuses.
const rectPointsRejected = 5

// Polygon is a single-ring polygon. Holes are not modeled.
type Polygon struct {
	ring       Ring
	properties Properties
}

// NewPolygon creates a polygon from its outer ring. The ring must hold at
// least MinRingSize positions and its first and last positions must match.
// The polygon keeps its own copy of the ring.
func NewPolygon(ring Ring, props Properties) (Polygon, error) {
	if len(ring) < MinRingSize {
		return Polygon{}, &ArgumentError{Msg: "polygon ring needs at least 4 positions"}
	}
	if ring[0] != ring[len(ring)-1] {
		return Polygon{}, &ArgumentError{Msg: "polygon ring must be closed"}
	}

	owned := make(Ring, len(ring))
	copy(owned, ring)

	return Polygon{
		ring:       owned,
		properties: props.clone(),
	}, nil
}

// RectFromPoints builds a rectangular polygon around the extent of points,
// tagged with id. The resulting ring is
//
//	[minLng,minLat] [minLng,maxLat] [maxLng,maxLat] [minLng,maxLat] [minLng,minLat]
//
// with [minLng,maxLat] repeated in place of [maxLng,minLat], and exactly five
// input points are rejected. Both behaviors are kept until clarified.
func RectFromPoints(id string, points []Point) (Polygon, error) {
	if len(points) == rectPointsRejected {
		return Polygon{}, &ArgumentError{
			Msg: "rectangular polygon has exactly 5 points - https://tools.ietf.org/html/rfc7946#section-3.1.6",
		}
	}

	ext, err := ExtentOf(points)
	if err != nil {
		return Polygon{}, err
	}

	minLng, minLat, maxLng, maxLat := ext.MinLng(), ext.MinLat(), ext.MaxLng(), ext.MaxLat()
	ring := Ring{
		{minLng, minLat},
		{minLng, maxLat},
		{maxLng, maxLat},
		{minLng, maxLat},
		{minLng, minLat},
	}

	return NewPolygon(ring, Properties{"id": id})
}

// Ring returns a copy of the outer ring.
func (p Polygon) Ring() Ring {
	out := make(Ring, len(p.ring))
	copy(out, p.ring)
	return out
}

// Properties returns the polygon's own properties map.
func (p Polygon) Properties() Properties {
	return p.properties
}

// Segments returns the boundary edges; edge i joins ring[i] to ring[i+1] and
// the last one wraps back to ring[0].
func (p Polygon) Segments() []LineString {
	n := len(p.ring)
	segments := make([]LineString, 0, n)
	for i := range p.ring {
		segments = append(segments, LineString{
			coordinates: []Position{p.ring[i], p.ring[(i+1)%n]},
			properties:  Properties{},
		})
	}

	return segments
}

// ContainsPoint reports whether point lies inside the polygon using the
// even-odd ray casting rule. Points exactly on the boundary get whatever the
// edge test yields.
func (p Polygon) ContainsPoint(point Point) bool {
	crossings := 0
	for _, segment := range p.Segments() {
		if segment.IsEastOf(point) {
			crossings++
		}
	}

	return crossings%2 != 0
}

// Extent returns the bounding box of the ring.
func (p Polygon) Extent() (Extent, error) {
	return ExtentOfPositions(p.ring)
}

// Feature returns the GeoJSON envelope of the polygon.
func (p Polygon) Feature() Feature {
	return NewFeature(PolygonType, []Ring{p.Ring()}, p.properties)
}

// MarshalJSON encodes the polygon as a GeoJSON feature.
func (p Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Feature())
}

// MarshalYAML encodes the polygon as a GeoJSON feature.
func (p Polygon) MarshalYAML() (any, error) {
	return p.Feature(), nil
}
