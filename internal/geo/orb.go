package geo

import (
	"github.com/paulmach/orb"
)

// Orb returns the point as an orb.Point.
func (p Point) Orb() orb.Point {
	return orb.Point(p.coordinates)
}

// Orb returns the polygon as a single-ring orb.Polygon.
func (p Polygon) Orb() orb.Polygon {
	ring := make(orb.Ring, len(p.ring))
	for i, pos := range p.ring {
		ring[i] = orb.Point(pos)
	}

	return orb.Polygon{ring}
}

// PolygonFromOrb converts an orb geometry into a Polygon. Polygons keep their
// outer ring, multi-polygons their first polygon's outer ring, and bounds
// become their rectangle. Open rings are closed.
func PolygonFromOrb(g orb.Geometry, props Properties) (Polygon, error) {
	var outer orb.Ring
	switch v := g.(type) {
	case orb.Polygon:
		if len(v) == 0 {
			return Polygon{}, &ArgumentError{Msg: "polygon has no rings"}
		}
		outer = v[0]
	case orb.MultiPolygon:
		if len(v) == 0 || len(v[0]) == 0 {
			return Polygon{}, &ArgumentError{Msg: "multipolygon has no rings"}
		}
		outer = v[0][0]
	case orb.Bound:
		outer = v.ToRing()
	case nil:
		return Polygon{}, &ArgumentError{Msg: "geometry is empty"}
	default:
		return Polygon{}, &ArgumentError{Msg: "geometry type " + g.GeoJSONType() + " is not a polygon"}
	}

	ring := make(Ring, 0, len(outer)+1)
	for _, pt := range outer {
		ring = append(ring, Position(pt))
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}

	return NewPolygon(ring, props)
}
