package processor

import (
	"github.com/woozymasta/geofence/internal/geo"

	"github.com/rs/zerolog/log"
)

// AreasProperty is the property TagPoints writes the containing area names to.
const AreasProperty = "areas"

// TagPoints returns a collection of the point features of fc, each with the
// names of the areas containing it stored under AreasProperty. Features that
// are not valid points are logged and dropped; their count is returned.
func TagPoints(areas []Area, fc geo.FeatureCollection) (geo.FeatureCollection, int) {
	out := geo.NewFeatureCollection()
	skipped := 0

	for i, f := range fc.Features {
		point, err := f.Point()
		if err != nil {
			log.Warn().
				Err(err).
				Int("feature", i).
				Msg("Skipping feature: not a valid point")
			skipped++
			continue
		}

		names := []string{}
		for _, area := range areas {
			if area.Polygon.ContainsPoint(point) {
				names = append(names, area.Name)
			}
		}

		point.Properties()[AreasProperty] = names
		out.Features = append(out.Features, point.Feature())
	}

	return out, skipped
}
