package geo

import "math"

// Extent is an axis-aligned bounding box: [minLng, minLat, maxLng, maxLat].
type Extent [4]float64

// MinLng returns the western edge.
func (e Extent) MinLng() float64 { return e[0] }

// MinLat returns the southern edge.
func (e Extent) MinLat() float64 { return e[1] }

// MaxLng returns the eastern edge.
func (e Extent) MaxLng() float64 { return e[2] }

// MaxLat returns the northern edge.
func (e Extent) MaxLat() float64 { return e[3] }

// ExtentOf computes the bounding box of points.
// A nil or empty slice fails with *ArgumentError; points with invalid
// coordinates fail with a *ValidationError listing all of them.
func ExtentOf(points []Point) (Extent, error) {
	if points == nil {
		return Extent{}, &ArgumentError{Msg: "parameter points must be a list"}
	}

	positions := make([]Position, len(points))
	for i, p := range points {
		positions[i] = p.Coordinates()
	}

	return ExtentOfPositions(positions)
}

// ExtentOfPositions is ExtentOf over raw [lng, lat] positions.
func ExtentOfPositions(positions []Position) (Extent, error) {
	if len(positions) < 1 {
		return Extent{}, &ArgumentError{Msg: "needs at least 1 point to calculate bounding box"}
	}

	var invalid []Position
	for _, pos := range positions {
		if !IsValidLngLat(pos) {
			invalid = append(invalid, pos)
		}
	}
	if len(invalid) > 0 {
		return Extent{}, &ValidationError{Points: invalid}
	}

	ext := Extent{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, pos := range positions {
		ext[0] = math.Min(ext[0], pos[0])
		ext[1] = math.Min(ext[1], pos[1])
		ext[2] = math.Max(ext[2], pos[0])
		ext[3] = math.Max(ext[3], pos[1])
	}

	return ext, nil
}
