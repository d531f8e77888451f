package geo

import (
	"math"
	"reflect"
)

const (
	// MaxLatitude is the absolute latitude bound in degrees.
	MaxLatitude = 90.0
	// MaxLongitude is the absolute longitude bound in degrees.
	MaxLongitude = 180.0
)

// IsValidLatitude reports whether x is a finite latitude within [-90, 90].
func IsValidLatitude(x float64) bool {
	return inBounds(x, MaxLatitude)
}

// IsValidLongitude reports whether x is a finite longitude within [-180, 180].
func IsValidLongitude(x float64) bool {
	return inBounds(x, MaxLongitude)
}

// IsValidLatLng reports whether the pair is a valid [lat, lng] tuple.
func IsValidLatLng(latLng [2]float64) bool {
	return IsValidLatitude(latLng[0]) && IsValidLongitude(latLng[1])
}

// IsValidLngLat reports whether the pair is a valid [lng, lat] tuple.
func IsValidLngLat(lngLat [2]float64) bool {
	return IsValidLatLng([2]float64{lngLat[1], lngLat[0]})
}

// IsValidLatitudeValue is IsValidLatitude over untyped input, as decoded
// from JSON or YAML. Anything that is not a Go number is invalid.
func IsValidLatitudeValue(v any) bool {
	x, ok := Coordinate(v)
	return ok && IsValidLatitude(x)
}

// IsValidLongitudeValue is IsValidLongitude over untyped input.
func IsValidLongitudeValue(v any) bool {
	x, ok := Coordinate(v)
	return ok && IsValidLongitude(x)
}

// Coordinate converts a numeric value of any Go integer or float kind to float64.
// Strings, booleans, nil and every other kind are rejected, even when they
// would parse as a number.
func Coordinate(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

func inBounds(x, limit float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}

	return math.Abs(x) <= limit
}
