package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLatitude(t *testing.T) {
	cases := []struct {
		in   float64
		want bool
	}{
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{91, false},
		{90.0000001, false},
		{90, true},
		{-90.0000001, false},
		{-90, true},
		{0, true},
		{math.Copysign(0, -1), true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidLatitude(tc.in), "latitude %v", tc.in)
	}
}

func TestIsValidLongitude(t *testing.T) {
	cases := []struct {
		in   float64
		want bool
	}{
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{181, false},
		{180.0000001, false},
		{180, true},
		{-180.0000001, false},
		{-180, true},
		{0, true},
		{math.Copysign(0, -1), true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidLongitude(tc.in), "longitude %v", tc.in)
	}
}

func TestIsValidValueRejectsNonNumbers(t *testing.T) {
	for _, v := range []any{nil, false, true, "1", "0", []float64{1}, struct{}{}} {
		assert.False(t, IsValidLatitudeValue(v), "latitude %#v", v)
		assert.False(t, IsValidLongitudeValue(v), "longitude %#v", v)
	}

	assert.True(t, IsValidLatitudeValue(45))
	assert.True(t, IsValidLatitudeValue(float32(-12.5)))
	assert.True(t, IsValidLongitudeValue(uint8(180)))
	assert.False(t, IsValidLongitudeValue(int64(181)))
}

func TestIsValidLatLng(t *testing.T) {
	assert.False(t, IsValidLatLng([2]float64{math.NaN(), 0}))
	assert.False(t, IsValidLatLng([2]float64{math.Inf(1), 0}))
	assert.False(t, IsValidLatLng([2]float64{math.Inf(-1), 0}))
	assert.True(t, IsValidLatLng([2]float64{0, 0}))
	assert.False(t, IsValidLatLng([2]float64{0, math.NaN()}))
	assert.True(t, IsValidLatLng([2]float64{90, 180}))
	assert.True(t, IsValidLatLng([2]float64{-90, -180}))
	assert.False(t, IsValidLatLng([2]float64{180, 90}))
}

func TestLngLatIsReorderedLatLng(t *testing.T) {
	values := []float64{0, 45, -45, 90, -90, 90.5, 135, 180, -180, 180.5, math.NaN(), math.Inf(1)}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, IsValidLatLng([2]float64{a, b}), IsValidLngLat([2]float64{b, a}), "pair %v %v", a, b)
		}
	}
}
