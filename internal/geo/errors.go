package geo

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is against the typed errors below.
var (
	ErrConstruction = errors.New("geo: invalid feature construction")
	ErrArgument     = errors.New("geo: invalid argument")
	ErrValidation   = errors.New("geo: invalid coordinates")
)

// ConstructionError is returned when a Point cannot be built from the given coordinates.
type ConstructionError struct {
	Lng any
	Lat any
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("new point requires two valid numbers as coordinates lng/lat, got [%v, %v]", e.Lng, e.Lat)
}

func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

// ArgumentError is returned when an operation receives an unusable argument.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

func (e *ArgumentError) Is(target error) bool { return target == ErrArgument }

// ValidationError carries the [lng, lat] positions that failed validation.
type ValidationError struct {
	Points []Position
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("some points have invalid coordinates: %d invalid", len(e.Points))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
