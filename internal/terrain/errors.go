package terrain

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is smaller than 2x2.
	ErrInvalidDimensions = errors.New("terrain: grid must be at least 2x2")
	// ErrInvalidSpacing is returned for a non-positive grid spacing.
	ErrInvalidSpacing = errors.New("terrain: spacing must be positive")
	// ErrInvalidParameter covers other non-positive geometric inputs (water width, ...).
	ErrInvalidParameter = errors.New("terrain: invalid parameter")
	// ErrDegenerateTriangle is returned when a barycentric solve hits a zero determinant.
	ErrDegenerateTriangle = errors.New("terrain: degenerate triangle")
	// ErrOutOfBounds is returned when a position maps to a cell outside the grid.
	ErrOutOfBounds = errors.New("terrain: position outside grid")
	// ErrCoincidentEndpoints is returned when a direction is needed between two equal points.
	ErrCoincidentEndpoints = errors.New("terrain: coincident endpoints")
	// ErrPlacementExhausted is returned when a bounded placement or path loop runs out of attempts.
	ErrPlacementExhausted = errors.New("terrain: attempts exhausted")
	// ErrNoVariants is returned when a decoration set with a positive count has no variants.
	ErrNoVariants = errors.New("terrain: decoration set has no variants")
	// ErrLayerMismatch is returned when two layers that must share topology differ in size.
	ErrLayerMismatch = errors.New("terrain: layer size mismatch")
)
