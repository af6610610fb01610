package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrGridSize indicates the requested lattice side is outside [MinSize, MaxSize].
	ErrGridSize = errors.New("grid: size must be between MinSize and MaxSize")
	// ErrGridShape indicates the occupancy slice length differs from size².
	ErrGridShape = errors.New("grid: occupancy length must equal size*size")
	// ErrCellBounds indicates a cell coordinate lies outside the lattice.
	ErrCellBounds = errors.New("grid: cell coordinate out of bounds")
	// ErrHashLength indicates the digest is too short to derive a grid.
	ErrHashLength = errors.New("grid: digest too short")
)
