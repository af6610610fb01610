// Package svg defines rendering options and sentinel errors for
// SVG document assembly.
package svg

import "errors"

// Sentinel errors for document rendering.
var (
	// ErrCellSize indicates a cell size below one pixel.
	ErrCellSize = errors.New("svg: cell size must be at least 1")
	// ErrPadding indicates a negative padding.
	ErrPadding = errors.New("svg: padding must not be negative")
	// ErrOpacityRange indicates an opacity outside [0,1].
	ErrOpacityRange = errors.New("svg: opacity must be within [0,1]")
)

// Options holds the viewport and styling parameters of a rendered document.
type Options struct {
	// CellSize is the pixel side of one lattice cell.
	CellSize int
	// Padding is the pixel margin added on every side of the lattice.
	Padding int
	// Opacity applies to both layer paths; 1.0 is fully opaque.
	Opacity float64
}

// DefaultOptions returns the conventional rendering parameters:
// 20px cells, no padding, fully opaque.
func DefaultOptions() Options {
	return Options{
		CellSize: 20,
		Padding:  0,
		Opacity:  1.0,
	}
}

// validate checks option ranges, wrapping the offending value.
func (o Options) validate() error {
	switch {
	case o.CellSize < 1:
		return ErrCellSize
	case o.Padding < 0:
		return ErrPadding
	case o.Opacity < 0 || o.Opacity > 1:
		return ErrOpacityRange
	}

	return nil
}
