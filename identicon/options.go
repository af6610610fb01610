// Package identicon defines generation options and their validation.
package identicon

import (
	"errors"
	"fmt"

	"github.com/waseigo/identicon-svg/grid"
	"github.com/waseigo/identicon-svg/palette"
)

// ErrOptionViolation is returned by Generate when an invalid Option was
// supplied. The wrapped message names the offending value.
var ErrOptionViolation = errors.New("identicon: invalid option supplied")

// Option configures identicon generation via functional arguments.
// Invalid values are recorded internally and surfaced as
// ErrOptionViolation when Generate is invoked.
type Option func(*GenOptions)

// GenOptions holds all generation and rendering parameters.
type GenOptions struct {
	// Size is the lattice side N, within [grid.MinSize, grid.MaxSize].
	Size int
	// Background selects the background color scheme.
	Background palette.BackgroundMode
	// Opacity applies to both layer paths, within [0,1].
	Opacity float64
	// CellSize is the rendered pixel side of one lattice cell.
	CellSize int
	// Padding is the rendered pixel margin around the lattice.
	Padding int
	// Parallelism caps concurrent component outlining; 0 means GOMAXPROCS.
	Parallelism int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the conventional generation parameters:
// 5×5 grid, transparent background, opaque 20px cells, no padding,
// GOMAXPROCS parallelism.
func DefaultOptions() GenOptions {
	return GenOptions{
		Size:        grid.DefaultSize,
		Background:  palette.BackgroundTransparent,
		Opacity:     1.0,
		CellSize:    20,
		Padding:     0,
		Parallelism: 0,
		err:         nil,
	}
}

// WithSize sets the lattice side N.
//
//	grid.MinSize ≤ n ≤ grid.MaxSize: accepted
//	anything else: invalid option → ErrOptionViolation
func WithSize(n int) Option {
	return func(o *GenOptions) {
		if n < grid.MinSize || n > grid.MaxSize {
			o.err = fmt.Errorf("%w: size %d outside [%d,%d]", ErrOptionViolation, n, grid.MinSize, grid.MaxSize)
			return
		}
		o.Size = n
	}
}

// WithBackground sets the background color scheme; values outside the
// closed palette enumeration are invalid.
func WithBackground(m palette.BackgroundMode) Option {
	return func(o *GenOptions) {
		switch m {
		case palette.BackgroundTransparent, palette.BackgroundComplementary, palette.BackgroundSplitComplementary:
			o.Background = m
		default:
			o.err = fmt.Errorf("%w: background mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithOpacity sets the fill opacity of both layers, within [0,1].
func WithOpacity(a float64) Option {
	return func(o *GenOptions) {
		if a < 0 || a > 1 {
			o.err = fmt.Errorf("%w: opacity %v outside [0,1]", ErrOptionViolation, a)
			return
		}
		o.Opacity = a
	}
}

// WithCellSize sets the rendered pixel side of one cell (at least 1).
func WithCellSize(px int) Option {
	return func(o *GenOptions) {
		if px < 1 {
			o.err = fmt.Errorf("%w: cell size %d", ErrOptionViolation, px)
			return
		}
		o.CellSize = px
	}
}

// WithPadding sets the rendered pixel margin (not negative).
func WithPadding(px int) Option {
	return func(o *GenOptions) {
		if px < 0 {
			o.err = fmt.Errorf("%w: padding %d", ErrOptionViolation, px)
			return
		}
		o.Padding = px
	}
}

// WithParallelism caps concurrent component outlining.
//
//	n > 0: at most n components outlined at once
//	n == 0: explicit "use GOMAXPROCS"
//	n < 0: invalid option → ErrOptionViolation
func WithParallelism(n int) Option {
	return func(o *GenOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: parallelism %d", ErrOptionViolation, n)
			return
		}
		o.Parallelism = n
	}
}
