package grid

import "fmt"

// Grid is an immutable N×N boolean occupancy lattice.
// occupied is stored row-major: index = row*size + col.
type Grid struct {
	size     int
	occupied []bool
}

// New constructs a Grid from a row-major occupancy slice of length size².
// The slice is deep-copied to ensure immutability.
// Returns ErrGridSize if size is outside [MinSize, MaxSize],
// ErrGridShape if len(occupied) != size*size.
// Complexity: O(N²) time and memory.
func New(size int, occupied []bool) (*Grid, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, size)
	}
	if len(occupied) != size*size {
		return nil, fmt.Errorf("%w: got %d cells for size %d", ErrGridShape, len(occupied), size)
	}
	// Deep copy to prevent external mutation.
	cells := make([]bool, len(occupied))
	copy(cells, occupied)

	return &Grid{size: size, occupied: cells}, nil
}

// FromCells constructs a Grid of the given size with exactly the listed
// cells occupied. Duplicate cells are tolerated (idempotent set semantics).
// Returns ErrGridSize for an invalid size, ErrCellBounds for any cell
// outside the lattice.
// Complexity: O(N² + |cells|).
func FromCells(size int, cells []Cell) (*Grid, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, size)
	}
	occupied := make([]bool, size*size)
	for _, c := range cells {
		if c.Col < 0 || c.Col >= size || c.Row < 0 || c.Row >= size {
			return nil, fmt.Errorf("%w: (%d,%d) on size %d", ErrCellBounds, c.Col, c.Row, size)
		}
		occupied[c.Row*size+c.Col] = true
	}

	return &Grid{size: size, occupied: occupied}, nil
}

// Size returns the lattice side N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (col,row) lies within the lattice.
// Complexity: O(1).
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.size && row >= 0 && row < g.size
}

// Occupied reports whether the cell at (col,row) belongs to the foreground.
// Out-of-bounds coordinates report false.
// Complexity: O(1).
func (g *Grid) Occupied(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}

	return g.occupied[row*g.size+col]
}

// index maps (col,row) to a row-major index: row*size + col.
func (g *Grid) index(col, row int) int {
	return row*g.size + col
}

// Coordinate converts a row-major index back to (col,row).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (col, row int) {
	return idx % g.size, idx / g.size
}

// member reports whether (col,row) belongs to the given layer.
func (g *Grid) member(col, row int, layer Layer) bool {
	occ := g.occupied[g.index(col, row)]
	if layer == Background {
		return !occ
	}

	return occ
}

// Cells returns the cells of the given layer in row-major order.
// Complexity: O(N²).
func (g *Grid) Cells(layer Layer) []Cell {
	var out []Cell
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.member(col, row, layer) {
				out = append(out, Cell{Col: col, Row: row})
			}
		}
	}

	return out
}
