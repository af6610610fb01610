// Package grid defines core types for the occupancy lattice:
// cells, layers, and the size bounds identicons operate within.
package grid

// Lattice side bounds. Identicon grids are small by construction;
// MaxSize also bounds every derived structure (≤ MaxSize² cells).
const (
	// MinSize is the smallest supported lattice side.
	MinSize = 4
	// MaxSize is the largest supported lattice side.
	MaxSize = 10
	// DefaultSize is the conventional identicon lattice side.
	DefaultSize = 5
)

// Cell identifies a single unit square of the lattice by its
// column (Col) and row (Row), both zero-based.
type Cell struct {
	Col, Row int
}

// Layer selects which cell partition of the grid to operate on.
type Layer int

const (
	// Foreground selects the occupied cells.
	Foreground Layer = iota
	// Background selects the complement: all unoccupied cells.
	Background
)

// String returns the layer name, "foreground" or "background".
func (l Layer) String() string {
	if l == Background {
		return "background"
	}

	return "foreground"
}
