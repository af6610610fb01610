package grid

// neighborOffsets are the 4-directional (edge-sharing) neighbor deltas.
// Corner-touching cells are deliberately NOT adjacent: two cells that meet
// only diagonally belong to different components.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Components partitions the given layer's cells into maximal 4-connected
// components via breadth-first search over the cell adjacency graph.
//
// Determinism: components are emitted in order of their row-major minimal
// (seed) cell; cells within a component appear in BFS discovery order from
// that seed. The resulting partition is independent of any input
// enumeration order, and re-grouping a single component is a no-op.
//
// An empty layer yields a nil slice; this is valid input, not an error.
//
// Time:   O(N²·4). Memory: O(N²) for visited flags and output.
func (g *Grid) Components(layer Layer) [][]Cell {
	total := g.size * g.size
	seen := make([]bool, total)
	var comps [][]Cell

	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if !g.member(col, row, layer) {
				continue
			}
			seed := g.index(col, row)
			if seen[seed] {
				continue
			}
			// BFS to collect the component rooted at the seed cell.
			queue := []int{seed}
			seen[seed] = true
			var comp []Cell

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ucol, urow := g.Coordinate(u)
				comp = append(comp, Cell{Col: ucol, Row: urow})
				for _, d := range neighborOffsets {
					vcol, vrow := ucol+d[0], urow+d[1]
					if !g.InBounds(vcol, vrow) || !g.member(vcol, vrow, layer) {
						continue
					}
					vi := g.index(vcol, vrow)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
