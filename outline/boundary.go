package outline

import (
	"fmt"
	"sort"

	"github.com/waseigo/identicon-svg/grid"
)

// Boundary derives the boundary edge set of one component's cells.
//
// Every cell contributes its four unit edges to a multiset. An edge seen
// exactly twice is internal (shared by two adjacent member cells) and
// cancels; an edge seen exactly once is a boundary edge and is kept. An
// edge seen more than twice means overlapping or duplicated geometry
// upstream and is reported as ErrEdgeMultiplicity naming the edge - it is
// never coerced into a plausible shape.
//
// The result is sorted lexicographically so every downstream consumer sees
// a stable, enumeration-order-independent edge sequence. An empty cell set
// yields an empty edge set.
//
// Complexity: O(|cells|) expected + O(E log E) for the sort.
func Boundary(cells []grid.Cell) ([]Edge, error) {
	counts := make(map[Edge]int, len(cells)*4)
	for _, c := range cells {
		// The four corners of cell (Col,Row).
		nw := Point{X: c.Col, Y: c.Row}
		ne := Point{X: c.Col + 1, Y: c.Row}
		sw := Point{X: c.Col, Y: c.Row + 1}
		se := Point{X: c.Col + 1, Y: c.Row + 1}
		for _, e := range [4]Edge{
			NewEdge(nw, ne), // top
			NewEdge(ne, se), // right
			NewEdge(sw, se), // bottom
			NewEdge(nw, sw), // left
		} {
			counts[e]++
		}
	}

	// Drain the multiset in sorted order: deterministic output AND a
	// deterministic first-reported violation.
	all := make([]Edge, 0, len(counts))
	for e := range counts {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].less(all[j]) })

	boundary := make([]Edge, 0, len(all))
	for _, e := range all {
		switch n := counts[e]; {
		case n == 1:
			boundary = append(boundary, e)
		case n == 2:
			// Internal edge: cancels.
		default:
			return nil, fmt.Errorf("%w: edge (%d,%d)-(%d,%d) occurs %d times",
				ErrEdgeMultiplicity, e.A.X, e.A.Y, e.B.X, e.B.Y, n)
		}
	}

	return boundary, nil
}
