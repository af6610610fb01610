// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/waseigo/identicon-svg/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Components
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Components demonstrates decomposing a 5×5 occupancy grid
// into maximal 4-connected foreground components.
// Scenario:
//
//   - Two blobs plus one lone cell; cells touching only at a corner
//     (the (2,2) blob vs the (1,1) blob) stay separate.
//   - Components are emitted in row-major seed order.
func ExampleGrid_Components() {
	g, _ := grid.FromCells(5, []grid.Cell{
		{Col: 1, Row: 0}, {Col: 2, Row: 0},
		{Col: 0, Row: 1}, {Col: 1, Row: 1},
		{Col: 2, Row: 2}, {Col: 3, Row: 2},
		{Col: 3, Row: 3},
		{Col: 0, Row: 4},
	})

	comps := g.Components(grid.Foreground)
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, c := range comp {
			fmt.Printf(" (%d,%d)", c.Col, c.Row)
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (1,0) (2,0) (1,1) (0,1)
	// component 1: (2,2) (3,2) (3,3)
	// component 2: (0,4)
}
