// File: outline/trace_test.go
package outline

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waseigo/identicon-svg/grid"
)

// solid3x3 is a full 3×3 block anchored at the origin.
var solid3x3 = []grid.Cell{
	{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0},
	{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1},
	{Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2},
}

// donut3x3 is the 3×3 block with its center removed: one hull, one hole.
var donut3x3 = []grid.Cell{
	{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0},
	{Col: 0, Row: 1}, {Col: 2, Row: 1},
	{Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2},
}

// TestTrace_SingleCell pins the exact ring for one cell: seeded from the
// lexicographically smallest edge, walking down the left side first.
func TestTrace_SingleCell(t *testing.T) {
	edges, err := Boundary([]grid.Cell{{Col: 4, Row: 4}})
	require.NoError(t, err)
	loops, err := Trace(edges)
	require.NoError(t, err)

	require.Len(t, loops, 1)
	assert.Equal(t, Loop{{4, 4}, {4, 5}, {5, 5}, {5, 4}}, loops[0])
}

// TestTrace_Solid3x3 checks the area round-trip property: a solid 3×3
// block traces to a single 12-edge loop enclosing area 9 (shoelace).
func TestTrace_Solid3x3(t *testing.T) {
	edges, err := Boundary(solid3x3)
	require.NoError(t, err)
	loops, err := Trace(edges)
	require.NoError(t, err)

	require.Len(t, loops, 1)
	assert.Len(t, loops[0], 12, "perimeter edge count")
	area := loops[0].Area()
	if area < 0 {
		area = -area
	}
	assert.Equal(t, 9, area, "enclosed area")
}

// TestTrace_Donut expects exactly two loops before bridging: the 12-edge
// hull and the 4-edge hole, in seed order.
func TestTrace_Donut(t *testing.T) {
	edges, err := Boundary(donut3x3)
	require.NoError(t, err)
	loops, err := Trace(edges)
	require.NoError(t, err)

	require.Len(t, loops, 2)
	assert.Len(t, loops[0], 12, "hull edge count")
	assert.Len(t, loops[1], 4, "hole edge count")
	assert.Equal(t, Loop{{1, 1}, {1, 2}, {2, 2}, {2, 1}}, loops[1])
}

// TestTrace_OrderIndependence shuffles the edge enumeration and expects
// identical loops: seeding and walking are canonicalized internally.
func TestTrace_OrderIndependence(t *testing.T) {
	edges, err := Boundary(donut3x3)
	require.NoError(t, err)
	want, err := Trace(edges)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]Edge, len(edges))
		copy(shuffled, edges)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got, err := Trace(shuffled)
		require.NoError(t, err, "trial %d", trial)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("trial %d: loops differ under permuted edges:\n%s", trial, diff)
		}
	}
}

// TestTrace_PinchedComponent feeds a C-shaped component whose boundary
// pinches to degree 4 at vertex (1,1): more than one continuation
// candidate is a fatal invariant violation, not a tie to break.
//
// Cells (1 = member):
//
//	. 1 1
//	1 . 1
//	1 1 1
func TestTrace_PinchedComponent(t *testing.T) {
	pinched := []grid.Cell{
		{Col: 1, Row: 0}, {Col: 2, Row: 0},
		{Col: 0, Row: 1}, {Col: 2, Row: 1},
		{Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2},
	}
	edges, err := Boundary(pinched)
	require.NoError(t, err)

	_, err = Trace(edges)
	require.ErrorIs(t, err, ErrVertexDegree)
	assert.Contains(t, err.Error(), "(1,1)", "error should name the pinch vertex")
}

// TestTrace_OpenChain feeds three edges of a square: the walk runs out of
// continuations before closing, which must surface as ErrVertexDegree.
func TestTrace_OpenChain(t *testing.T) {
	edges := []Edge{
		NewEdge(Point{0, 0}, Point{0, 1}),
		NewEdge(Point{0, 1}, Point{1, 1}),
		NewEdge(Point{1, 0}, Point{1, 1}),
	}
	_, err := Trace(edges)
	require.ErrorIs(t, err, ErrVertexDegree)
}

// TestTrace_Hook verifies the OnLoopClosed observer sees every loop once,
// in emission order, without altering the result.
func TestTrace_Hook(t *testing.T) {
	edges, err := Boundary(donut3x3)
	require.NoError(t, err)

	var seen []int
	loops, err := Trace(edges, WithOnLoopClosed(func(i int, l Loop) {
		seen = append(seen, len(l))
		_ = i
	}))
	require.NoError(t, err)
	require.Len(t, loops, 2)
	assert.Equal(t, []int{12, 4}, seen)
}

// TestTrace_Empty documents that an empty edge set yields no loops.
func TestTrace_Empty(t *testing.T) {
	loops, err := Trace(nil)
	require.NoError(t, err)
	assert.Nil(t, loops)
}
