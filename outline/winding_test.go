// File: outline/winding_test.go
package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// unitSquare is the canonical inclusion fixture.
var unitSquare = []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// TestWindingNumber_UnitSquare covers the contract cases: center inside,
// far point outside, and the documented on-edge classification.
func TestWindingNumber_UnitSquare(t *testing.T) {
	assert.NotZero(t, WindingNumber(PointF{0.5, 0.5}, unitSquare), "(0.5,0.5) inside")
	assert.Zero(t, WindingNumber(PointF{2, 2}, unitSquare), "(2,2) outside")

	// The rule is half-open: an edge whose interior lies at greater Y or
	// greater X is inside, its opposite outside. Reproducible, not float
	// happenstance.
	assert.NotZero(t, WindingNumber(PointF{0.5, 0}, unitSquare), "(0.5,0) on the min-Y edge: inside")
	assert.Zero(t, WindingNumber(PointF{0.5, 1}, unitSquare), "(0.5,1) on the max-Y edge: outside")
	assert.NotZero(t, WindingNumber(PointF{0, 0.5}, unitSquare), "(0,0.5) on the min-X edge: inside")
	assert.Zero(t, WindingNumber(PointF{1, 0.5}, unitSquare), "(1,0.5) on the max-X edge: outside")
}

// TestWindingNumber_OnEdgeConsistency re-runs the documented on-edge case
// many times: a single fixed classification, never flapping.
func TestWindingNumber_OnEdgeConsistency(t *testing.T) {
	for i := 0; i < 100; i++ {
		if WindingNumber(PointF{0.5, 0}, unitSquare) == 0 {
			t.Fatal("(0.5,0) classification changed between runs")
		}
	}
}

// TestWindingNumber_AutoClose accepts an explicitly closed ring (duplicate
// final vertex) and classifies identically.
func TestWindingNumber_AutoClose(t *testing.T) {
	closed := append(append([]Point{}, unitSquare...), unitSquare[0])
	assert.Equal(t,
		WindingNumber(PointF{0.5, 0.5}, unitSquare),
		WindingNumber(PointF{0.5, 0.5}, closed))
}

// TestWindingNumber_Orientation checks the sign flips with traversal
// direction while inclusion does not.
func TestWindingNumber_Orientation(t *testing.T) {
	reversed := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	p := PointF{0.5, 0.5}
	assert.Equal(t, -WindingNumber(p, unitSquare), WindingNumber(p, reversed))
	assert.True(t, Contains(p, unitSquare))
	assert.True(t, Contains(p, reversed))
}

// TestWindingNumber_Degenerate: fewer than three distinct vertices never
// contain anything.
func TestWindingNumber_Degenerate(t *testing.T) {
	assert.Zero(t, WindingNumber(PointF{0, 0}, nil))
	assert.Zero(t, WindingNumber(PointF{0.5, 0.5}, []Point{{0, 0}, {1, 1}}))
}

// TestContains_DonutNesting uses the inclusion oracle the way the
// pipeline's validators do: the traced hole ring lies strictly inside the
// hull ring.
func TestContains_DonutNesting(t *testing.T) {
	edges, err := Boundary(donut3x3)
	assert.NoError(t, err)
	loops, err := Trace(edges)
	assert.NoError(t, err)

	hull, holes, _ := SplitHullHoles(loops)
	for _, hole := range holes {
		for _, v := range hole {
			assert.True(t, Contains(PointF{float64(v.X) + 0.25, float64(v.Y) + 0.25}, hull),
				"hole vertex (%d,%d) should sit inside the hull", v.X, v.Y)
		}
	}
}
