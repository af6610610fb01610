// Package outline defines the geometric value types shared by boundary
// extraction, loop tracing, and bridging, plus the observer options.
package outline

// Point is an integer lattice vertex. X grows rightward (columns),
// Y grows downward (rows), matching SVG's coordinate convention.
type Point struct {
	X, Y int
}

// PointF is a real-valued query point for inclusion testing.
type PointF struct {
	X, Y float64
}

// Edge is an undirected, axis-aligned, unit-length lattice edge in
// canonical form: A precedes B in lexicographic (X, then Y) order.
// Always construct through NewEdge so equality and map keys behave.
type Edge struct {
	A, B Point
}

// NewEdge returns the canonical Edge over the two endpoints.
func NewEdge(p, q Point) Edge {
	if q.X < p.X || (q.X == p.X && q.Y < p.Y) {
		p, q = q, p
	}

	return Edge{A: p, B: q}
}

// Horizontal reports whether the edge runs along the X axis.
func (e Edge) Horizontal() bool { return e.A.Y == e.B.Y }

// midpoint2 returns the edge midpoint in doubled coordinates
// (A+B), keeping distance arithmetic exact on integers.
func (e Edge) midpoint2() Point {
	return Point{X: e.A.X + e.B.X, Y: e.A.Y + e.B.Y}
}

// less orders edges lexicographically on (A.X, A.Y, B.X, B.Y).
// This is the single ordering all deterministic tie-breaks reduce to.
func (e Edge) less(o Edge) bool {
	if e.A != o.A {
		return e.A.X < o.A.X || (e.A.X == o.A.X && e.A.Y < o.A.Y)
	}

	return e.B.X < o.B.X || (e.B.X == o.B.X && e.B.Y < o.B.Y)
}

// Loop is a directed, simple, closed ring of lattice vertices. The edge i
// runs ring[i] → ring[(i+1) mod len(ring)]; closure is implicit, so the
// vertex count equals the edge count.
type Loop []Point

// Path is a single continuous closed ring produced by bridging a hull loop
// with its hole loops; it may touch itself along zero-width corridors but
// never crosses itself. Same implicit-closure convention as Loop.
type Path []Point
