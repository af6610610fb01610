package outline

import (
	"fmt"
	"sort"
)

// tracer holds the index-addressed edge pool and consumption state for one
// Trace call. Edges are never deleted from slices: consumption is a flag
// flip, and incident lookup goes through a prebuilt vertex index.
type tracer struct {
	edges    []Edge
	consumed []bool
	incident map[Point][]int // vertex -> indices into edges
	left     int
}

// Trace decomposes an undirected boundary edge set into directed, simple,
// closed loops.
//
// Each loop is seeded from the lexicographically smallest unconsumed edge,
// oriented A→B. At every step the unique unconsumed edge incident to the
// terminal vertex is consumed and appended, reversed if stored backward.
// The loop closes when the terminal vertex returns to the seed; remaining
// edges seed further loops until the pool is empty.
//
// Degree-2 enforcement: zero continuation candidates before closure, or
// more than one at any step, abort with ErrVertexDegree naming the vertex.
// Silent tie-breaking would fabricate geometry, so none is attempted.
//
// Loops are emitted in seed order, which is total and input-order
// independent. The OnLoopClosed hook observes each finished ring.
//
// Complexity: O(E log E) for the seed sort, O(E) for the walk.
func Trace(edges []Edge, opts ...Option) ([]Loop, error) {
	o := buildOptions(opts)
	if len(edges) == 0 {
		return nil, nil
	}

	t := newTracer(edges)
	var loops []Loop
	for seed := range t.edges {
		if t.consumed[seed] {
			continue
		}
		ring, err := t.walk(seed)
		if err != nil {
			return nil, err
		}
		o.OnLoopClosed(len(loops), ring)
		loops = append(loops, ring)
	}
	// The walk consumes exactly one edge per appended vertex, so an empty
	// pool here is structural, not checked.

	return loops, nil
}

// newTracer copies and sorts the edge pool and builds the vertex index.
func newTracer(edges []Edge) *tracer {
	pool := make([]Edge, len(edges))
	copy(pool, edges)
	sort.Slice(pool, func(i, j int) bool { return pool[i].less(pool[j]) })

	incident := make(map[Point][]int, len(pool))
	for i, e := range pool {
		incident[e.A] = append(incident[e.A], i)
		incident[e.B] = append(incident[e.B], i)
	}

	return &tracer{
		edges:    pool,
		consumed: make([]bool, len(pool)),
		incident: incident,
		left:     len(pool),
	}
}

// walk traces one closed loop starting from the seed edge index.
func (t *tracer) walk(seed int) (Loop, error) {
	start := t.edges[seed].A
	cur := t.edges[seed].B
	t.take(seed)
	ring := Loop{start}

	for cur != start {
		ring = append(ring, cur)
		next, err := t.sole(cur)
		if err != nil {
			return nil, err
		}
		t.take(next)
		// Orient the stored edge so it departs from cur.
		if e := t.edges[next]; e.A == cur {
			cur = e.B
		} else {
			cur = e.A
		}
	}

	return ring, nil
}

// sole returns the single unconsumed edge index incident to v, or
// ErrVertexDegree if zero or several exist. The incident lists are built
// in sorted edge order, so "the" candidate is well defined even in the
// error message.
func (t *tracer) sole(v Point) (int, error) {
	found, n := -1, 0
	for _, i := range t.incident[v] {
		if t.consumed[i] {
			continue
		}
		if n == 0 {
			found = i
		}
		n++
	}
	if n != 1 {
		return -1, fmt.Errorf("%w: vertex (%d,%d) has %d continuation edges (%d unconsumed in pool)",
			ErrVertexDegree, v.X, v.Y, n, t.left)
	}

	return found, nil
}

// take marks edge i consumed.
func (t *tracer) take(i int) {
	t.consumed[i] = true
	t.left--
}
