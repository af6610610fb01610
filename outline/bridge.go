package outline

import "fmt"

// Bridge merges a component's loops (one hull, zero or more holes) into a
// single continuous closed path. A lone loop passes through as-is.
//
// The hull (largest bounding extent, see SplitHullHoles) seeds the growing
// "connected" structure; the remaining loops are merged as candidates in
// their original (trace) order. Each merge:
//
//  1. picks the candidate edge at minimal Manhattan distance (between
//     midpoints, computed in doubled integer coordinates) from any parallel
//     connected edge, then symmetrically the connected edge closest to that
//     candidate edge - ties always fall to the earliest ring position, never
//     to container iteration order;
//  2. bridges from the connected edge's far endpoint to the candidate
//     endpoint aligned with it; the two must differ along exactly one axis,
//     otherwise ErrBridgeConstruction is reported;
//  3. rotates the connected ring to begin at the far endpoint and orients
//     the candidate against the connected ring's winding (a hole winds
//     opposite to its hull so the corridor encloses zero area);
//  4. emits connected ring + bridge forward + candidate ring + bridge
//     backward, which becomes the new connected structure.
//
// The result is geometrically hull-minus-holes as a single closed path with
// zero-width self-touching corridors: its edge count equals the sum of all
// loop lengths plus twice the total bridge length.
//
// Complexity: O(L·V²) over ring vertices; V is bounded by the lattice size.
func Bridge(loops []Loop, opts ...Option) (Path, error) {
	o := buildOptions(opts)
	switch len(loops) {
	case 0:
		return nil, ErrNoLoops
	case 1:
		return Path(loops[0]), nil
	}

	hull, holes, _ := SplitHullHoles(loops)
	connected := hull
	for _, candidate := range holes {
		merged, err := merge(connected, candidate, o)
		if err != nil {
			return nil, err
		}
		connected = merged
	}

	return Path(connected), nil
}

// merge joins one candidate ring onto the connected ring via a synthetic
// zero-width bridge and returns the combined ring.
func merge(connected, candidate Loop, o Options) (Loop, error) {
	ci, ki, ok := closestParallelPair(connected, candidate)
	if !ok {
		return nil, fmt.Errorf("%w: no parallel edge pair between rings", ErrBridgeConstruction)
	}

	// Far endpoint of the chosen connected edge: the head of its directed
	// occurrence in the ring. Rotating the ring to begin there makes that
	// edge the ring's closing edge.
	from := connected[(ci+1)%len(connected)]
	to, ok := alignedEndpoint(candidate, ki, from)
	if !ok {
		return nil, fmt.Errorf("%w: endpoints (%d,%d) and edge at ring index %d differ on both axes",
			ErrBridgeConstruction, from.X, from.Y, ki)
	}

	steps := manhattan(from, to)
	o.OnBridge(from, to, steps)

	rotated := connected.rotate((ci + 1) % len(connected))
	oriented := orientAgainst(candidate, connected).rotateTo(to)

	// connected ring + bridge forward + candidate ring + bridge backward;
	// closure back to the rotation origin stays implicit.
	interior := bridgeInterior(from, to)
	out := make(Loop, 0, len(connected)+len(candidate)+2*steps)
	out = append(out, rotated...)
	out = append(out, from)
	out = append(out, interior...)
	out = append(out, oriented...)
	out = append(out, to)
	for i := len(interior) - 1; i >= 0; i-- {
		out = append(out, interior[i])
	}

	return out, nil
}

// closestParallelPair returns the ring indices of the winning
// (connected, candidate) edge pair.
//
// Pass 1 scans candidate edges in ring order and keeps the first one whose
// distance to the nearest parallel connected edge is minimal; pass 2 keeps
// the first connected edge at minimal distance from that candidate edge.
// ok is false when no parallel pair exists at all.
func closestParallelPair(connected, candidate Loop) (ci, ki int, ok bool) {
	ki, _, ok = nearestParallel(candidate, connected)
	if !ok {
		return 0, 0, false
	}
	ke := ringEdge(candidate, ki)
	best := -1
	for i := range connected {
		ce := ringEdge(connected, i)
		if ce.Horizontal() != ke.Horizontal() {
			continue
		}
		if d := edgeDistance(ce, ke); best < 0 || d < best {
			best, ci = d, i
		}
	}

	return ci, ki, true
}

// nearestParallel finds the edge of ring whose minimal distance to any
// parallel edge of other is smallest; first ring position wins ties.
func nearestParallel(ring, other Loop) (idx, dist int, ok bool) {
	best := -1
	for i := range ring {
		e := ringEdge(ring, i)
		for j := range other {
			f := ringEdge(other, j)
			if e.Horizontal() != f.Horizontal() {
				continue
			}
			if d := edgeDistance(e, f); best < 0 || d < best {
				best, idx = d, i
			}
		}
	}
	if best < 0 {
		return 0, 0, false
	}

	return idx, best, true
}

// ringEdge returns the canonical form of ring edge i.
func ringEdge(l Loop, i int) Edge {
	return NewEdge(l[i], l[(i+1)%len(l)])
}

// edgeDistance is the Manhattan distance between edge midpoints, measured
// in doubled coordinates so half-integer midpoints stay exact.
func edgeDistance(e, f Edge) int {
	em, fm := e.midpoint2(), f.midpoint2()

	return abs(em.X-fm.X) + abs(em.Y-fm.Y)
}

// alignedEndpoint picks the endpoint of candidate ring edge ki that differs
// from p along exactly one axis. ok is false when neither endpoint aligns.
func alignedEndpoint(candidate Loop, ki int, p Point) (Point, bool) {
	a := candidate[ki]
	b := candidate[(ki+1)%len(candidate)]
	for _, q := range [2]Point{a, b} {
		if q == p {
			continue
		}
		if q.X == p.X || q.Y == p.Y {
			return q, true
		}
	}

	return Point{}, false
}

// orientAgainst returns candidate wound opposite to ref, reversing when the
// signed areas share a sign.
func orientAgainst(candidate, ref Loop) Loop {
	if (candidate.Area() > 0) == (ref.Area() > 0) {
		return candidate.Reverse()
	}

	return candidate
}

// bridgeInterior returns the unit-step lattice vertices strictly between
// from and to, which differ along exactly one axis.
func bridgeInterior(from, to Point) []Point {
	var out []Point
	step := func(d int) int {
		if d > 0 {
			return 1
		}

		return -1
	}
	switch {
	case from.X == to.X:
		s := step(to.Y - from.Y)
		for y := from.Y + s; y != to.Y; y += s {
			out = append(out, Point{X: from.X, Y: y})
		}
	default:
		s := step(to.X - from.X)
		for x := from.X + s; x != to.X; x += s {
			out = append(out, Point{X: x, Y: from.Y})
		}
	}

	return out
}

// manhattan is the L1 distance between two lattice vertices.
func manhattan(p, q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
