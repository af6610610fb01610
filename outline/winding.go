package outline

// WindingNumber computes the signed crossing count of a simple polygon
// around the query point p. The ring is auto-closed: a duplicated final
// vertex is tolerated and ignored.
//
// Crossing rule (half-open, per edge V→W):
//
//	upward   (V.Y ≤ p.Y < W.Y) with p strictly left of VW  → +1
//	downward (W.Y ≤ p.Y < V.Y) with p strictly right of VW → -1
//
// Zero means outside, nonzero inside. The rule is exact for integer ring
// vertices and any query representable without rounding (halves included).
//
// On-boundary behavior is fixed, not float happenstance: the rule is
// half-open. A query on a horizontal edge whose interior lies at greater Y,
// or on a vertical edge whose interior lies at greater X, classifies
// inside; a query on the opposite sides classifies outside. For the unit
// square [(0,0),(1,0),(1,1),(0,1)] the point (0.5,0) is therefore inside.
// Collinear points never contribute a crossing.
//
// Complexity: O(V).
func WindingNumber(p PointF, ring []Point) int {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n-- // explicit closure supplied; drop the duplicate
	}
	if n < 3 {
		return 0
	}

	wn := 0
	for i := 0; i < n; i++ {
		v := ring[i]
		w := ring[(i+1)%n]
		switch {
		case float64(v.Y) <= p.Y:
			if float64(w.Y) > p.Y && isLeft(v, w, p) > 0 {
				wn++
			}
		default:
			if float64(w.Y) <= p.Y && isLeft(v, w, p) < 0 {
				wn--
			}
		}
	}

	return wn
}

// Contains reports whether p lies inside the simple polygon described by
// ring, using WindingNumber. Complexity: O(V).
func Contains(p PointF, ring []Point) bool {
	return WindingNumber(p, ring) != 0
}

// isLeft returns >0 when p is strictly left of the directed line v→w,
// <0 when strictly right, and 0 when collinear.
func isLeft(v, w Point, p PointF) float64 {
	return float64(w.X-v.X)*(p.Y-float64(v.Y)) - (p.X-float64(v.X))*float64(w.Y-v.Y)
}
