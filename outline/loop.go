package outline

// Edges returns the loop's directed edges in ring order, canonicalized
// for set-style comparison. Complexity: O(V).
func (l Loop) Edges() []Edge {
	out := make([]Edge, 0, len(l))
	for i := range l {
		out = append(out, NewEdge(l[i], l[(i+1)%len(l)]))
	}

	return out
}

// Area returns the signed shoelace area of the ring. For rectilinear
// lattice rings the area is always an exact integer. With Y growing
// downward, a clockwise-on-screen ring has negative area.
// Complexity: O(V).
func (l Loop) Area() int {
	sum := 0
	for i := range l {
		j := (i + 1) % len(l)
		sum += l[i].X*l[j].Y - l[j].X*l[i].Y
	}

	return sum / 2
}

// BoundingBox returns the minimal and maximal corner of the ring's
// axis-aligned bounding box. A nil ring yields two zero points.
// Complexity: O(V).
func (l Loop) BoundingBox() (min, max Point) {
	if len(l) == 0 {
		return Point{}, Point{}
	}
	min, max = l[0], l[0]
	for _, p := range l[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	return min, max
}

// Reverse returns a new ring traversed in the opposite direction,
// anchored at the same first vertex. Complexity: O(V).
func (l Loop) Reverse() Loop {
	if len(l) == 0 {
		return nil
	}
	out := make(Loop, len(l))
	out[0] = l[0]
	for i := 1; i < len(l); i++ {
		out[i] = l[len(l)-i]
	}

	return out
}

// rotate returns a new ring cyclically shifted so that it begins at
// index i, preserving traversal order. Complexity: O(V).
func (l Loop) rotate(i int) Loop {
	out := make(Loop, 0, len(l))
	out = append(out, l[i:]...)
	out = append(out, l[:i]...)

	return out
}

// rotateTo returns the ring rotated to begin at vertex p, or the ring
// unchanged if p does not occur. Complexity: O(V).
func (l Loop) rotateTo(p Point) Loop {
	for i, v := range l {
		if v == p {
			return l.rotate(i)
		}
	}

	return l
}

// SplitHullHoles classifies a component's loops into the single hull
// (maximal enclosing loop) and its holes. The hull is the loop with the
// largest bounding-box area; ties fall to the larger absolute shoelace
// area, then to the earliest loop. Returns the hull, the remaining loops
// in their original relative order, and the hull's index in the input.
// Complexity: O(L·V).
func SplitHullHoles(loops []Loop) (hull Loop, holes []Loop, hullIdx int) {
	if len(loops) == 0 {
		return nil, nil, -1
	}
	hullIdx = 0
	bestBox, bestArea := -1, -1
	for i, l := range loops {
		min, max := l.BoundingBox()
		box := (max.X - min.X) * (max.Y - min.Y)
		area := l.Area()
		if area < 0 {
			area = -area
		}
		if box > bestBox || (box == bestBox && area > bestArea) {
			hullIdx, bestBox, bestArea = i, box, area
		}
	}
	holes = make([]Loop, 0, len(loops)-1)
	for i, l := range loops {
		if i != hullIdx {
			holes = append(holes, l)
		}
	}

	return loops[hullIdx], holes, hullIdx
}
