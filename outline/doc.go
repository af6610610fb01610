// Package outline converts a component's cell set into closed vector
// outlines: boundary extraction, directed loop tracing, hole bridging,
// and an exact winding-number inclusion test.
//
// What:
//
//   - Boundary derives the unit lattice edges adjacent to exactly one cell
//     of a component (edges shared by two member cells cancel).
//   - Trace orders an undirected boundary edge set into directed, simple,
//     closed loops (every vertex at degree exactly 2).
//   - Bridge merges one hull loop and any number of hole loops into a single
//     continuous closed path via synthetic zero-width connectors, each
//     traversed once forward and once backward.
//   - WindingNumber / Contains classify a query point against a simple
//     polygon by signed crossing count, exact on integer vertices.
//
// Why:
//
//   - Vector output: a blob with holes must be emitted as ONE SVG path.
//   - Validation: the winding test is an independent oracle for nesting,
//     kept off the critical output path.
//
// Determinism:
//
//	All selection points use explicit lexicographic or ring order, never
//	map iteration: Boundary sorts its output, Trace seeds from the smallest
//	unconsumed edge, Bridge breaks distance ties by first ring position.
//	Equal inputs therefore always produce byte-equal outputs.
//
// Complexity (E = boundary edges, L = loops, V = ring vertices):
//
//   - Boundary: O(|cells|) expected (hash multiset) + O(E log E) sort.
//   - Trace:    O(E) with an index-addressed pool and consumed flags.
//   - Bridge:   O(L · V²) pairwise edge scan; V ≤ 4·MaxSize² keeps it tiny.
//   - WindingNumber: O(V).
//
// Errors (all invariant-class faults, never coerced into plausible shapes):
//
//   - ErrEdgeMultiplicity: a raw edge seen more than twice in one component.
//   - ErrVertexDegree: zero or several continuation edges at a loop's
//     terminal vertex while edges remain.
//   - ErrBridgeConstruction: no parallel edge pair with endpoints differing
//     along exactly one axis.
//   - ErrNoLoops: Bridge invoked with an empty loop list.
package outline
