package outline

import "errors"

// Sentinel errors for outline extraction. These signal defects in upstream
// stages (malformed component geometry), not recoverable conditions: callers
// should abort the affected component and surface the fault.
var (
	// ErrEdgeMultiplicity indicates a raw unit edge occurred more than twice
	// within one component during boundary extraction.
	ErrEdgeMultiplicity = errors.New("outline: edge multiplicity exceeds 2")
	// ErrVertexDegree indicates the degree-2 invariant failed during tracing:
	// zero or several continuation candidates at the terminal vertex.
	ErrVertexDegree = errors.New("outline: boundary vertex degree violation")
	// ErrBridgeConstruction indicates no valid parallel, axis-aligned edge
	// pair could be found to join two loops.
	ErrBridgeConstruction = errors.New("outline: no valid bridge between loops")
	// ErrNoLoops indicates Bridge was called with an empty loop list.
	ErrNoLoops = errors.New("outline: no loops to bridge")
)
