// Package grid models a bounded N×N boolean occupancy lattice and its
// partition into maximal 4-connected cell components.
//
// What:
//
//   - Grid wraps a square boolean lattice (4 ≤ N ≤ 10); immutable once built.
//   - Derives occupancy from a cryptographic digest, mirrored across the
//     vertical axis for identicon symmetry.
//   - Exposes two layers: Foreground (occupied cells) and Background (the
//     complement), each independently decomposable into components.
//   - Components identifies contiguous cell regions under 4-directional
//     adjacency (cells sharing a full unit edge, not merely a corner).
//
// Why:
//
//   - Identicons: each component becomes one closed vector outline.
//   - Determinism: component order and cell order are fixed by row-major
//     position, never by map iteration, so downstream output is reproducible.
//
// Complexity:
//
//   - New/FromCells/FromHash: O(N²) time and memory.
//   - Components: O(N²) time (BFS over 4-neighbor adjacency), O(N²) memory.
//
// Errors:
//
//   - ErrGridSize: lattice side outside [MinSize, MaxSize].
//   - ErrGridShape: occupancy slice length differs from N².
//   - ErrCellBounds: a cell coordinate lies outside the lattice.
//   - ErrHashLength: digest too short to derive a grid.
//
// An empty layer is valid input everywhere: it simply has zero components.
package grid
