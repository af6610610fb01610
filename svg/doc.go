// Package svg serializes layer outlines into an SVG document.
//
// What:
//
//   - PathData scales closed lattice rings into a single SVG path "d"
//     string (move-to, line-to, close per ring).
//   - Render assembles the full document over github.com/ajstarks/svgo:
//     square viewport of gridSize·cell + 2·padding, one <path> per layer,
//     nonzero fill rule, optional opacity.
//
// Why:
//
//   - One path per layer keeps the output minimal: every component ring -
//     hull, holes, and bridges already merged upstream - concatenates into
//     the same "d" attribute.
//
// Determinism: the document is a pure function of its inputs; rings are
// emitted in the order given, coordinates are integers, and floating-point
// opacity is formatted with a fixed shortest representation.
//
// Errors:
//
//   - ErrCellSize: cell size below 1.
//   - ErrPadding: negative padding.
//   - ErrOpacityRange: opacity outside [0,1].
package svg
