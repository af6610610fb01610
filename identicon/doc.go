// Package identicon is the public entry point: text in, SVG identicon out.
//
// What:
//
//   - Generate hashes the input text (SHA-256), derives a mirrored
//     occupancy grid, decomposes each layer into 4-connected components,
//     outlines every component as a single closed path (hull plus bridged
//     holes), derives colors, and holds the result ready for rendering.
//   - Identicon exposes the computed paths and colors, and serializes via
//     SVG(w) or String().
//
// Why:
//
//   - One call, deterministic output: identical text and options always
//     produce byte-identical SVG.
//
// Concurrency:
//
//	Components are independent, so their outline extraction fans out over
//	an errgroup with a configurable limit (WithParallelism). Results land
//	in an index-addressed slice and are assembled strictly in component
//	order, so parallelism never perturbs the output.
//
// Options:
//
//   - WithSize: lattice side, 4..10 (default 5).
//   - WithBackground: palette.BackgroundMode (default transparent).
//   - WithOpacity, WithCellSize, WithPadding: rendering parameters.
//   - WithParallelism: worker cap; 0 means GOMAXPROCS.
//
// Errors:
//
//   - ErrOptionViolation: an invalid option value, reported at Generate.
//   - Wrapped faults from grid, outline, palette, and svg, each naming the
//     layer and component they arose in. An empty layer is not an error:
//     it simply contributes zero paths.
package identicon
