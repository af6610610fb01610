// Package identiconsvg turns short text into deterministic, symmetric
// SVG identicons — from cryptographic hash to closed vector outlines.
//
// 🚀 What is identicon-svg?
//
//	A small, focused library that brings together:
//		• Grid derivation: SHA-256 digest → mirrored N×N occupancy grid
//		• Connectivity: maximal 4-connected cell components per layer
//		• Outlining: boundary extraction, loop tracing, hole bridging
//		• Inclusion: exact integer winding-number point classification
//		• Color: foreground from hash bytes, complementary backgrounds
//		• Serialization: single-path SVG output with viewbox and padding
//
// ✨ Why choose identicon-svg?
//
//   - Deterministic – identical input text always yields byte-identical SVG
//   - Exact – all geometry on the integer lattice, no floating-point drift
//   - Loud on defects – invariant violations surface as descriptive errors,
//     never as silently coerced shapes
//   - Extensible – observer hooks (OnLoopClosed, OnBridge…) for custom logic
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/      — occupancy grid, layers, hash derivation, components
//	outline/   — boundary edges, loop tracing, bridging, winding numbers
//	palette/   — foreground/background color derivation from the digest
//	svg/       — path data assembly and SVG document rendering
//	identicon/ — the orchestrating pipeline and public entry point
//
// Quick ASCII example (5×5, '#' = foreground cell):
//
//	    .###.
//	    #...#
//	    ##.##
//	    #...#
//	    .###.
//
//	mirrored across the vertical axis; each blob becomes one closed path,
//	holes joined to their hull by zero-width bridges.
//
// Dive into the per-package doc.go files for contracts, invariants,
// complexity notes, and the full error taxonomy.
//
//	go get github.com/waseigo/identicon-svg
package identiconsvg
