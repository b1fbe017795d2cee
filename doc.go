// Package polypack decides polyomino region-packing questions: given a
// rectangular region and a required multiset of shapes, can every copy be
// placed without overlap or spilling out of bounds?
//
// 🚀 What is polypack?
//
//	A small, focused library that brings together:
//		• Shape primitives: translation-invariant normalization & equality
//		• Orientation enumeration: the dihedral-8 group, deduplicated
//		• A bit-packed occupancy grid with O(k) placement primitives
//		• O(1) admissibility bounds that settle most queries outright
//		• Memoized frontier-ordered backtracking for the borderline rest
//
// ✨ Why choose polypack?
//
//   - Sound by construction – the fast bounds never contradict the search
//   - Deterministic – fixed orientation order, reproducible traces
//   - Pure Go – no cgo, no hidden deps
//   - Concurrent-friendly – one Solver, independent per-query state
//
// Everything is organized under three subpackages:
//
//	polyomino/ — Cell & Shape types, normalization, orientations
//	grid/      — bit-packed occupancy board, place/unplace, frontier
//	pack/      — estimator, backtracking search & the Solver facade
//
// Quick ASCII example:
//
//	##
//	.#
//
// is the L-tromino; two of them pack a 3×2 region exactly.
//
// Dive into each package's example_test.go for runnable walkthroughs.
//
//	go get github.com/katalvlaran/polypack
package polypack
