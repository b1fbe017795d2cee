// Package pack answers region-packing queries: given a rectangular region
// and a required multiset of polyomino shapes, can every required copy be
// placed without overlap or leaving the region?
//
// 🚀 How it decides:
//
//	Each query goes through a two-tier procedure:
//	  1. Estimate — two O(1) admissibility bounds. Required cells above
//	     the region area is a definite no; total items within the
//	     ⌊W/3⌋×⌊H/3⌋ count of disjoint 3×3 blocks is a definite yes.
//	     Both bounds are sound; only the gap between them is "unknown".
//	  2. Exact search — memoized backtracking over the precomputed
//	     orientations of every shape, anchoring candidates on the
//	     frontier (empty cells 4-adjacent to occupied ones) and pruning
//	     states with fewer empty cells than remaining items.
//
// ✨ Key properties:
//
//   - Orientation tables are built once in NewSolver and shared by all
//     queries; each query owns a fresh Grid and memo table, so distinct
//     queries may run concurrently from separate goroutines.
//   - Memoization is exact (bit-packed occupancy snapshot + item index):
//     it caches proven sub-results and never changes an answer.
//   - The search is exhaustive by default; WithMaxNodes bounds it and
//     surfaces ErrBudgetExhausted instead of guessing.
//
// ⚙️ Usage:
//
//	shapes := []polyomino.Shape{square, elbow}
//	s, err := pack.NewSolver(shapes)
//	ok, err := s.Fits(pack.Query{Width: 6, Height: 4, Counts: []int{2, 1}})
//	n, err := s.CountFit(queries)
//
// Complexity:
//
//   - Estimate: O(len(counts)).
//   - Search:   exponential worst case; frontier ordering, area pruning
//     and memoization keep practical instances tractable.
//
// See examples in example_test.go.
package pack
