// Package grid provides the occupancy board used by the pack solver:
// a rectangular bit-packed boolean matrix with the placement primitives
// a backtracking search over polyomino placements needs.
//
// What:
//
//   - Grid wraps a Width×Height occupancy matrix, one bit per cell.
//   - CanPlace / Place / Unplace test and mutate a shape placement at an
//     integer (row, col) anchor.
//   - Frontier and FirstEmpty enumerate candidate anchor cells.
//   - Snapshot serializes the exact occupancy state into an immutable,
//     equality-comparable key suitable for exact memoization.
//
// Why:
//
//   - Packing solvers mutate and roll back the same board millions of
//     times; bit-packing keeps state tiny and snapshots cheap.
//   - The frontier (empty cells 4-adjacent to occupied ones) is the
//     placement-order heuristic used by the search.
//
// Complexity:
//
//   - CanPlace/Place/Unplace: O(k) for a k-cell shape.
//   - Frontier, FirstEmpty:   O(W×H).
//   - Snapshot:               O(W×H / 64).
//
// Errors:
//
//   - ErrNonPositiveDims: a dimension was zero or negative.
//
// Contract: Place must only follow a true CanPlace for the same shape and
// anchor, and on every abandoned search branch each Place is paired with
// an Unplace of the same shape and anchor before the branch returns.
// Violating either corrupts the occupancy count for all later calls.
package grid
