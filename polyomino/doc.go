// Package polyomino provides the shape primitives of
// github.com/katalvlaran/polypack: translation-invariant normalization of
// cell sets and enumeration of the distinct orientations a shape reaches
// under the symmetry group of the square.
//
// What:
//
//   - Cell is a (Row, Col) unit square; Shape is a normalized, immutable,
//     duplicate-free set of cells anchored at the origin.
//   - Normalize translates any cell set so min row = min col = 0; two
//     translations of the same set always normalize identically, which is
//     the equality relation used everywhere in the module.
//   - Orientations enumerates the up to 8 shapes produced by the dihedral
//     group of order 8 (4 rotations × 2 reflections), deduplicated.
//
// Why:
//
//   - Packing and tiling solvers: a piece may be rotated or flipped before
//     placement, and symmetric pieces must not inflate the search space.
//   - Canonical shape identity: dedup, hashing, and test fixtures.
//
// Complexity:
//
//   - Normalize:     O(n log n) time, O(n) memory (n = cell count).
//   - Orientations:  8 transforms, each O(n log n); output ≤ 8 shapes.
//
// Errors:
//
//   - ErrEmptyShape: a Shape was constructed from zero cells.
package polyomino
