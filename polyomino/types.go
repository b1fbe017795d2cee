// Package polyomino defines core types and sentinel errors
// for the polyomino subpackage of github.com/katalvlaran/polypack.
package polyomino

import "errors"

// ErrEmptyShape indicates a shape was constructed from zero cells.
var ErrEmptyShape = errors.New("polyomino: shape must contain at least one cell")

// Cell is one unit square, addressed as (Row, Col) with rows growing
// downward and columns growing rightward, matrix-index style.
type Cell struct {
	Row, Col int
}

// Shape is a normalized polyomino: a non-empty, duplicate-free set of
// cells translated so the minimum row and minimum column are both zero,
// held in row-major order. Shapes are immutable once constructed; every
// transform returns a fresh, renormalized Shape.
type Shape struct {
	cells []Cell
}
