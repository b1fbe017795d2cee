// Package grid defines the occupancy board type and sentinel errors
// for the grid subpackage of github.com/katalvlaran/polypack.
package grid

import "errors"

// ErrNonPositiveDims indicates a grid dimension was zero or negative.
var ErrNonPositiveDims = errors.New("grid: width and height must be positive")

// Grid is a Width×Height boolean occupancy matrix, bit-packed one bit per
// cell in row-major order. A Grid is owned by exactly one search
// invocation; it is not safe for concurrent use.
type Grid struct {
	Width, Height int
	words         []uint64
	occupied      int
}

// frontierOffsets are the 4-directional neighbor offsets (N, S, W, E)
// used by Frontier, precomputed in row-major sweep order.
var frontierOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
