// Package grid implements the bit-packed occupancy board and the
// placement primitives (CanPlace, Place, Unplace) plus the candidate-cell
// enumerations (FirstEmpty, Frontier) used by the pack solver.
package grid

import (
	"encoding/binary"
	"strings"

	"github.com/katalvlaran/polypack/polyomino"
)

const wordBits = 64

// New constructs an empty width×height Grid.
// Returns ErrNonPositiveDims unless both dimensions are positive.
// Complexity: O(W×H / 64) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNonPositiveDims
	}
	cells := width * height

	return &Grid{
		Width:  width,
		Height: height,
		words:  make([]uint64, (cells+wordBits-1)/wordBits),
	}, nil
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// index maps (row, col) to a row-major bit index: row*Width + col.
func (g *Grid) index(row, col int) int {
	return row*g.Width + col
}

// Coordinate converts a row-major bit index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Width, idx % g.Width
}

// Occupied reports whether the cell at (row, col) is marked occupied.
// Complexity: O(1).
func (g *Grid) Occupied(row, col int) bool {
	idx := g.index(row, col)

	return g.words[idx/wordBits]&(1<<(idx%wordBits)) != 0
}

func (g *Grid) set(idx int) {
	g.words[idx/wordBits] |= 1 << (idx % wordBits)
}

func (g *Grid) clear(idx int) {
	g.words[idx/wordBits] &^= 1 << (idx % wordBits)
}

// CanPlace reports whether shape s, anchored at (row, col), maps every
// cell to an in-bounds, currently empty position. Side-effect free.
// Complexity: O(k) for a k-cell shape.
func (g *Grid) CanPlace(s polyomino.Shape, row, col int) bool {
	for i := 0; i < s.Size(); i++ {
		c := s.At(i)
		r, cc := row+c.Row, col+c.Col
		if !g.InBounds(r, cc) || g.Occupied(r, cc) {
			return false
		}
	}

	return true
}

// Place marks every cell of s anchored at (row, col) occupied.
// The caller must have established CanPlace for the same shape and
// anchor; Place does not re-check.
// Complexity: O(k).
func (g *Grid) Place(s polyomino.Shape, row, col int) {
	for i := 0; i < s.Size(); i++ {
		c := s.At(i)
		g.set(g.index(row+c.Row, col+c.Col))
	}
	g.occupied += s.Size()
}

// Unplace reverts a prior Place of the same shape at the same anchor.
// Complexity: O(k).
func (g *Grid) Unplace(s polyomino.Shape, row, col int) {
	for i := 0; i < s.Size(); i++ {
		c := s.At(i)
		g.clear(g.index(row+c.Row, col+c.Col))
	}
	g.occupied -= s.Size()
}

// OccupiedCount returns the number of occupied cells.
// Complexity: O(1).
func (g *Grid) OccupiedCount() int {
	return g.occupied
}

// EmptyCount returns the number of empty cells.
// Complexity: O(1).
func (g *Grid) EmptyCount() int {
	return g.Width*g.Height - g.occupied
}

// FirstEmpty returns the row-major first empty cell, or ok == false when
// the grid is completely occupied.
// Complexity: O(W×H).
func (g *Grid) FirstEmpty() (cell polyomino.Cell, ok bool) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if !g.Occupied(row, col) {
				return polyomino.Cell{Row: row, Col: col}, true
			}
		}
	}

	return polyomino.Cell{}, false
}

// Frontier returns every empty cell that is 4-directionally adjacent to
// at least one occupied cell, in row-major order. On a fully empty grid
// the frontier is nil.
// Complexity: O(W×H).
func (g *Grid) Frontier() []polyomino.Cell {
	if g.occupied == 0 {
		return nil
	}
	var out []polyomino.Cell
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.Occupied(row, col) {
				continue
			}
			for _, d := range frontierOffsets {
				nr, nc := row+d[0], col+d[1]
				if g.InBounds(nr, nc) && g.Occupied(nr, nc) {
					out = append(out, polyomino.Cell{Row: row, Col: col})
					break
				}
			}
		}
	}

	return out
}

// Snapshot serializes the exact occupancy state into an immutable string:
// the bit-packed words in little-endian order. Two grids of equal
// dimensions have equal snapshots iff they are cell-for-cell identical,
// which makes the snapshot an exact memoization key.
// Complexity: O(W×H / 64).
func (g *Grid) Snapshot() string {
	buf := make([]byte, len(g.words)*8)
	for i, w := range g.words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}

	return string(buf)
}

// String renders the grid with '#' for occupied and '.' for empty cells,
// rows separated by newlines. Debugging aid only.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for row := 0; row < g.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Width; col++ {
			if g.Occupied(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}

	return b.String()
}
