package polyomino

import (
	"sort"
	"strings"
)

// Normalize returns cells translated so that the minimum row and the
// minimum column are both zero, with duplicates removed and the result
// sorted row-major. An empty input yields nil.
//
// Normalize is idempotent, and any two translations of the same cell set
// normalize to equal slices; that property is the shape-equality relation
// used by Equal and by orientation deduplication.
//
// Complexity: O(n log n) time, O(n) memory.
func Normalize(cells []Cell) []Cell {
	if len(cells) == 0 {
		return nil
	}
	minR, minC := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minR {
			minR = c.Row
		}
		if c.Col < minC {
			minC = c.Col
		}
	}
	seen := make(map[Cell]struct{}, len(cells))
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		n := Cell{Row: c.Row - minR, Col: c.Col - minC}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// New constructs a Shape from any non-empty cell set; the input may be
// unnormalized and may contain duplicates. Returns ErrEmptyShape when no
// cells remain after deduplication.
// Complexity: O(n log n).
func New(cells []Cell) (Shape, error) {
	n := Normalize(cells)
	if len(n) == 0 {
		return Shape{}, ErrEmptyShape
	}

	return Shape{cells: n}, nil
}

// FromStrings constructs a Shape from an ASCII mask, one string per row,
// where '#' marks a cell and any other rune is blank. Rows may have
// ragged lengths. Returns ErrEmptyShape when the mask contains no '#'.
//
// Example: FromStrings("##", ".#") is the L-tromino.
func FromStrings(rows ...string) (Shape, error) {
	var cells []Cell
	for r, row := range rows {
		for c, ch := range row {
			if ch == '#' {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}

	return New(cells)
}

// Cells returns a copy of the shape's normalized cells in row-major order.
func (s Shape) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)

	return out
}

// Size returns the number of cells in the shape.
// Complexity: O(1).
func (s Shape) Size() int {
	return len(s.cells)
}

// At returns the i-th cell in row-major order.
// Intended for allocation-free iteration together with Size.
func (s Shape) At(i int) Cell {
	return s.cells[i]
}

// Width returns the bounding-box width (max column + 1); 0 for the zero Shape.
func (s Shape) Width() int {
	w := 0
	for _, c := range s.cells {
		if c.Col+1 > w {
			w = c.Col + 1
		}
	}

	return w
}

// Height returns the bounding-box height (max row + 1); 0 for the zero Shape.
func (s Shape) Height() int {
	h := 0
	for _, c := range s.cells {
		if c.Row+1 > h {
			h = c.Row + 1
		}
	}

	return h
}

// Equal reports whether two shapes occupy identical normalized cell sets.
// Complexity: O(n).
func (s Shape) Equal(o Shape) bool {
	if len(s.cells) != len(o.cells) {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// String renders the shape's bounding box with '#' for cells and '.' for
// blanks, rows separated by newlines. Debugging aid only.
func (s Shape) String() string {
	h, w := s.Height(), s.Width()
	if h == 0 || w == 0 {
		return ""
	}
	mask := make([][]byte, h)
	for r := range mask {
		mask[r] = []byte(strings.Repeat(".", w))
	}
	for _, c := range s.cells {
		mask[c.Row][c.Col] = '#'
	}
	lines := make([]string, h)
	for r := range mask {
		lines[r] = string(mask[r])
	}

	return strings.Join(lines, "\n")
}
