package polyomino

// Rotate90 returns the shape rotated a quarter turn, renormalized to the
// origin. The rotation convention maps (r, c) to (c, -r).
// Complexity: O(n log n).
func (s Shape) Rotate90() Shape {
	rot := make([]Cell, len(s.cells))
	for i, c := range s.cells {
		rot[i] = Cell{Row: c.Col, Col: -c.Row}
	}

	return Shape{cells: Normalize(rot)}
}

// Reflect returns the shape mirrored horizontally, renormalized to the
// origin. The reflection maps (r, c) to (r, -c).
// Complexity: O(n log n).
func (s Shape) Reflect() Shape {
	ref := make([]Cell, len(s.cells))
	for i, c := range s.cells {
		ref[i] = Cell{Row: c.Row, Col: -c.Col}
	}

	return Shape{cells: Normalize(ref)}
}

// Orientations returns every distinct shape reachable from s under the
// dihedral group of order 8: the four quarter-turn rotations of s, then
// the four rotations of its horizontal mirror, deduplicated by cell-set
// equality. The order is deterministic (first appearance in that fixed
// transform sequence), so repeated calls yield identical slices.
//
// Symmetric shapes collapse: a square yields 1 orientation, an L-tromino
// 4, a fully asymmetric shape all 8.
//
// Complexity: 8 transforms of O(n log n) each, O(n) memory per result.
func (s Shape) Orientations() []Shape {
	out := make([]Shape, 0, 8)
	add := func(o Shape) {
		for _, have := range out {
			if have.Equal(o) {
				return
			}
		}
		out = append(out, o)
	}

	cur := s
	for i := 0; i < 4; i++ {
		add(cur)
		cur = cur.Rotate90()
	}
	cur = s.Reflect()
	for i := 0; i < 4; i++ {
		add(cur)
		cur = cur.Rotate90()
	}

	return out
}
