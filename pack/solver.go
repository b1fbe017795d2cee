package pack

import (
	"fmt"

	"github.com/katalvlaran/polypack/polyomino"
)

// Solver answers region-packing queries against a fixed shape table.
//
// The per-shape sizes and the full orientation tables are computed once
// in NewSolver and shared, read-only, by every query; each query owns its
// own Grid and memo table, so a single Solver may serve queries from
// multiple goroutines concurrently.
type Solver struct {
	shapes []polyomino.Shape
	sizes  []int
	orient [][]polyomino.Shape
	opts   Options
}

// NewSolver builds a Solver over shapes, indexed by position (a query's
// Counts[id] refers to shapes[id]). All orientation tables are built
// eagerly here, never per query.
//
// Returns ErrNoShapes for an empty table, polyomino.ErrEmptyShape for a
// zero-valued shape, or ErrOptionViolation for an invalid Option.
//
// Complexity: O(Σ shape cells · log) for normalization of ≤ 8
// orientations per shape.
func NewSolver(shapes []polyomino.Shape, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(shapes) == 0 {
		return nil, ErrNoShapes
	}

	s := &Solver{
		shapes: make([]polyomino.Shape, len(shapes)),
		sizes:  make([]int, len(shapes)),
		orient: make([][]polyomino.Shape, len(shapes)),
		opts:   o,
	}
	copy(s.shapes, shapes)
	for id, sh := range s.shapes {
		if sh.Size() == 0 {
			return nil, fmt.Errorf("pack: shape %d: %w", id, polyomino.ErrEmptyShape)
		}
		s.sizes[id] = sh.Size()
		s.orient[id] = sh.Orientations()
	}

	return s, nil
}

// Fits reports whether every required shape copy in q can be packed into
// the q.Width×q.Height region without overlap or leaving the region.
//
// The admissibility estimator runs first; exact backtracking search runs
// only when the estimator returns Unknown. "No placement exists" is a
// valid false answer, not an error; errors indicate a malformed query or
// an exhausted WithMaxNodes budget.
func (s *Solver) Fits(q Query) (bool, error) {
	v, err := Estimate(q.Width, q.Height, q.Counts, s.sizes)
	if err != nil {
		return false, err
	}
	switch v {
	case Fits:
		return true, nil
	case DoesNotFit:
		return false, nil
	}

	return s.search(q)
}

// CountFit evaluates every query and returns how many fit — the
// aggregate the subsystem reports. The first malformed query (or
// exhausted budget) aborts with its error, wrapped with the query index.
func (s *Solver) CountFit(queries []Query) (int, error) {
	total := 0
	for i, q := range queries {
		ok, err := s.Fits(q)
		if err != nil {
			return 0, fmt.Errorf("pack: query %d: %w", i, err)
		}
		if ok {
			total++
		}
	}

	return total, nil
}
