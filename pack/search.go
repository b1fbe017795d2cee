package pack

import (
	"github.com/katalvlaran/polypack/grid"
	"github.com/katalvlaran/polypack/polyomino"
)

// memoKey is the exact-state memoization key: the bit-packed occupancy
// snapshot plus the index of the next item to place. Exact-match keying
// makes the memo a cache of proven sub-results, never a lossy digest.
type memoKey struct {
	state string
	next  int
}

// searcher encapsulates the mutable state of one query's backtracking
// search. The grid and memo are owned exclusively by the invocation's
// call stack; nothing is shared across queries.
type searcher struct {
	grid     *grid.Grid
	items    []int // shape ids in fixed placement order
	orient   [][]polyomino.Shape
	memo     map[memoKey]bool
	useMemo  bool
	maxNodes int
	nodes    int
}

// search runs the exact backtracking decision for one query whose
// estimator verdict was Unknown. A fresh Grid and memo table are built
// here and discarded with the answer.
func (s *Solver) search(q Query) (bool, error) {
	g, err := grid.New(q.Width, q.Height)
	if err != nil {
		return false, err
	}

	// Expand the counts vector into the fixed placement order:
	// shape id repeated count times. The order is arbitrary but fixed.
	total := 0
	for _, n := range q.Counts {
		total += n
	}
	items := make([]int, 0, total)
	for id, n := range q.Counts {
		for k := 0; k < n; k++ {
			items = append(items, id)
		}
	}

	w := &searcher{
		grid:     g,
		items:    items,
		orient:   s.orient,
		useMemo:  s.opts.UseMemo,
		maxNodes: s.opts.MaxNodes,
	}
	if w.useMemo {
		w.memo = make(map[memoKey]bool)
	}

	return w.backtrack(0)
}

// backtrack reports whether items[idx:] can all be placed from the
// current grid state. Index len(items) is the terminal success state.
//
// Per state: memo lookup, then the remaining-items vs empty-cells prune,
// then every (orientation, anchor) pair over the candidate anchors. On a
// successful recursive call the placement is kept and true propagates;
// on failure the placement is undone before the next pair is tried.
func (w *searcher) backtrack(idx int) (bool, error) {
	if idx == len(w.items) {
		return true, nil
	}

	var key memoKey
	if w.useMemo {
		key = memoKey{state: w.grid.Snapshot(), next: idx}
		if v, ok := w.memo[key]; ok {
			return v, nil
		}
	}

	if w.maxNodes > 0 {
		w.nodes++
		if w.nodes > w.maxNodes {
			return false, ErrBudgetExhausted
		}
	}

	// Not enough empty cells for the remaining items: hopeless.
	if len(w.items)-idx > w.grid.EmptyCount() {
		w.record(key, false)

		return false, nil
	}

	anchors := w.anchors()
	for _, o := range w.orient[w.items[idx]] {
		for _, a := range anchors {
			if !w.grid.CanPlace(o, a.Row, a.Col) {
				continue
			}
			w.grid.Place(o, a.Row, a.Col)
			ok, err := w.backtrack(idx + 1)
			if err != nil {
				w.grid.Unplace(o, a.Row, a.Col)

				return false, err
			}
			if ok {
				// Keep the placement; success propagates without undo.
				w.record(key, true)

				return true, nil
			}
			w.grid.Unplace(o, a.Row, a.Col)
		}
	}

	w.record(key, false)

	return false, nil
}

// anchors returns the candidate anchor cells for the next placement:
// the frontier (empty cells 4-adjacent to occupied ones) once anything
// is placed, else the single row-major first empty cell — with nothing
// placed, all empty positions are symmetric for the first move.
//
// The frontier restriction is a placement-order heuristic: packings
// whose items only ever touch diagonally, or not at all, are outside the
// order it explores.
func (w *searcher) anchors() []polyomino.Cell {
	if w.grid.OccupiedCount() == 0 {
		if c, ok := w.grid.FirstEmpty(); ok {
			return []polyomino.Cell{c}
		}

		return nil
	}

	return w.grid.Frontier()
}

// record stores v for key when memoization is enabled.
func (w *searcher) record(key memoKey, v bool) {
	if w.useMemo {
		w.memo[key] = v
	}
}
