// Package pack provides tunable options, query types, and error
// definitions for the region-packing solver.
package pack

import (
	"errors"
	"fmt"
)

// Sentinel errors for solver construction and query evaluation.
var (
	// ErrNoShapes is returned when NewSolver receives an empty shape table.
	ErrNoShapes = errors.New("pack: solver requires at least one shape")

	// ErrNonPositiveRegion is returned when a query's width or height is
	// zero or negative.
	ErrNonPositiveRegion = errors.New("pack: region dimensions must be positive")

	// ErrNegativeCount is returned when a query requires a negative number
	// of copies of some shape.
	ErrNegativeCount = errors.New("pack: shape counts must be non-negative")

	// ErrUnknownShape is returned when a query's counts vector is longer
	// than the solver's shape table.
	ErrUnknownShape = errors.New("pack: count refers to an unknown shape identifier")

	// ErrBudgetExhausted is returned when a WithMaxNodes budget ran out
	// before the search reached an answer.
	ErrBudgetExhausted = errors.New("pack: search node budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pack: invalid option supplied")
)

// Query is one region question: can Counts[id] copies of shape id, for
// every id, be packed into a Width×Height region? Counts is indexed by
// shape identifier (the shape's position in the solver's table) and may
// be shorter than the table. Immutable once built.
type Query struct {
	Width, Height int
	Counts        []int
}

// Verdict is the three-way outcome of the admissibility estimator.
type Verdict int

const (
	// Unknown means neither bound resolved the query; exact search is needed.
	Unknown Verdict = iota
	// Fits means the loose-packing bound guarantees a placement exists.
	Fits
	// DoesNotFit means the area bound proves no placement can exist.
	DoesNotFit
)

// String implements fmt.Stringer for Verdict.
func (v Verdict) String() string {
	switch v {
	case Fits:
		return "Fits"
	case DoesNotFit:
		return "DoesNotFit"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Option configures solver behavior via functional arguments.
// An invalid Option (e.g. a negative node budget) is recorded internally
// and surfaced as ErrOptionViolation by NewSolver.
type Option func(*Options)

// Options holds parameters customizing search execution.
type Options struct {
	// UseMemo enables exact-state memoization. Disabling it changes
	// performance only, never an answer; the knob exists so that
	// equivalence is testable.
	UseMemo bool

	// MaxNodes, if > 0, bounds the number of search states expanded per
	// query; exceeding it aborts the query with ErrBudgetExhausted.
	// A value of 0 explicitly means unbounded exhaustive search.
	MaxNodes int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - memoization enabled
//   - no node budget (exhaustive search)
func DefaultOptions() Options {
	return Options{
		UseMemo:  true,
		MaxNodes: 0,
		err:      nil,
	}
}

// WithoutMemo disables the memo table, forcing brute-force recomputation
// of repeated states. Intended for testing and diagnostics.
func WithoutMemo() Option {
	return func(o *Options) {
		o.UseMemo = false
	}
}

// WithMaxNodes bounds the number of search states expanded per query.
//
//	n > 0:  abort a query with ErrBudgetExhausted after n states
//	n == 0: explicit "no budget"
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxNodes = n
		}
	}
}
