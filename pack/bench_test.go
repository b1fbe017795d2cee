package pack_test

import (
	"testing"

	"github.com/katalvlaran/polypack/pack"
	"github.com/katalvlaran/polypack/polyomino"
)

func benchShapes(b *testing.B) []polyomino.Shape {
	b.Helper()
	square, err := polyomino.FromStrings("##", "##")
	if err != nil {
		b.Fatalf("setup FromStrings failed: %v", err)
	}
	elbow, err := polyomino.FromStrings("##", ".#")
	if err != nil {
		b.Fatalf("setup FromStrings failed: %v", err)
	}

	return []polyomino.Shape{square, elbow}
}

// BenchmarkEstimate measures the O(1) admissibility classification.
func BenchmarkEstimate(b *testing.B) {
	sizes := []int{4, 3}
	counts := []int{4, 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pack.Estimate(6, 5, counts, sizes)
	}
}

// BenchmarkFits_Borderline measures a query the estimator cannot settle:
// a tight 6×4 region demanding four squares and two elbows (22 of 24
// cells), forcing the memoized search.
func BenchmarkFits_Borderline(b *testing.B) {
	s, err := pack.NewSolver(benchShapes(b))
	if err != nil {
		b.Fatalf("setup NewSolver failed: %v", err)
	}
	q := pack.Query{Width: 6, Height: 4, Counts: []int{4, 2}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, errFits := s.Fits(q); errFits != nil {
			b.Fatalf("Fits failed: %v", errFits)
		}
	}
}

// BenchmarkFits_BorderlineNoMemo is the same query with memoization off,
// quantifying what the memo buys.
func BenchmarkFits_BorderlineNoMemo(b *testing.B) {
	s, err := pack.NewSolver(benchShapes(b), pack.WithoutMemo())
	if err != nil {
		b.Fatalf("setup NewSolver failed: %v", err)
	}
	q := pack.Query{Width: 6, Height: 4, Counts: []int{4, 2}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, errFits := s.Fits(q); errFits != nil {
			b.Fatalf("Fits failed: %v", errFits)
		}
	}
}
