package polyomino_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polypack/polyomino"
)

func TestRotate90(t *testing.T) {
	l := mustShape(t, "##", ".#")
	want := mustShape(t, ".#", "##")
	assert.True(t, l.Rotate90().Equal(want))
}

func TestRotate90_FourTimesIsIdentity(t *testing.T) {
	f := mustShape(t, ".##", "##.", ".#.")
	back := f.Rotate90().Rotate90().Rotate90().Rotate90()
	assert.True(t, f.Equal(back))
}

func TestReflect(t *testing.T) {
	l := mustShape(t, "##", ".#")
	want := mustShape(t, "##", "#.")
	assert.True(t, l.Reflect().Equal(want))
}

func TestReflect_TwiceIsIdentity(t *testing.T) {
	s := mustShape(t, ".##", "##.")
	assert.True(t, s.Equal(s.Reflect().Reflect()))
}

// TestOrientations_Counts pins the distinct-orientation count for shapes
// across the symmetry spectrum: fully symmetric collapses to 1, the
// chiral S-tetromino to 4, a shape with no symmetry keeps all 8.
func TestOrientations_Counts(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		{"SingleCell", []string{"#"}, 1},
		{"Square2x2", []string{"##", "##"}, 1},
		{"Line3", []string{"###"}, 2},
		{"LTromino", []string{"##", ".#"}, 4},
		{"STetromino", []string{".##", "##."}, 4},
		{"FPentomino", []string{".##", "##.", ".#."}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustShape(t, tc.rows...)
			assert.Len(t, s.Orientations(), tc.want)
		})
	}
}

func TestOrientations_Deterministic(t *testing.T) {
	s := mustShape(t, ".##", "##.", ".#.")
	first := s.Orientations()
	second := s.Orientations()
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]), "orientation %d differs between calls", i)
	}
}

func TestOrientations_AllNormalizedAndDistinct(t *testing.T) {
	s := mustShape(t, "##", ".#")
	ors := s.Orientations()
	for i, o := range ors {
		assert.Equal(t, s.Size(), o.Size(), "orientation %d changed cell count", i)
		cells := o.Cells()
		assert.Equal(t, polyomino.Normalize(cells), cells, "orientation %d is not normalized", i)
		for j := i + 1; j < len(ors); j++ {
			assert.False(t, o.Equal(ors[j]), "orientations %d and %d are duplicates", i, j)
		}
	}
}
