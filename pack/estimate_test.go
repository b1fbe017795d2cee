package pack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polypack/pack"
)

// TestEstimate_Verdicts walks the three-way classification across both
// bounds, including the rule that the area rejection takes priority over
// the 3×3-block sufficiency bound.
func TestEstimate_Verdicts(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		counts, sizes []int
		want          pack.Verdict
	}{
		{"AreaRejects", 2, 2, []int{2}, []int{4}, pack.DoesNotFit},
		{"BlocksAccept", 9, 9, []int{4}, []int{4}, pack.Fits},
		{"Borderline", 4, 4, []int{4}, []int{4}, pack.Unknown},
		{"AreaBeatsBlocks", 3, 3, []int{1}, []int{10}, pack.DoesNotFit},
		{"NothingRequired", 1, 1, []int{}, []int{4}, pack.Fits},
		{"ZeroCounts", 5, 5, []int{0, 0}, []int{4, 3}, pack.Fits},
		{"NarrowRegion", 3, 1, []int{1}, []int{3}, pack.Unknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pack.Estimate(tc.width, tc.height, tc.counts, tc.sizes)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestEstimate_AreaSoundness sweeps small regions and shape demands and
// asserts the necessity direction: demanded cells above the area is
// always DoesNotFit, never Fits or Unknown.
func TestEstimate_AreaSoundness(t *testing.T) {
	sizes := []int{1, 3, 4, 5}
	for width := 1; width <= 6; width++ {
		for height := 1; height <= 6; height++ {
			for id, size := range sizes {
				counts := make([]int, len(sizes))
				counts[id] = width*height/size + 1 // just above the area bound
				got, err := pack.Estimate(width, height, counts, sizes)
				assert.NoError(t, err)
				assert.Equal(t, pack.DoesNotFit, got,
					"%dx%d with %d copies of size %d", width, height, counts[id], size)
			}
		}
	}
}

func TestEstimate_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		counts, sizes []int
		err           error
	}{
		{"ZeroWidth", 0, 3, []int{1}, []int{1}, pack.ErrNonPositiveRegion},
		{"NegativeHeight", 3, -1, []int{1}, []int{1}, pack.ErrNonPositiveRegion},
		{"TooManyCounts", 3, 3, []int{1, 1}, []int{1}, pack.ErrUnknownShape},
		{"NegativeCount", 3, 3, []int{-1}, []int{1}, pack.ErrNegativeCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pack.Estimate(tc.width, tc.height, tc.counts, tc.sizes)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "Unknown", pack.Unknown.String())
	assert.Equal(t, "Fits", pack.Fits.String())
	assert.Equal(t, "DoesNotFit", pack.DoesNotFit.String())
	assert.Equal(t, "Verdict(42)", pack.Verdict(42).String())
}
