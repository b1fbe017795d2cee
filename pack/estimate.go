package pack

import "fmt"

// Estimate classifies a region query with two closed-form bounds, cheap
// enough to run before any exact search:
//
//  1. Area necessity: if the total required cells Σ counts[i]×sizes[i]
//     exceed width×height, no placement can exist → DoesNotFit.
//     This rejection is evaluated first and takes priority.
//  2. Loose-packing sufficiency: if the total item count is at most
//     ⌊width/3⌋×⌊height/3⌋, every item can take its own disjoint 3×3
//     block → Fits. This bound presumes every shape fits inside a 3×3
//     bounding box in some orientation, which holds for the shape
//     inventories this solver targets.
//
// Neither bound resolving yields Unknown: the caller must fall through
// to exact search. The estimator is sound in both decided directions and
// incomplete only through the Unknown bucket.
//
// sizes is indexed by shape identifier; counts may be shorter than sizes.
// Returns ErrNonPositiveRegion, ErrNegativeCount, or ErrUnknownShape on
// malformed input.
//
// Complexity: O(len(counts)) time, O(1) memory.
func Estimate(width, height int, counts, sizes []int) (Verdict, error) {
	if width <= 0 || height <= 0 {
		return Unknown, fmt.Errorf("%w: %dx%d", ErrNonPositiveRegion, width, height)
	}
	if len(counts) > len(sizes) {
		return Unknown, fmt.Errorf("%w: %d counts for %d shapes", ErrUnknownShape, len(counts), len(sizes))
	}

	requiredCells, totalItems := 0, 0
	for id, n := range counts {
		if n < 0 {
			return Unknown, fmt.Errorf("%w: shape %d has count %d", ErrNegativeCount, id, n)
		}
		requiredCells += n * sizes[id]
		totalItems += n
	}

	// Necessity first: more cells demanded than the region holds.
	if requiredCells > width*height {
		return DoesNotFit, nil
	}
	// Sufficiency: one disjoint 3×3 block per item.
	if totalItems <= (width/3)*(height/3) {
		return Fits, nil
	}

	return Unknown, nil
}
