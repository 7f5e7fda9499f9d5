package insight

import "math"

// Ratings live on a 1-10 scale; scores rescale them to 0-100 for presentation.
const (
	RatingMin = 1
	RatingMax = 10

	// NeutralRating stands in when a composite has no inputs. Absence of data
	// must never crash aggregation.
	NeutralRating = 5
)

// ClampRating forces v into [1,10]. Out-of-range input is user-authored content,
// so it is normalized rather than rejected.
func ClampRating(v int) int {
	if v < RatingMin {
		return RatingMin
	}
	if v > RatingMax {
		return RatingMax
	}
	return v
}

// ScoreFromRating linearly maps a 1-10 rating onto 0-100:
// round(((clamp(v)-1)/9)*100). Pinned values: 1->0, 2->11, 8->78, 10->100.
// All rounding in this package is round-half-to-even; the /9 grid never lands
// on an exact half, so the choice is only observable in averaged values.
func ScoreFromRating(v int) int {
	return int(math.RoundToEven(float64(ClampRating(v)-1) / 9.0 * 100.0))
}

// CompositeRating folds several per-dimension ratings into one 1-10 summary value:
// the arithmetic mean of the clamped inputs, rounded to nearest. An empty input
// yields the neutral midpoint.
func CompositeRating(values []int) int {
	if len(values) == 0 {
		return NeutralRating
	}
	sum := 0
	for _, v := range values {
		sum += ClampRating(v)
	}
	return int(math.RoundToEven(float64(sum) / float64(len(values))))
}
