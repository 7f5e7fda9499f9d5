package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreFromRating(t *testing.T) {
	tests := []struct {
		rating int
		want   int
	}{
		{1, 0},
		{2, 11},
		{3, 22},
		{5, 44},
		{8, 78},
		{10, 100},
		{0, 0},    // clamped to 1
		{-3, 0},   // clamped to 1
		{15, 100}, // clamped to 10
	}

	for _, tt := range tests {
		if got := ScoreFromRating(tt.rating); got != tt.want {
			t.Errorf("ScoreFromRating(%d) = %d, want %d", tt.rating, got, tt.want)
		}
	}
}

func TestScoreFromRatingMonotonic(t *testing.T) {
	prev := ScoreFromRating(1)
	for v := 2; v <= 10; v++ {
		cur := ScoreFromRating(v)
		if cur < prev {
			t.Errorf("ScoreFromRating not monotonic at %d: %d < %d", v, cur, prev)
		}
		prev = cur
	}
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 1, ClampRating(-5))
	assert.Equal(t, 1, ClampRating(0))
	assert.Equal(t, 7, ClampRating(7))
	assert.Equal(t, 10, ClampRating(11))
}

func TestCompositeRating(t *testing.T) {
	assert.Equal(t, 5, CompositeRating(nil), "empty input falls back to the neutral midpoint")
	assert.Equal(t, 5, CompositeRating([]int{}))
	assert.Equal(t, 7, CompositeRating([]int{7}))
	assert.Equal(t, 6, CompositeRating([]int{5, 7}))        // 6.0
	assert.Equal(t, 6, CompositeRating([]int{5, 6}))        // 5.5 rounds half-to-even
	assert.Equal(t, 7, CompositeRating([]int{8, 6, 7}))     // 7.0
	assert.Equal(t, 4, CompositeRating([]int{20, 1, -4}))   // clamps to 10,1,1
	assert.Equal(t, 4, CompositeRating([]int{10, 1, 1}))    // 4.0
	assert.Equal(t, 10, CompositeRating([]int{99, 50, 12})) // all clamp to 10
}
