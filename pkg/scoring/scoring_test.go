package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePrediction(t *testing.T) {
	tests := []struct {
		name    string
		picks   []uint
		results map[uint]int

		expectedPoints    int
		expectedDiffs     []int
		expectedExactHits int
	}{
		{
			name:              "perfectPrediction",
			picks:             []uint{10, 20, 30},
			results:           map[uint]int{10: 1, 20: 2, 30: 3},
			expectedPoints:    3*ExactHitPoints + PerfectBonus,
			expectedDiffs:     []int{0, 0, 0},
			expectedExactHits: 3,
		},
		{
			name:              "mixedPrediction",
			picks:             []uint{10, 20, 30},
			results:           map[uint]int{10: 2, 20: 1, 30: 3},
			expectedPoints:    2*PlacedHitPoints + ExactHitPoints,
			expectedDiffs:     []int{1, 1, 0},
			expectedExactHits: 1,
		},
		{
			name:              "unplacedCompetitorCountsSlotCountAsError",
			picks:             []uint{10, 20},
			results:           map[uint]int{10: 1},
			expectedPoints:    ExactHitPoints,
			expectedDiffs:     []int{0, 2},
			expectedExactHits: 1,
		},
		{
			name:              "completelyWrongPrediction",
			picks:             []uint{10, 20, 30},
			results:           map[uint]int{40: 1, 50: 2, 60: 3},
			expectedPoints:    0,
			expectedDiffs:     []int{3, 3, 3},
			expectedExactHits: 0,
		},
		{
			name:              "emptyPredictionNeverEarnsTheBonus",
			picks:             []uint{},
			results:           map[uint]int{},
			expectedPoints:    0,
			expectedDiffs:     []int{},
			expectedExactHits: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, diffs, exactHits := ScorePrediction(tt.picks, tt.results)

			assert.Equal(t, tt.expectedPoints, points)
			assert.Equal(t, tt.expectedDiffs, diffs)
			assert.Equal(t, tt.expectedExactHits, exactHits)
		})
	}
}

func TestApplyForecastFromZero(t *testing.T) {
	totals := ApplyForecast(Totals{}, 7, []int{1, 1, 0}, 1)

	assert.Equal(t, 7, totals.TotalPoints)
	assert.Equal(t, 3, totals.TotalSlots)
	assert.InDelta(t, 0.67, totals.AvgError, 0.001)
	assert.InDelta(t, 33.33, totals.AccuracyRate, 0.001)
}

func TestApplyForecastFoldsIntoExistingTotals(t *testing.T) {
	old := Totals{
		TotalPoints:  10,
		AccuracyRate: 50,
		AvgError:     1,
		TotalSlots:   4,
	}

	totals := ApplyForecast(old, ExactHitPoints, []int{0}, 1)

	assert.Equal(t, 15, totals.TotalPoints)
	assert.Equal(t, 5, totals.TotalSlots)
	assert.InDelta(t, 0.8, totals.AvgError, 0.001)
	assert.InDelta(t, 60, totals.AccuracyRate, 0.001)
}

func TestApplyForecastSequenceMatchesConcatenation(t *testing.T) {
	// Folding two predictions one by one must land on the same points and
	// slot totals as folding their combined contributions at once. The
	// cached rates may drift within rounding, the integer fields may not.
	first := ApplyForecast(Totals{}, 7, []int{1, 1, 0}, 1)
	sequential := ApplyForecast(first, 30, []int{0, 0, 0}, 3)

	combined := ApplyForecast(Totals{}, 37, []int{1, 1, 0, 0, 0, 0}, 4)

	assert.Equal(t, combined.TotalPoints, sequential.TotalPoints)
	assert.Equal(t, combined.TotalSlots, sequential.TotalSlots)
	assert.InDelta(t, combined.AvgError, sequential.AvgError, 0.02)
	assert.InDelta(t, combined.AccuracyRate, sequential.AccuracyRate, 0.02)
}

func TestApplyForecastWithNoSlotsStaysZero(t *testing.T) {
	totals := ApplyForecast(Totals{}, 0, nil, 0)

	assert.Equal(t, 0, totals.TotalPoints)
	assert.Equal(t, 0, totals.TotalSlots)
	assert.Zero(t, totals.AvgError)
	assert.Zero(t, totals.AccuracyRate)
}
