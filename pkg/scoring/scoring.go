package scoring

import (
	"math"
)

// Points awarded per slot and the bonus for a fully exact prediction.
const (
	ExactHitPoints  = 5
	PlacedHitPoints = 1
	PerfectBonus    = 15
)

// Totals holds the running lifetime aggregates of a participant.
// AccuracyRate is a percentage, AvgError the mean absolute rank error,
// TotalSlots the denominator both are weighted by.
type Totals struct {
	TotalPoints  int
	AccuracyRate float64
	AvgError     float64
	TotalSlots   int
}

// ScorePrediction scores one prediction against the final results.
// picks holds competitor ids in predicted order (index 0 = rank 1),
// results maps competitor id to the rank it actually finished at.
//
// A competitor that did not place at all scores nothing and counts the
// slot count itself as the error, so later averaging stays bounded.
func ScorePrediction(picks []uint, results map[uint]int) (points int, diffs []int, exactHits int) {
	slotCount := len(picks)
	diffs = make([]int, 0, slotCount)

	for i, competitorID := range picks {
		predictedRank := i + 1

		actualRank, placed := results[competitorID]
		if !placed {
			diffs = append(diffs, slotCount)
			continue
		}

		diff := int(math.Abs(float64(predictedRank - actualRank)))
		diffs = append(diffs, diff)

		if diff == 0 {
			points += ExactHitPoints
			exactHits++
		} else {
			points += PlacedHitPoints
		}
	}

	// Bonus for nailing every slot. Requires at least one slot so an
	// empty prediction can never earn it.
	if exactHits == slotCount && slotCount > 0 {
		points += PerfectBonus
	}

	return points, diffs, exactHits
}

// ApplyForecast folds one freshly scored prediction into the running totals.
// The previous error and exact-hit sums are reconstructed from the cached
// averages, which keeps the participant row self-contained at the cost of a
// bounded rounding drift. Callers must apply each prediction exactly once.
func ApplyForecast(old Totals, points int, diffs []int, exactHits int) Totals {
	slotsBefore := old.TotalSlots
	slotsAfter := slotsBefore + len(diffs)

	updated := Totals{
		TotalPoints: old.TotalPoints + points,
		TotalSlots:  slotsAfter,
	}

	if slotsAfter == 0 {
		return updated
	}

	sumErrorsBefore := old.AvgError * float64(slotsBefore)
	sumNewErrors := 0
	for _, d := range diffs {
		sumNewErrors += d
	}
	updated.AvgError = round2((sumErrorsBefore + float64(sumNewErrors)) / float64(slotsAfter))

	exactBefore := (old.AccuracyRate / 100) * float64(slotsBefore)
	updated.AccuracyRate = round2((exactBefore + float64(exactHits)) / float64(slotsAfter) * 100)

	return updated
}

// round2 rounds to two decimal places for display stability.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
