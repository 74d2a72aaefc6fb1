package mastery

import (
	"sort"

	"github.com/prepdeck/prepdeck/internal/scheduler"
)

const (
	// RecallWindow is how many of the most recent reviews feed the recall
	// average.
	RecallWindow = 5

	// RecallWeight and ConsistencyWeight combine the two components into
	// the final [0,100] mastery score.
	RecallWeight      = 80.0
	ConsistencyWeight = 20.0

	// GapVarianceNormDays normalizes the inter-review gap variance before
	// it is folded into the consistency component.
	GapVarianceNormDays = 30.0
)

// Estimate computes a mastery score in [0,100] from a time-ordered review
// history. It is pure: identical history always yields identical mastery.
// An empty history scores 0.
func Estimate(history []scheduler.ReviewRecord) float64 {
	if len(history) == 0 {
		return 0
	}

	avgPerf := recentAverage(history)
	consistency := gapConsistency(history)

	score := avgPerf*RecallWeight + consistency*ConsistencyWeight
	return clamp(score, 0, 100)
}

// EstimateSet recomputes the aggregate view over a collection of item
// histories. Mastery is estimated over the merged, time-ordered record
// stream rather than averaged per item, so irregular review habits show
// up at the set level too.
func EstimateSet(progress map[string]scheduler.ItemProgress) scheduler.SetProgress {
	var merged []scheduler.ReviewRecord
	sp := scheduler.SetProgress{}

	for _, p := range progress {
		merged = append(merged, p.Records...)
		sp.TotalReviews += p.TotalReviews
		if p.LastReviewedAt.After(sp.LastReviewedAt) {
			sp.LastReviewedAt = p.LastReviewedAt
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].RecordedAt.Before(merged[j].RecordedAt)
	})

	sp.OverallMastery = Estimate(merged)
	return sp
}

// recentAverage returns the mean performance of the last min(RecallWindow,
// len) records.
func recentAverage(history []scheduler.ReviewRecord) float64 {
	n := len(history)
	window := RecallWindow
	if n < window {
		window = n
	}
	sum := 0.0
	for _, r := range history[n-window:] {
		sum += r.Performance
	}
	return sum / float64(window)
}

// gapConsistency scores review regularity: 1 for perfectly even gaps,
// falling toward 0 as the day-gap variance approaches GapVarianceNormDays.
// Histories with fewer than two reviews have no gaps and score 1.
func gapConsistency(history []scheduler.ReviewRecord) float64 {
	if len(history) < 2 {
		return 1
	}

	gaps := make([]float64, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		gaps = append(gaps, history[i].RecordedAt.Sub(history[i-1].RecordedAt).Hours()/24.0)
	}

	normalized := clamp(variance(gaps)/GapVarianceNormDays, 0, 1)
	return 1 - normalized
}

func variance(xs []float64) float64 {
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	v := 0.0
	for _, x := range xs {
		d := x - mean
		v += d * d
	}
	return v / float64(len(xs))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
