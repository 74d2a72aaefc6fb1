package mastery

import (
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/scheduler"
)

var base = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

// historyAt builds a review history from (performance, day-offset) pairs.
func historyAt(perfs []float64, dayOffsets []int) []scheduler.ReviewRecord {
	records := make([]scheduler.ReviewRecord, len(perfs))
	for i := range perfs {
		records[i] = scheduler.ReviewRecord{
			IntervalDays: 1,
			Performance:  perfs[i],
			RecordedAt:   base.AddDate(0, 0, dayOffsets[i]),
		}
	}
	return records
}

func TestEstimate_EmptyHistory(t *testing.T) {
	if got := Estimate(nil); got != 0 {
		t.Errorf("Estimate(nil) = %v, want 0", got)
	}
}

func TestEstimate_PerfectRecallEvenGaps(t *testing.T) {
	h := historyAt([]float64{1, 1, 1}, []int{0, 1, 2})
	if got := Estimate(h); got != 100 {
		t.Errorf("Estimate() = %v, want 100", got)
	}
}

func TestEstimate_SingleReview(t *testing.T) {
	// One review: no gaps, consistency 1. 0.5*80 + 1*20 = 60.
	h := historyAt([]float64{0.5}, []int{0})
	if got := Estimate(h); got != 60 {
		t.Errorf("Estimate() = %v, want 60", got)
	}
}

func TestEstimate_IrregularGapsPenalized(t *testing.T) {
	// Gaps of 1 and 30 days: variance 210.25, normalized past 1, so the
	// consistency component drops to zero. 1.0*80 + 0*20 = 80.
	h := historyAt([]float64{1, 1, 1}, []int{0, 1, 31})
	if got := Estimate(h); got != 80 {
		t.Errorf("Estimate() = %v, want 80", got)
	}
}

func TestEstimate_UsesLastFiveOnly(t *testing.T) {
	// Seven reviews, daily: first two are zeros but fall outside the
	// 5-review recall window. Recent average is 1.0.
	h := historyAt([]float64{0, 0, 1, 1, 1, 1, 1}, []int{0, 1, 2, 3, 4, 5, 6})
	if got := Estimate(h); got != 100 {
		t.Errorf("Estimate() = %v, want 100", got)
	}
}

func TestEstimate_ShortHistoryUsesAll(t *testing.T) {
	// Three reviews, daily, perfs 0.2/0.4/0.6: avg 0.4, consistency 1.
	// 0.4*80 + 20 = 52.
	h := historyAt([]float64{0.2, 0.4, 0.6}, []int{0, 1, 2})
	got := Estimate(h)
	if got < 51.99 || got > 52.01 {
		t.Errorf("Estimate() = %v, want 52", got)
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	h := historyAt([]float64{0.3, 0.8, 0.6, 0.9}, []int{0, 2, 5, 6})
	first := Estimate(h)
	second := Estimate(h)
	if first != second {
		t.Errorf("Estimate() not idempotent: %v then %v", first, second)
	}
}

func TestEstimate_BoundedRange(t *testing.T) {
	histories := [][]scheduler.ReviewRecord{
		historyAt([]float64{0, 0, 0}, []int{0, 10, 50}),
		historyAt([]float64{1, 1, 1, 1, 1}, []int{0, 1, 2, 3, 4}),
		historyAt([]float64{0.5}, []int{0}),
	}
	for i, h := range histories {
		got := Estimate(h)
		if got < 0 || got > 100 {
			t.Errorf("history %d: Estimate() = %v, outside [0,100]", i, got)
		}
	}
}

func TestEstimateSet_MergesHistories(t *testing.T) {
	progress := map[string]scheduler.ItemProgress{
		"a": {
			ItemID:         "a",
			Records:        historyAt([]float64{1, 1}, []int{0, 2}),
			TotalReviews:   2,
			LastReviewedAt: base.AddDate(0, 0, 2),
		},
		"b": {
			ItemID:         "b",
			Records:        historyAt([]float64{1}, []int{1}),
			TotalReviews:   1,
			LastReviewedAt: base.AddDate(0, 0, 1),
		},
	}

	sp := EstimateSet(progress)
	if sp.TotalReviews != 3 {
		t.Errorf("TotalReviews = %d, want 3", sp.TotalReviews)
	}
	if !sp.LastReviewedAt.Equal(base.AddDate(0, 0, 2)) {
		t.Errorf("LastReviewedAt = %v, want %v", sp.LastReviewedAt, base.AddDate(0, 0, 2))
	}
	// Merged stream is daily perfect recall: mastery 100.
	if sp.OverallMastery != 100 {
		t.Errorf("OverallMastery = %v, want 100", sp.OverallMastery)
	}
}

func TestEstimateSet_Empty(t *testing.T) {
	sp := EstimateSet(nil)
	if sp.OverallMastery != 0 || sp.TotalReviews != 0 {
		t.Errorf("EstimateSet(nil) = %+v, want zero value", sp)
	}
}
