package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/item"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func prevRecord(intervalDays int) *ReviewRecord {
	return &ReviewRecord{
		IntervalDays: intervalDays,
		NextReview:   testNow,
		Performance:  0.7,
		RecordedAt:   testNow.AddDate(0, 0, -intervalDays),
	}
}

func TestSchedule_FirstReview_OneDay(t *testing.T) {
	pol := DefaultPolicy()
	rec, err := pol.Schedule(nil, 0.9, item.DifficultyMedium, testNow)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if rec.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", rec.IntervalDays)
	}
	expectedNext := testNow.AddDate(0, 0, 1)
	if !rec.NextReview.Equal(expectedNext) {
		t.Errorf("NextReview = %v, want %v", rec.NextReview, expectedNext)
	}
}

func TestSchedule_PerformanceBuckets(t *testing.T) {
	tests := []struct {
		name        string
		prev        int
		performance float64
		want        int
	}{
		{"top bucket doubles", 10, 0.9, 20},
		{"exact 0.8 takes top bucket", 10, 0.8, 20},
		{"growth bucket 1.5x", 10, 0.7, 15},
		{"exact 0.6 takes growth bucket", 10, 0.6, 15},
		{"just below 0.8 grows not doubles", 10, 0.79, 15},
		{"hold bucket keeps interval", 10, 0.5, 10},
		{"exact 0.4 holds", 10, 0.4, 10},
		{"bottom bucket halves", 10, 0.3, 5},
		{"just below 0.4 halves", 10, 0.39, 5},
		{"halving floors at one day", 1, 0.0, 1},
		{"growth floors fractional days", 1, 0.6, 1},
		{"doubling capped at 365", 200, 1.0, 365},
		{"growth capped at 180", 150, 0.7, 180},
	}
	pol := DefaultPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := pol.Schedule(prevRecord(tt.prev), tt.performance, item.DifficultyMedium, testNow)
			if err != nil {
				t.Fatalf("Schedule() error = %v", err)
			}
			if rec.IntervalDays != tt.want {
				t.Errorf("IntervalDays = %d, want %d", rec.IntervalDays, tt.want)
			}
		})
	}
}

func TestSchedule_DifficultyNudge(t *testing.T) {
	tests := []struct {
		name string
		diff item.Difficulty
		want int
	}{
		{"hard comes back a day sooner", item.DifficultyHard, 19},
		{"expert nudged like hard", item.DifficultyExpert, 19},
		{"easy pushed a day later", item.DifficultyEasy, 21},
		{"medium unchanged", item.DifficultyMedium, 20},
	}
	pol := DefaultPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := pol.Schedule(prevRecord(10), 0.9, tt.diff, testNow)
			if err != nil {
				t.Fatalf("Schedule() error = %v", err)
			}
			if rec.IntervalDays != tt.want {
				t.Errorf("IntervalDays = %d, want %d", rec.IntervalDays, tt.want)
			}
		})
	}
}

func TestSchedule_HardNudge_FloorsAtOne(t *testing.T) {
	pol := DefaultPolicy()
	rec, err := pol.Schedule(prevRecord(1), 0.5, item.DifficultyHard, testNow)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if rec.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", rec.IntervalDays)
	}
}

func TestSchedule_InvalidPerformance(t *testing.T) {
	pol := DefaultPolicy()
	for _, perf := range []float64{-0.1, 1.01, 1.5} {
		_, err := pol.Schedule(nil, perf, item.DifficultyMedium, testNow)
		if !errors.Is(err, ErrInvalidPerformance) {
			t.Errorf("Schedule(perf=%v) error = %v, want ErrInvalidPerformance", perf, err)
		}
	}
}

func TestSchedule_IntervalAlwaysPositive(t *testing.T) {
	pol := DefaultPolicy()
	diffs := []item.Difficulty{item.DifficultyEasy, item.DifficultyMedium, item.DifficultyHard, item.DifficultyExpert}
	for _, prev := range []int{1, 2, 5, 30, 365} {
		for perf := 0.0; perf <= 1.0; perf += 0.05 {
			for _, d := range diffs {
				rec, err := pol.Schedule(prevRecord(prev), perf, d, testNow)
				if err != nil {
					t.Fatalf("Schedule() error = %v", err)
				}
				if rec.IntervalDays < 1 {
					t.Fatalf("IntervalDays = %d for prev=%d perf=%v diff=%s, want >= 1", rec.IntervalDays, prev, perf, d)
				}
				if !rec.NextReview.After(testNow) {
					t.Fatalf("NextReview %v not after now for prev=%d perf=%v", rec.NextReview, prev, perf)
				}
			}
		}
	}
}

func TestSchedule_MonotonicInPerformance(t *testing.T) {
	pol := DefaultPolicy()
	for _, prev := range []int{1, 3, 10, 60, 200} {
		high, err := pol.Schedule(prevRecord(prev), 0.9, item.DifficultyMedium, testNow)
		if err != nil {
			t.Fatalf("Schedule() error = %v", err)
		}
		low, err := pol.Schedule(prevRecord(prev), 0.5, item.DifficultyMedium, testNow)
		if err != nil {
			t.Fatalf("Schedule() error = %v", err)
		}
		if high.IntervalDays < low.IntervalDays {
			t.Errorf("prev=%d: interval(0.9) = %d < interval(0.5) = %d", prev, high.IntervalDays, low.IntervalDays)
		}
	}
}

func TestWithRecord_AppendOnly(t *testing.T) {
	p := ItemProgress{ItemID: "item-a"}
	r1 := ReviewRecord{IntervalDays: 1, Performance: 0.9, RecordedAt: testNow, NextReview: testNow.AddDate(0, 0, 1)}
	p2 := p.WithRecord(r1)

	if len(p.Records) != 0 {
		t.Errorf("original progress mutated: %d records", len(p.Records))
	}
	if p2.TotalReviews != 1 || len(p2.Records) != 1 {
		t.Errorf("TotalReviews = %d, records = %d, want 1, 1", p2.TotalReviews, len(p2.Records))
	}
	if !p2.LastReviewedAt.Equal(testNow) {
		t.Errorf("LastReviewedAt = %v, want %v", p2.LastReviewedAt, testNow)
	}
}
