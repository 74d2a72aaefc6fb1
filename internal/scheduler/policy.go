package scheduler

import (
	"errors"
	"time"

	"github.com/prepdeck/prepdeck/internal/item"
)

// ErrInvalidPerformance is returned when a performance value falls outside
// the [0,1] range. Invalid values are rejected, never clamped.
var ErrInvalidPerformance = errors.New("performance must be in [0,1]")

// ErrItemNotFound is returned when a review references an item the engine
// does not know about.
var ErrItemNotFound = errors.New("item not found")

// Policy holds the interval schedule parameters. Performance buckets are
// half-open with the top bucket winning exact boundary values.
type Policy struct {
	// DoubleAt is the performance at or above which the interval doubles.
	DoubleAt float64
	// GrowAt is the performance at or above which the interval grows 1.5x.
	GrowAt float64
	// HoldAt is the performance at or above which the interval is kept.
	// Below it the interval halves.
	HoldAt float64
	// MaxDoubleDays caps the doubled interval.
	MaxDoubleDays int
	// MaxGrowDays caps the 1.5x interval.
	MaxGrowDays int
}

// DefaultPolicy returns the standard interval policy.
func DefaultPolicy() Policy {
	return Policy{
		DoubleAt:      0.8,
		GrowAt:        0.6,
		HoldAt:        0.4,
		MaxDoubleDays: 365,
		MaxGrowDays:   180,
	}
}

// Schedule computes the next review record from the most recent record (nil
// for a first review), the new performance in [0,1], and the item's
// difficulty. The returned interval is always >= 1 day and NextReview is
// always after now.
func (pol Policy) Schedule(prev *ReviewRecord, performance float64, diff item.Difficulty, now time.Time) (ReviewRecord, error) {
	if performance < 0 || performance > 1 {
		return ReviewRecord{}, ErrInvalidPerformance
	}

	interval := 1
	if prev != nil {
		interval = nextInterval(pol, prev.IntervalDays, performance)
	}

	// Harder items come back sooner, easier ones later.
	switch diff {
	case item.DifficultyHard, item.DifficultyExpert:
		interval = maxInt(1, interval-1)
	case item.DifficultyEasy:
		interval++
	}

	return ReviewRecord{
		IntervalDays: interval,
		NextReview:   now.AddDate(0, 0, interval),
		Performance:  performance,
		RecordedAt:   now,
	}, nil
}

func nextInterval(pol Policy, prev int, performance float64) int {
	switch {
	case performance >= pol.DoubleAt:
		return minInt(prev*2, pol.MaxDoubleDays)
	case performance >= pol.GrowAt:
		return minInt(int(float64(prev)*1.5), pol.MaxGrowDays)
	case performance >= pol.HoldAt:
		return prev
	default:
		return maxInt(1, prev/2)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
