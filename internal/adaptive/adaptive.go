package adaptive

import (
	"time"

	"github.com/prepdeck/prepdeck/internal/item"
)

const (
	// RollingWindow is the maximum number of recent attempts considered.
	RollingWindow = 10

	// RollingMaxAge bounds how far back attempts count toward the rolling
	// accuracy.
	RollingMaxAge = 7 * 24 * time.Hour
)

// Thresholds controls when difficulty moves. A single adaptation step moves
// at most one rank.
type Thresholds struct {
	// PromoteAt is the rolling accuracy at or above which difficulty is
	// promoted one rank.
	PromoteAt float64
	// DemoteBelow is the rolling accuracy below which difficulty is
	// demoted one rank.
	DemoteBelow float64
}

// DefaultThresholds returns the standard promotion/demotion cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{PromoteAt: 0.8, DemoteBelow: 0.5}
}

// Outcome is one scored attempt on a topic, used for rolling accuracy.
type Outcome struct {
	Correct bool
	At      time.Time
}

// RollingAccuracy reduces the attempt history to a single accuracy in
// [0,1] over the last RollingWindow attempts inside RollingMaxAge. The
// second return is false when no attempt qualifies; callers must then keep
// the base difficulty unchanged.
func RollingAccuracy(history []Outcome, now time.Time) (float64, bool) {
	cutoff := now.Add(-RollingMaxAge)

	var recent []Outcome
	for _, o := range history {
		if o.At.Before(cutoff) {
			continue
		}
		recent = append(recent, o)
	}
	if len(recent) == 0 {
		return 0, false
	}
	if len(recent) > RollingWindow {
		recent = recent[len(recent)-RollingWindow:]
	}

	correct := 0
	for _, o := range recent {
		if o.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(recent)), true
}

// Adjust returns the difficulty to serve next. ok=false (no history) leaves
// the base unchanged, as do accuracies between the two thresholds and moves
// past the easy/expert bounds.
func (t Thresholds) Adjust(base item.Difficulty, accuracy float64, ok bool) item.Difficulty {
	if !ok {
		return base
	}
	switch {
	case accuracy >= t.PromoteAt:
		return base.Promote()
	case accuracy < t.DemoteBelow:
		return base.Demote()
	default:
		return base
	}
}
