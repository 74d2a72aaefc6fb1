package recommend

import (
	"fmt"
	"sort"

	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/progress"
)

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Recommendation is one actionable piece of guidance.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Action   string   `json:"action"`
	Topic    string   `json:"topic,omitempty"`
	Reason   string   `json:"reason"`
}

// Config holds the trigger thresholds (on the [0,100] display scale) and
// the output cap.
type Config struct {
	FoundationBelow  float64 // overall accuracy below this -> foundation work
	PracticeBelow    float64 // overall accuracy below this -> more practice
	SubjectWeakBelow float64 // per-subject accuracy below this
	ConsistencyBelow float64 // study-consistency below this
	MaxItems         int
}

// DefaultConfig returns the standard trigger thresholds.
func DefaultConfig() Config {
	return Config{
		FoundationBelow:  50,
		PracticeBelow:    75,
		SubjectWeakBelow: 60,
		ConsistencyBelow: 60,
		MaxItems:         6,
	}
}

// Build combines a windowed profile and/or a single attempt evaluation into
// a ranked, deduplicated recommendation list. Either input may be nil;
// triggers that depend on a missing input are skipped. Output order follows
// trigger priority and is capped at cfg.MaxItems.
func Build(cfg Config, profile *progress.PerformanceProfile, eval *evaluation.Result) []Recommendation {
	var recs []Recommendation
	seen := make(map[string]bool)

	add := func(r Recommendation) {
		key := r.Action + "|" + r.Topic
		if seen[key] {
			return
		}
		seen[key] = true
		recs = append(recs, r)
	}

	accuracy, haveAccuracy := overallAccuracy(profile, eval)

	// Foundation / practice rules on overall accuracy.
	if haveAccuracy {
		switch {
		case accuracy < cfg.FoundationBelow:
			add(Recommendation{
				Priority: PriorityHigh,
				Action:   "revisit-fundamentals",
				Reason:   fmt.Sprintf("overall accuracy %.0f%% is below %.0f%%; rebuild the basics before attempting harder material", accuracy, cfg.FoundationBelow),
			})
		case accuracy < cfg.PracticeBelow:
			add(Recommendation{
				Priority: PriorityMedium,
				Action:   "increase-practice-volume",
				Reason:   fmt.Sprintf("overall accuracy %.0f%% has room to grow; regular mixed practice closes the gap", accuracy),
			})
		}
	}

	// Time-management imbalance from the attempt breakdown.
	if eval != nil && eval.Breakdown.TooSlow > eval.Breakdown.TooFast {
		add(Recommendation{
			Priority: PriorityMedium,
			Action:   "practice-timed-drills",
			Reason:   fmt.Sprintf("%d questions ran over time versus %d rushed; timed drills build pacing", eval.Breakdown.TooSlow, eval.Breakdown.TooFast),
		})
	}

	// Per-subject gaps from the profile.
	if profile != nil {
		for _, subject := range sortedKeys(profile.SubjectAccuracy) {
			pct := profile.SubjectAccuracy[subject] * 100
			if pct < cfg.SubjectWeakBelow {
				add(Recommendation{
					Priority: PriorityHigh,
					Action:   "focus-subject",
					Topic:    subject,
					Reason:   fmt.Sprintf("%s accuracy is %.0f%%, below the %.0f%% bar", subject, pct, cfg.SubjectWeakBelow),
				})
			}
		}
	}

	// One recommendation per weak topic, weakest first.
	for _, topic := range weakAreas(profile, eval) {
		add(Recommendation{
			Priority: PriorityHigh,
			Action:   "drill-weak-topic",
			Topic:    topic,
			Reason:   fmt.Sprintf("%s is a weak area; targeted drills raise it fastest", topic),
		})
	}

	// Study-habit nudge.
	if profile != nil && profile.Consistency*100 < cfg.ConsistencyBelow {
		add(Recommendation{
			Priority: PriorityMedium,
			Action:   "build-daily-habit",
			Reason:   fmt.Sprintf("practice on %.0f%% of days is below the %.0f%% consistency bar; short daily sessions beat cramming", profile.Consistency*100, cfg.ConsistencyBelow),
		})
	}

	if cfg.MaxItems > 0 && len(recs) > cfg.MaxItems {
		recs = recs[:cfg.MaxItems]
	}
	return recs
}

// overallAccuracy prefers the attempt score when present, falling back to
// the windowed profile accuracy.
func overallAccuracy(profile *progress.PerformanceProfile, eval *evaluation.Result) (float64, bool) {
	if eval != nil {
		return eval.Score, true
	}
	if profile != nil && profile.TotalQuestions > 0 {
		return profile.Accuracy * 100, true
	}
	return 0, false
}

// weakAreas prefers the attempt-scoped weak list (already weakest-first),
// then appends profile weak areas not already present.
func weakAreas(profile *progress.PerformanceProfile, eval *evaluation.Result) []string {
	var areas []string
	seen := make(map[string]bool)
	if eval != nil {
		for _, t := range eval.Breakdown.WeakAreas {
			if !seen[t] {
				seen[t] = true
				areas = append(areas, t)
			}
		}
	}
	if profile != nil {
		for _, t := range profile.WeakAreas {
			if !seen[t] {
				seen[t] = true
				areas = append(areas, t)
			}
		}
	}
	return areas
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
