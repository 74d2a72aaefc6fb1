package progress

import (
	"sort"
	"time"
)

// Outcome is one labelled answer outcome inside the analysis window.
type Outcome struct {
	Topic    string
	Subtopic string
	Subject  string
	Correct  bool
	At       time.Time
}

// TopicMastery summarizes a single topic within the window.
type TopicMastery struct {
	Mastery       float64   `json:"mastery"`    // [0,100]
	Confidence    float64   `json:"confidence"` // [0,1]
	Attempts      int       `json:"attempts"`
	Correct       int       `json:"correct"`
	LastPracticed time.Time `json:"last_practiced"`
}

// PerformanceProfile is a time-windowed summary of a learner's accuracy,
// consistency, improvement, and per-topic mastery. It is a derived view:
// recomputed from the outcome history, never stored authoritatively.
type PerformanceProfile struct {
	From            time.Time               `json:"from"`
	To              time.Time               `json:"to"`
	TotalQuestions  int                     `json:"total_questions"`
	TotalCorrect    int                     `json:"total_correct"`
	Accuracy        float64                 `json:"accuracy"`    // [0,1]
	Consistency     float64                 `json:"consistency"` // [0,1]
	ImprovementRate float64                 `json:"improvement_rate"`
	TopicMastery    map[string]TopicMastery `json:"topic_mastery"`
	SubjectAccuracy map[string]float64      `json:"subject_accuracy"` // [0,1]
	WeakAreas       []string                `json:"weak_areas"`
	StrongAreas     []string                `json:"strong_areas"`
}

// Config holds the classification thresholds and list caps. Mastery
// thresholds are on the [0,100] scale and boundary-exact: weak is strictly
// below WeakBelow, strong is at or above StrongAtLeast.
type Config struct {
	WeakBelow      float64
	StrongAtLeast  float64
	WeakCap        int
	StrongCap      int
	ConsistencyCap int // max days counted toward consistency
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		WeakBelow:      60,
		StrongAtLeast:  75,
		WeakCap:        5,
		StrongCap:      3,
		ConsistencyCap: 30,
	}
}

// ConfidenceAttempts is the attempt count at which the volume component of
// topic confidence saturates.
const ConfidenceAttempts = 10

// Analyze builds a PerformanceProfile from the outcomes recorded between
// from and to. Outcomes outside the window are ignored. Topics with zero
// attempts are excluded entirely; there is no divide-by-zero path.
func Analyze(cfg Config, outcomes []Outcome, from, to time.Time) PerformanceProfile {
	profile := PerformanceProfile{
		From:            from,
		To:              to,
		TopicMastery:    make(map[string]TopicMastery),
		SubjectAccuracy: make(map[string]float64),
	}

	var inWindow []Outcome
	for _, o := range outcomes {
		if o.At.Before(from) || o.At.After(to) {
			continue
		}
		inWindow = append(inWindow, o)
	}
	if len(inWindow) == 0 {
		return profile
	}

	sort.Slice(inWindow, func(i, j int) bool { return inWindow[i].At.Before(inWindow[j].At) })

	activeDays := make(map[string]bool)
	subjectTotal := make(map[string]int)
	subjectCorrect := make(map[string]int)

	for _, o := range inWindow {
		profile.TotalQuestions++
		if o.Correct {
			profile.TotalCorrect++
		}

		tm := profile.TopicMastery[o.Topic]
		tm.Attempts++
		if o.Correct {
			tm.Correct++
		}
		if o.At.After(tm.LastPracticed) {
			tm.LastPracticed = o.At
		}
		profile.TopicMastery[o.Topic] = tm

		if o.Subject != "" {
			subjectTotal[o.Subject]++
			if o.Correct {
				subjectCorrect[o.Subject]++
			}
		}
		activeDays[o.At.UTC().Format("2006-01-02")] = true
	}

	profile.Accuracy = float64(profile.TotalCorrect) / float64(profile.TotalQuestions)
	profile.Consistency = consistencyScore(len(activeDays), from, to, cfg.ConsistencyCap)
	profile.ImprovementRate = improvementRate(inWindow, from, to)

	for topic, tm := range profile.TopicMastery {
		accuracy := float64(tm.Correct) / float64(tm.Attempts)
		tm.Mastery = accuracy * 100
		tm.Confidence = confidence(tm.Attempts, accuracy)
		profile.TopicMastery[topic] = tm
	}
	for subject, total := range subjectTotal {
		profile.SubjectAccuracy[subject] = float64(subjectCorrect[subject]) / float64(total)
	}

	profile.WeakAreas, profile.StrongAreas = classifyAreas(cfg, profile.TopicMastery)
	return profile
}

// consistencyScore is the fraction of window days with at least one
// attempt, with the denominator capped so long windows don't drown out
// steady recent practice.
func consistencyScore(activeDays int, from, to time.Time, cap int) float64 {
	windowDays := int(to.Sub(from).Hours() / 24)
	if windowDays < 1 {
		windowDays = 1
	}
	if cap > 0 && windowDays > cap {
		windowDays = cap
	}
	score := float64(activeDays) / float64(windowDays)
	if score > 1 {
		return 1
	}
	return score
}

// improvementRate compares accuracy in the second half of the window to the
// first half. A first half with no attempts (or zero accuracy) yields 0
// rather than a division error.
func improvementRate(outcomes []Outcome, from, to time.Time) float64 {
	mid := from.Add(to.Sub(from) / 2)

	var earlyTotal, earlyCorrect, lateTotal, lateCorrect int
	for _, o := range outcomes {
		if o.At.Before(mid) {
			earlyTotal++
			if o.Correct {
				earlyCorrect++
			}
		} else {
			lateTotal++
			if o.Correct {
				lateCorrect++
			}
		}
	}
	if earlyTotal == 0 || earlyCorrect == 0 || lateTotal == 0 {
		return 0
	}

	early := float64(earlyCorrect) / float64(earlyTotal)
	late := float64(lateCorrect) / float64(lateTotal)
	return (late - early) / early
}

// confidence weights attempt volume at 40% (saturating at
// ConfidenceAttempts) and accuracy at 60%.
func confidence(attempts int, accuracy float64) float64 {
	volume := float64(attempts) / ConfidenceAttempts
	if volume > 1 {
		volume = 1
	}
	return 0.4*volume + 0.6*accuracy
}

// classifyAreas splits topics into weak (mastery strictly below WeakBelow,
// weakest first, capped) and strong (mastery at or above StrongAtLeast,
// strongest first, capped). Topic name breaks ties for determinism.
func classifyAreas(cfg Config, topics map[string]TopicMastery) (weak, strong []string) {
	type scored struct {
		topic   string
		mastery float64
	}
	var all []scored
	for topic, tm := range topics {
		all = append(all, scored{topic: topic, mastery: tm.Mastery})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].mastery != all[j].mastery {
			return all[i].mastery < all[j].mastery
		}
		return all[i].topic < all[j].topic
	})
	for _, s := range all {
		if s.mastery < cfg.WeakBelow && len(weak) < cfg.WeakCap {
			weak = append(weak, s.topic)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].mastery != all[j].mastery {
			return all[i].mastery > all[j].mastery
		}
		return all[i].topic < all[j].topic
	})
	for _, s := range all {
		if s.mastery >= cfg.StrongAtLeast && len(strong) < cfg.StrongCap {
			strong = append(strong, s.topic)
		}
	}
	return weak, strong
}
