package recommend

import (
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/progress"
)

func profileWith(accuracy, consistency float64) *progress.PerformanceProfile {
	return &progress.PerformanceProfile{
		TotalQuestions:  20,
		TotalCorrect:    int(accuracy * 20),
		Accuracy:        accuracy,
		Consistency:     consistency,
		SubjectAccuracy: map[string]float64{},
		TopicMastery:    map[string]progress.TopicMastery{},
	}
}

func actions(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Action
	}
	return out
}

func TestBuild_LowAccuracyTriggersFoundation(t *testing.T) {
	recs := Build(DefaultConfig(), profileWith(0.4, 1.0), nil)
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	if recs[0].Action != "revisit-fundamentals" {
		t.Errorf("recs[0].Action = %s, want revisit-fundamentals", recs[0].Action)
	}
	if recs[0].Priority != PriorityHigh {
		t.Errorf("foundation priority = %s, want high", recs[0].Priority)
	}
}

func TestBuild_MidAccuracyTriggersPractice(t *testing.T) {
	recs := Build(DefaultConfig(), profileWith(0.65, 1.0), nil)
	if len(recs) == 0 || recs[0].Action != "increase-practice-volume" {
		t.Fatalf("actions = %v, want increase-practice-volume first", actions(recs))
	}
	if recs[0].Priority != PriorityMedium {
		t.Errorf("practice priority = %s, want medium", recs[0].Priority)
	}
}

func TestBuild_HighAccuracyNoAccuracyTriggers(t *testing.T) {
	recs := Build(DefaultConfig(), profileWith(0.9, 1.0), nil)
	for _, r := range recs {
		if r.Action == "revisit-fundamentals" || r.Action == "increase-practice-volume" {
			t.Errorf("unexpected accuracy trigger %s at 90%%", r.Action)
		}
	}
}

func TestBuild_TimedDrillsOnSlowAttempt(t *testing.T) {
	eval := &evaluation.Result{
		Score:     80,
		Breakdown: evaluation.Breakdown{TooSlow: 4, TooFast: 1},
	}
	recs := Build(DefaultConfig(), nil, eval)
	found := false
	for _, r := range recs {
		if r.Action == "practice-timed-drills" {
			found = true
		}
	}
	if !found {
		t.Errorf("actions = %v, want practice-timed-drills", actions(recs))
	}
}

func TestBuild_NoTimedDrillsWhenBalanced(t *testing.T) {
	eval := &evaluation.Result{
		Score:     80,
		Breakdown: evaluation.Breakdown{TooSlow: 2, TooFast: 2},
	}
	for _, r := range Build(DefaultConfig(), nil, eval) {
		if r.Action == "practice-timed-drills" {
			t.Error("timed drills triggered with balanced pacing")
		}
	}
}

func TestBuild_WeakSubjects(t *testing.T) {
	p := profileWith(0.8, 1.0)
	p.SubjectAccuracy = map[string]float64{
		"physics":   0.45,
		"math":      0.85,
		"chemistry": 0.55,
	}
	recs := Build(DefaultConfig(), p, nil)

	var subjects []string
	for _, r := range recs {
		if r.Action == "focus-subject" {
			subjects = append(subjects, r.Topic)
		}
	}
	// Weak subjects in deterministic (sorted) order, math absent.
	if len(subjects) != 2 || subjects[0] != "chemistry" || subjects[1] != "physics" {
		t.Errorf("focus subjects = %v, want [chemistry physics]", subjects)
	}
}

func TestBuild_WeakTopicsAttemptBeforeProfile(t *testing.T) {
	p := profileWith(0.8, 1.0)
	p.WeakAreas = []string{"optics", "algebra"}
	eval := &evaluation.Result{
		Score:     80,
		Breakdown: evaluation.Breakdown{WeakAreas: []string{"algebra", "trig"}},
	}
	recs := Build(DefaultConfig(), p, eval)

	var topics []string
	for _, r := range recs {
		if r.Action == "drill-weak-topic" {
			topics = append(topics, r.Topic)
		}
	}
	// Attempt weak areas first, profile extras after, no duplicate algebra.
	want := []string{"algebra", "trig", "optics"}
	if len(topics) != len(want) {
		t.Fatalf("weak topics = %v, want %v", topics, want)
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("weak topics = %v, want %v", topics, want)
			break
		}
	}
}

func TestBuild_ConsistencyNudge(t *testing.T) {
	recs := Build(DefaultConfig(), profileWith(0.9, 0.3), nil)
	found := false
	for _, r := range recs {
		if r.Action == "build-daily-habit" {
			found = true
			if r.Priority != PriorityMedium {
				t.Errorf("habit priority = %s, want medium", r.Priority)
			}
		}
	}
	if !found {
		t.Errorf("actions = %v, want build-daily-habit", actions(recs))
	}
}

func TestBuild_Dedupes(t *testing.T) {
	p := profileWith(0.8, 1.0)
	p.WeakAreas = []string{"algebra"}
	eval := &evaluation.Result{
		Score:     80,
		Breakdown: evaluation.Breakdown{WeakAreas: []string{"algebra"}},
	}
	recs := Build(DefaultConfig(), p, eval)

	count := 0
	for _, r := range recs {
		if r.Action == "drill-weak-topic" && r.Topic == "algebra" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("algebra drilled %d times, want 1", count)
	}
}

func TestBuild_CappedAtMaxItems(t *testing.T) {
	p := profileWith(0.3, 0.2)
	p.SubjectAccuracy = map[string]float64{"a": 0.1, "b": 0.2, "c": 0.3}
	p.WeakAreas = []string{"t1", "t2", "t3", "t4", "t5"}

	recs := Build(DefaultConfig(), p, nil)
	if len(recs) > DefaultConfig().MaxItems {
		t.Errorf("got %d recommendations, cap is %d", len(recs), DefaultConfig().MaxItems)
	}
}

func TestBuild_NilInputs(t *testing.T) {
	if recs := Build(DefaultConfig(), nil, nil); len(recs) != 0 {
		t.Errorf("Build(nil, nil) = %v, want none", recs)
	}
}

func TestBuild_AttemptScorePreferred(t *testing.T) {
	// Profile says 90% but the attempt scored 30%: foundation trigger fires.
	eval := &evaluation.Result{Score: 30}
	recs := Build(DefaultConfig(), profileWith(0.9, 1.0), eval)
	if len(recs) == 0 || recs[0].Action != "revisit-fundamentals" {
		t.Errorf("actions = %v, want revisit-fundamentals first", actions(recs))
	}
}

func TestPathFor_Bands(t *testing.T) {
	tests := []struct {
		accuracy   float64
		wantPhases int
		wantDays   int
	}{
		{10, 3, 35},
		{39.9, 3, 35},
		{40, 2, 21}, // boundary: exactly 40 leaves foundation behind
		{55, 2, 21},
		{70, 1, 7}, // boundary: exactly 70 is refinement
		{95, 1, 7},
	}
	for _, tt := range tests {
		path := PathFor(tt.accuracy, nil)
		if len(path.Phases) != tt.wantPhases {
			t.Errorf("PathFor(%v) phases = %d, want %d", tt.accuracy, len(path.Phases), tt.wantPhases)
		}
		if path.EstimatedDays != tt.wantDays {
			t.Errorf("PathFor(%v) days = %d, want %d", tt.accuracy, path.EstimatedDays, tt.wantDays)
		}
	}
}

func TestPathFor_WeakAreasInFocus(t *testing.T) {
	path := PathFor(30, []string{"algebra", "optics"})
	if !strings.Contains(path.Phases[0].Focus, "algebra") {
		t.Errorf("first phase focus %q does not mention weak areas", path.Phases[0].Focus)
	}
}
