package progress

import (
	"testing"
	"time"
)

var (
	windowFrom = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	windowTo   = time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC)
)

func topicOutcomes(topic string, correct, total int, at time.Time) []Outcome {
	var os []Outcome
	for i := 0; i < total; i++ {
		os = append(os, Outcome{Topic: topic, Subject: "math", Correct: i < correct, At: at})
	}
	return os
}

func TestAnalyze_EmptyWindow(t *testing.T) {
	p := Analyze(DefaultConfig(), nil, windowFrom, windowTo)
	if p.Accuracy != 0 || p.TotalQuestions != 0 {
		t.Errorf("empty window: accuracy = %v, total = %d, want zeros", p.Accuracy, p.TotalQuestions)
	}
	if len(p.WeakAreas) != 0 || len(p.StrongAreas) != 0 {
		t.Errorf("empty window produced areas: weak=%v strong=%v", p.WeakAreas, p.StrongAreas)
	}
}

func TestAnalyze_OverallAccuracy(t *testing.T) {
	at := windowFrom.Add(24 * time.Hour)
	outcomes := topicOutcomes("algebra", 7, 10, at)

	p := Analyze(DefaultConfig(), outcomes, windowFrom, windowTo)
	if p.TotalQuestions != 10 || p.TotalCorrect != 7 {
		t.Fatalf("totals = %d/%d, want 7/10", p.TotalCorrect, p.TotalQuestions)
	}
	if p.Accuracy != 0.7 {
		t.Errorf("Accuracy = %v, want 0.7", p.Accuracy)
	}
}

func TestAnalyze_OutsideWindowIgnored(t *testing.T) {
	outcomes := append(
		topicOutcomes("algebra", 2, 2, windowFrom.Add(time.Hour)),
		Outcome{Topic: "algebra", Correct: false, At: windowFrom.Add(-time.Hour)},
		Outcome{Topic: "algebra", Correct: false, At: windowTo.Add(time.Hour)},
	)

	p := Analyze(DefaultConfig(), outcomes, windowFrom, windowTo)
	if p.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d, want 2", p.TotalQuestions)
	}
	if p.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", p.Accuracy)
	}
}

func TestAnalyze_WeakBoundaryExact(t *testing.T) {
	// Exactly 60% mastery is NOT weak (strict <60).
	at := windowFrom.Add(24 * time.Hour)
	outcomes := topicOutcomes("boundary", 3, 5, at) // 60%
	outcomes = append(outcomes, topicOutcomes("weak", 1, 2, at)...) // 50%

	p := Analyze(DefaultConfig(), outcomes, windowFrom, windowTo)
	for _, topic := range p.WeakAreas {
		if topic == "boundary" {
			t.Error("topic at exactly 60% classified weak")
		}
	}
	if len(p.WeakAreas) != 1 || p.WeakAreas[0] != "weak" {
		t.Errorf("WeakAreas = %v, want [weak]", p.WeakAreas)
	}
}

func TestAnalyze_StrongBoundaryExact(t *testing.T) {
	// Exactly 75% mastery IS strong (>=75).
	at := windowFrom.Add(24 * time.Hour)
	outcomes := topicOutcomes("boundary", 3, 4, at) // 75%

	p := Analyze(DefaultConfig(), outcomes, windowFrom, windowTo)
	if len(p.StrongAreas) != 1 || p.StrongAreas[0] != "boundary" {
		t.Errorf("StrongAreas = %v, want [boundary]", p.StrongAreas)
	}
}

func TestAnalyze_WeakAreasSortedAndCapped(t *testing.T) {
	at := windowFrom.Add(24 * time.Hour)
	var outcomes []Outcome
	// Seven weak topics with distinct accuracies 0%..30%.
	topics := []struct {
		name    string
		correct int
	}{
		{"t0", 0}, {"t1", 1}, {"t2", 2}, {"t3", 3}, {"t4", 4}, {"t5", 5}, {"t6", 5},
	}
	for _, tt := range topics {
		outcomes = append(outcomes, topicOutcomes(tt.name, tt.correct, 10, at)...)
	}

	p := Analyze(DefaultConfig(), outcomes, windowFrom, windowTo)
	if len(p.WeakAreas) != 5 {
		t.Fatalf("WeakAreas = %v, want 5 entries", p.WeakAreas)
	}
	if p.WeakAreas[0] != "t0" || p.WeakAreas[1] != "t1" {
		t.Errorf("WeakAreas = %v, want weakest first", p.WeakAreas)
	}
}

func TestAnalyze_StrongAreasSortedAndCapped(t *testing.T) {
	at := windowFrom.Add(24 * time.Hour)
	var outcomes []Outcome
	topics := []struct {
		name    string
		correct int
	}{
		{"s1", 8}, {"s2", 9}, {"s3", 10}, {"s4", 8},
	}
	for _, tt := range topics {
		outcomes = append(outcomes, topicOutcomes(tt.name, tt.correct, 10, at)...)
	}

	p := Analyze(DefaultConfig(), outcomes, windowFrom, windowTo)
	if len(p.StrongAreas) != 3 {
		t.Fatalf("StrongAreas = %v, want 3 entries", p.StrongAreas)
	}
	if p.StrongAreas[0] != "s3" || p.StrongAreas[1] != "s2" {
		t.Errorf("StrongAreas = %v, want strongest first", p.StrongAreas)
	}
}

func TestAnalyze_Consistency(t *testing.T) {
	// 10-day window, practice on 5 distinct days.
	var outcomes []Outcome
	for day := 0; day < 5; day++ {
		outcomes = append(outcomes, Outcome{Topic: "algebra", Correct: true, At: windowFrom.AddDate(0, 0, day).Add(time.Hour)})
	}

	p := Analyze(DefaultConfig(), outcomes, windowFrom, windowTo)
	if p.Consistency != 0.5 {
		t.Errorf("Consistency = %v, want 0.5", p.Consistency)
	}
}

func TestAnalyze_ConsistencyDenominatorCapped(t *testing.T) {
	// 90-day window: the denominator caps at 30, so 30 active days scores 1.
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 90)
	var outcomes []Outcome
	for day := 0; day < 30; day++ {
		outcomes = append(outcomes, Outcome{Topic: "algebra", Correct: true, At: from.AddDate(0, 0, day).Add(time.Hour)})
	}

	p := Analyze(DefaultConfig(), outcomes, from, to)
	if p.Consistency != 1.0 {
		t.Errorf("Consistency = %v, want 1.0", p.Consistency)
	}
}

func TestAnalyze_ImprovementRate(t *testing.T) {
	// First half 50% accurate, second half 75%: improvement 0.5.
	var outcomes []Outcome
	firstHalf := windowFrom.Add(24 * time.Hour)
	secondHalf := windowFrom.AddDate(0, 0, 8)
	outcomes = append(outcomes, topicOutcomes("algebra", 2, 4, firstHalf)...)
	outcomes = append(outcomes, topicOutcomes("algebra", 3, 4, secondHalf)...)

	p := Analyze(DefaultConfig(), outcomes, windowFrom, windowTo)
	if p.ImprovementRate != 0.5 {
		t.Errorf("ImprovementRate = %v, want 0.5", p.ImprovementRate)
	}
}

func TestAnalyze_ImprovementRateZeroBaseline(t *testing.T) {
	// All attempts in the second half: no baseline, rate 0 (no div by zero).
	outcomes := topicOutcomes("algebra", 3, 4, windowFrom.AddDate(0, 0, 8))
	p := Analyze(DefaultConfig(), outcomes, windowFrom, windowTo)
	if p.ImprovementRate != 0 {
		t.Errorf("ImprovementRate = %v, want 0", p.ImprovementRate)
	}
}

func TestAnalyze_TopicConfidence(t *testing.T) {
	// 10 attempts at 70%: confidence = 0.4*1 + 0.6*0.7 = 0.82.
	at := windowFrom.Add(24 * time.Hour)
	p := Analyze(DefaultConfig(), topicOutcomes("algebra", 7, 10, at), windowFrom, windowTo)

	tm, ok := p.TopicMastery["algebra"]
	if !ok {
		t.Fatal("missing topic mastery for algebra")
	}
	if tm.Mastery != 70 {
		t.Errorf("Mastery = %v, want 70", tm.Mastery)
	}
	if tm.Confidence < 0.8199 || tm.Confidence > 0.8201 {
		t.Errorf("Confidence = %v, want 0.82", tm.Confidence)
	}
}

func TestAnalyze_ConfidenceVolumeSaturates(t *testing.T) {
	// 20 attempts don't push the volume component past 1.
	at := windowFrom.Add(24 * time.Hour)
	p := Analyze(DefaultConfig(), topicOutcomes("algebra", 20, 20, at), windowFrom, windowTo)
	tm := p.TopicMastery["algebra"]
	if tm.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", tm.Confidence)
	}
}

func TestAnalyze_SubjectAccuracy(t *testing.T) {
	at := windowFrom.Add(24 * time.Hour)
	outcomes := []Outcome{
		{Topic: "algebra", Subject: "math", Correct: true, At: at},
		{Topic: "algebra", Subject: "math", Correct: false, At: at},
		{Topic: "optics", Subject: "physics", Correct: true, At: at},
	}

	p := Analyze(DefaultConfig(), outcomes, windowFrom, windowTo)
	if p.SubjectAccuracy["math"] != 0.5 {
		t.Errorf("math accuracy = %v, want 0.5", p.SubjectAccuracy["math"])
	}
	if p.SubjectAccuracy["physics"] != 1.0 {
		t.Errorf("physics accuracy = %v, want 1.0", p.SubjectAccuracy["physics"])
	}
}
