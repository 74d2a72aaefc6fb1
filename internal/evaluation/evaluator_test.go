package evaluation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/prepdeck/prepdeck/internal/item"
)

func singleChoiceItem(id, topic, correct string) item.LearningItem {
	return item.LearningItem{
		ID:             id,
		Topic:          topic,
		Subject:        "math",
		Difficulty:     item.DifficultyMedium,
		Type:           item.TypeSingleChoice,
		Key:            item.AnswerKey{Choice: correct},
		Marks:          1,
		AllottedSecs:   60,
		CognitiveLevel: item.LevelApply,
	}
}

func itemMap(items ...item.LearningItem) map[string]item.LearningItem {
	m := make(map[string]item.LearningItem, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}

func choiceAnswer(itemID, choice string, secs int) AnswerRecord {
	return AnswerRecord{ItemID: itemID, Response: item.Response{Choice: choice}, TimeSpentSecs: secs}
}

func TestEvaluate_TenQuestionsSevenCorrect(t *testing.T) {
	var answers []AnswerRecord
	items := make(map[string]item.LearningItem)
	for i := 0; i < 10; i++ {
		id := string(rune('a' + i))
		items[id] = singleChoiceItem(id, "algebra", "B")
		given := "B"
		if i >= 7 {
			given = "C"
		}
		answers = append(answers, choiceAnswer(id, given, 60))
	}

	res, err := Evaluate(DefaultConfig(), Attempt{ID: "t1", Answers: answers, Status: StatusCompleted}, items)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if res.Score != 70.0 {
		t.Errorf("Score = %v, want 70.0", res.Score)
	}
	if res.CorrectAnswers != 7 {
		t.Errorf("CorrectAnswers = %d, want 7", res.CorrectAnswers)
	}
	if res.IncorrectAnswers != 3 {
		t.Errorf("IncorrectAnswers = %d, want 3", res.IncorrectAnswers)
	}
}

func TestEvaluate_NegativeMarking(t *testing.T) {
	it := singleChoiceItem("q1", "algebra", "B")
	it.Marks = 4
	it.NegativeMarks = 1
	it2 := singleChoiceItem("q2", "algebra", "B")
	it2.Marks = 4
	it2.NegativeMarks = 1

	attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
		choiceAnswer("q1", "B", 60),
		choiceAnswer("q2", "C", 60),
	}}

	res, err := Evaluate(DefaultConfig(), attempt, itemMap(it, it2))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if res.MarksAwarded != 3 { // 4 - 1
		t.Errorf("MarksAwarded = %v, want 3", res.MarksAwarded)
	}
	if res.MaxMarks != 8 {
		t.Errorf("MaxMarks = %v, want 8", res.MaxMarks)
	}
	if res.Score != 37.5 {
		t.Errorf("Score = %v, want 37.5", res.Score)
	}
}

func TestEvaluate_WrongAnswerFloorsAtNegativeMarks(t *testing.T) {
	it := singleChoiceItem("q1", "algebra", "B")
	it.Marks = 4
	it.NegativeMarks = 1

	attempt := Attempt{ID: "t1", Answers: []AnswerRecord{choiceAnswer("q1", "C", 60)}}
	res, err := Evaluate(DefaultConfig(), attempt, itemMap(it))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if res.Questions[0].Awarded != -1 {
		t.Errorf("Awarded = %v, want -1", res.Questions[0].Awarded)
	}
}

func TestEvaluate_UnansweredAwardsZero(t *testing.T) {
	it := singleChoiceItem("q1", "algebra", "B")
	it.NegativeMarks = 1

	attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
		{ItemID: "q1", Response: item.Response{}, TimeSpentSecs: 5},
	}}
	res, err := Evaluate(DefaultConfig(), attempt, itemMap(it))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if res.Unanswered != 1 {
		t.Errorf("Unanswered = %d, want 1", res.Unanswered)
	}
	if res.Questions[0].Awarded != 0 {
		t.Errorf("skipped question Awarded = %v, want 0 (no negative marking)", res.Questions[0].Awarded)
	}
	if res.MaxMarks != 1 {
		t.Errorf("MaxMarks = %v, want 1 (skipped question stays in denominator)", res.MaxMarks)
	}
}

func TestEvaluate_MultiChoiceSetEquality(t *testing.T) {
	it := item.LearningItem{
		ID: "q1", Topic: "algebra", Type: item.TypeMultiChoice,
		Difficulty: item.DifficultyMedium,
		Key:        item.AnswerKey{Choices: []string{"A", "C"}},
		Marks:      2, AllottedSecs: 90,
	}

	tests := []struct {
		name  string
		given []string
		want  bool
	}{
		{"exact set", []string{"A", "C"}, true},
		{"order independent", []string{"C", "A"}, true},
		{"missing member", []string{"A"}, false},
		{"extra member", []string{"A", "C", "D"}, false},
		{"wrong member", []string{"A", "B"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
				{ItemID: "q1", Response: item.Response{Choices: tt.given}, TimeSpentSecs: 60},
			}}
			res, err := Evaluate(DefaultConfig(), attempt, itemMap(it))
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got := *res.Questions[0].Correct; got != tt.want {
				t.Errorf("correct = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_NumericTolerance(t *testing.T) {
	it := item.LearningItem{
		ID: "q1", Topic: "physics", Type: item.TypeNumeric,
		Difficulty: item.DifficultyMedium,
		Key:        item.AnswerKey{Number: 100},
		Marks:      1, AllottedSecs: 120,
	}

	tests := []struct {
		given float64
		want  bool
	}{
		{100, true},
		{100.9, true}, // within 1%
		{99.1, true},
		{101, true}, // exactly at tolerance
		{102, false},
		{98, false},
	}
	for _, tt := range tests {
		given := tt.given
		attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
			{ItemID: "q1", Response: item.Response{Number: &given}, TimeSpentSecs: 60},
		}}
		res, err := Evaluate(DefaultConfig(), attempt, itemMap(it))
		if err != nil {
			t.Fatalf("Evaluate() error = %v", err)
		}
		if got := *res.Questions[0].Correct; got != tt.want {
			t.Errorf("given %v: correct = %v, want %v", tt.given, got, tt.want)
		}
	}
}

func TestEvaluate_FreeTextManualReview(t *testing.T) {
	ft := item.LearningItem{
		ID: "q1", Topic: "essay", Type: item.TypeFreeText,
		Difficulty: item.DifficultyMedium, Marks: 5, AllottedSecs: 300,
	}
	sc := singleChoiceItem("q2", "algebra", "B")

	attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
		{ItemID: "q1", Response: item.Response{Text: "Because momentum is conserved."}, TimeSpentSecs: 200},
		choiceAnswer("q2", "B", 60),
	}}

	res, err := Evaluate(DefaultConfig(), attempt, itemMap(ft, sc))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if res.Questions[0].Correct != nil {
		t.Error("free-text correctness should be nil")
	}
	if !reflect.DeepEqual(res.ManualReview, []string{"q1"}) {
		t.Errorf("ManualReview = %v, want [q1]", res.ManualReview)
	}
	// Free-text excluded from automatic scoring entirely.
	if res.MaxMarks != 1 {
		t.Errorf("MaxMarks = %v, want 1", res.MaxMarks)
	}
	if res.Score != 100 {
		t.Errorf("Score = %v, want 100", res.Score)
	}
}

func TestEvaluate_TimeBuckets(t *testing.T) {
	items := itemMap(
		singleChoiceItem("fast", "algebra", "B"),
		singleChoiceItem("ok", "algebra", "B"),
		singleChoiceItem("slow", "algebra", "B"),
	)
	// Allotted is 60s: <30 too fast, >90 too slow.
	attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
		choiceAnswer("fast", "B", 20),
		choiceAnswer("ok", "B", 60),
		choiceAnswer("slow", "B", 120),
	}}

	res, err := Evaluate(DefaultConfig(), attempt, items)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if res.Breakdown.TooFast != 1 || res.Breakdown.Optimal != 1 || res.Breakdown.TooSlow != 1 {
		t.Errorf("buckets = %d/%d/%d, want 1/1/1",
			res.Breakdown.TooFast, res.Breakdown.Optimal, res.Breakdown.TooSlow)
	}
	want := (20.0 + 60.0 + 120.0) / 3.0
	if res.Breakdown.AvgTimePerQSecs != want {
		t.Errorf("AvgTimePerQSecs = %v, want %v", res.Breakdown.AvgTimePerQSecs, want)
	}
}

func TestEvaluate_TimeBucketBoundaries(t *testing.T) {
	items := itemMap(singleChoiceItem("q1", "algebra", "B"), singleChoiceItem("q2", "algebra", "B"))
	// Exactly 0.5x and 1.5x are both optimal (strict < and >).
	attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
		choiceAnswer("q1", "B", 30),
		choiceAnswer("q2", "B", 90),
	}}
	res, err := Evaluate(DefaultConfig(), attempt, items)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if res.Breakdown.Optimal != 2 {
		t.Errorf("Optimal = %d, want 2", res.Breakdown.Optimal)
	}
}

func TestEvaluate_Breakdown(t *testing.T) {
	alg := singleChoiceItem("q1", "algebra", "B")
	alg.Difficulty = item.DifficultyEasy
	alg.CognitiveLevel = item.LevelRemember
	geo := singleChoiceItem("q2", "geometry", "B")
	geo.Difficulty = item.DifficultyHard
	geo.CognitiveLevel = item.LevelAnalyze

	attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
		choiceAnswer("q1", "B", 60),
		choiceAnswer("q2", "C", 60),
	}}
	res, err := Evaluate(DefaultConfig(), attempt, itemMap(alg, geo))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if got := res.Breakdown.ByTopic["algebra"]; got.Correct != 1 || got.Total != 1 || got.Percentage != 100 {
		t.Errorf("ByTopic[algebra] = %+v", got)
	}
	if got := res.Breakdown.ByTopic["geometry"]; got.Correct != 0 || got.Total != 1 || got.Percentage != 0 {
		t.Errorf("ByTopic[geometry] = %+v", got)
	}
	if got := res.Breakdown.ByDifficulty["easy"]; got.Correct != 1 {
		t.Errorf("ByDifficulty[easy] = %+v", got)
	}
	if got := res.Breakdown.ByCognitiveLevel["analyze"]; got.Total != 1 || got.Correct != 0 {
		t.Errorf("ByCognitiveLevel[analyze] = %+v", got)
	}
	if !reflect.DeepEqual(res.Breakdown.WeakAreas, []string{"geometry"}) {
		t.Errorf("WeakAreas = %v, want [geometry]", res.Breakdown.WeakAreas)
	}
	if !reflect.DeepEqual(res.Breakdown.StrongAreas, []string{"algebra"}) {
		t.Errorf("StrongAreas = %v, want [algebra]", res.Breakdown.StrongAreas)
	}
}

func TestEvaluate_UnknownItemRejectsWholeAttempt(t *testing.T) {
	attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
		choiceAnswer("q1", "B", 60),
		choiceAnswer("ghost", "B", 60),
	}}
	_, err := Evaluate(DefaultConfig(), attempt, itemMap(singleChoiceItem("q1", "algebra", "B")))

	var verr *ValidationError
	if err == nil {
		t.Fatal("expected error for unknown item")
	}
	if !errors.As(err, &verr) || verr.ItemID != "ghost" {
		t.Errorf("error = %v, want ValidationError for ghost", err)
	}
}

func TestEvaluate_MalformedShapeRejected(t *testing.T) {
	n := 42.0
	attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
		{ItemID: "q1", Response: item.Response{Number: &n}, TimeSpentSecs: 10},
	}}
	_, err := Evaluate(DefaultConfig(), attempt, itemMap(singleChoiceItem("q1", "algebra", "B")))
	if err == nil {
		t.Fatal("expected shape validation error")
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	items := itemMap(
		singleChoiceItem("q1", "algebra", "B"),
		singleChoiceItem("q2", "geometry", "A"),
	)
	attempt := Attempt{ID: "t1", Answers: []AnswerRecord{
		choiceAnswer("q1", "B", 45),
		choiceAnswer("q2", "C", 80),
	}}

	first, err := Evaluate(DefaultConfig(), attempt, items)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	second, err := Evaluate(DefaultConfig(), attempt, items)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Evaluate() not deterministic for identical input")
	}
}
