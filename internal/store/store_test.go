package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendReviewEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendReviewEvent(ctx, ReviewEventData{
		ItemID:       "item-1",
		Topic:        "algebra",
		Difficulty:   "medium",
		Performance:  0.8,
		IntervalDays: 2,
		NextReview:   time.Now().UTC().AddDate(0, 0, 2),
	})
	if err != nil {
		t.Fatalf("append review event: %v", err)
	}

	count, err := s.Client().ReviewEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("review events = %d, want 1", count)
	}
}

func TestAnswerOutcomesRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	correct := true
	wrong := false
	events := []AnswerEventData{
		{AttemptID: "a1", ItemID: "q1", Topic: "algebra", Subject: "math", QuestionType: "single_choice", Difficulty: "easy", Correct: &correct, Answered: true, Awarded: 1, TimeSecs: 30},
		{AttemptID: "a1", ItemID: "q2", Topic: "optics", Subject: "physics", QuestionType: "numeric", Difficulty: "hard", Correct: &wrong, Answered: true, Awarded: -0.25, TimeSecs: 90},
		{AttemptID: "a1", ItemID: "q3", Topic: "essay", QuestionType: "free_text", Difficulty: "medium", Correct: nil, Answered: true, TimeSecs: 200},
	}
	for i, e := range events {
		if err := repo.AppendAnswerEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	from := time.Now().UTC().Add(-time.Hour)
	to := time.Now().UTC().Add(time.Hour)
	got, err := repo.AnswerOutcomes(ctx, from, to)
	if err != nil {
		t.Fatalf("answer outcomes: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("outcomes = %d, want 3", len(got))
	}
	if got[0].ItemID != "q1" || got[0].Correct == nil || !*got[0].Correct {
		t.Errorf("got[0] = %+v, want correct q1", got[0])
	}
	if got[1].Correct == nil || *got[1].Correct {
		t.Errorf("got[1].Correct should be false")
	}
	if got[2].Correct != nil {
		t.Errorf("free-text correctness should round-trip as nil, got %v", *got[2].Correct)
	}
}

func TestAnswerOutcomesWindowFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	correct := true
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		AttemptID: "a1", ItemID: "q1", Topic: "algebra",
		QuestionType: "single_choice", Difficulty: "easy",
		Correct: &correct, Answered: true, TimeSecs: 10,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	// A window entirely in the past must exclude the fresh event.
	past := time.Now().UTC().Add(-48 * time.Hour)
	got, err := repo.AnswerOutcomes(ctx, past, past.Add(time.Hour))
	if err != nil {
		t.Fatalf("answer outcomes: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("outcomes = %d, want 0 outside window", len(got))
	}
}

func TestRecentTopicOutcomes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	correct := true
	wrong := false
	// Five algebra answers and one geometry answer.
	for i := 0; i < 5; i++ {
		c := &correct
		if i == 0 {
			c = &wrong
		}
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			AttemptID: "a1", ItemID: "q", Topic: "algebra",
			QuestionType: "single_choice", Difficulty: "easy",
			Correct: c, Answered: true, TimeSecs: 10,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		AttemptID: "a1", ItemID: "q", Topic: "geometry",
		QuestionType: "single_choice", Difficulty: "easy",
		Correct: &correct, Answered: true, TimeSecs: 10,
	}); err != nil {
		t.Fatalf("append geometry: %v", err)
	}

	since := time.Now().UTC().Add(-time.Hour)
	got, err := repo.RecentTopicOutcomes(ctx, "algebra", 3, since)
	if err != nil {
		t.Fatalf("recent topic outcomes: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("outcomes = %d, want 3 (limited)", len(got))
	}
	for _, o := range got {
		if o.Topic != "algebra" {
			t.Errorf("topic = %s, want algebra", o.Topic)
		}
	}
}

func TestAppendAttemptEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAttemptEvent(ctx, AttemptEventData{
		AttemptID:        "a1",
		Score:            70,
		MarksAwarded:     7,
		MaxMarks:         10,
		CorrectAnswers:   7,
		IncorrectAnswers: 3,
		TotalTimeSecs:    600,
		Status:           "completed",
	})
	if err != nil {
		t.Fatalf("append attempt event: %v", err)
	}

	ae, err := s.Client().AttemptEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if ae.Score != 70 || ae.CorrectAnswers != 7 {
		t.Errorf("attempt event = %+v, want score 70, correct 7", ae)
	}
}

func TestAppendGenRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendGenRequest(ctx, GenRequestEventData{
		Provider:       "openai",
		Model:          "gpt-4o-mini",
		Purpose:        "item-generation",
		InputTokens:    900,
		OutputTokens:   400,
		LatencyMs:      1200,
		Success:        true,
		ItemsGenerated: 5,
	})
	if err != nil {
		t.Fatalf("append gen request: %v", err)
	}

	count, err := s.Client().GenRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("gen request events = %d, want 1", count)
	}
}

func TestRecentGenRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendGenRequest(ctx, GenRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "item-generation",
			InputTokens:  100 + i,
			OutputTokens: 50,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append gen request %d: %v", i, err)
		}
	}

	got, err := repo.RecentGenRequests(ctx, 2)
	if err != nil {
		t.Fatalf("recent gen requests: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first: the last append carries the highest input token count.
	if got[0].InputTokens != 102 {
		t.Errorf("newest InputTokens = %d, want 102", got[0].InputTokens)
	}
	if got[0].Model != "mock-model" || !got[0].Success {
		t.Errorf("row = %+v, want mock-model/success", got[0])
	}
}

func TestGenUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rows := []GenRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "item-generation", InputTokens: 100, OutputTokens: 40, LatencyMs: 1000, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "item-generation", InputTokens: 200, OutputTokens: 60, LatencyMs: 3000, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "item-generation", InputTokens: 50, OutputTokens: 20, LatencyMs: 500, Success: true},
		// Excluded from usage: fallback degradations cost nothing.
		{Provider: "fallback", Model: "item-bank", Purpose: "item-generation", Success: true, FallbackUsed: true, ItemsGenerated: 3},
	}
	for i, d := range rows {
		if err := repo.AppendGenRequest(ctx, d); err != nil {
			t.Fatalf("append gen request %d: %v", i, err)
		}
	}

	usage, err := repo.GenUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("models = %d, want 2", len(usage))
	}

	byModel := make(map[string]GenUsage, len(usage))
	for _, u := range usage {
		byModel[u.Model] = u
	}
	mini := byModel["gpt-4o-mini"]
	if mini.Calls != 2 || mini.InputTokens != 300 || mini.OutputTokens != 100 {
		t.Errorf("gpt-4o-mini usage = %+v, want 2 calls, 300 in, 100 out", mini)
	}
	if mini.AvgLatencyMs != 2000 {
		t.Errorf("gpt-4o-mini avg latency = %v, want 2000", mini.AvgLatencyMs)
	}
	haiku := byModel["claude-haiku"]
	if haiku.Calls != 1 || haiku.InputTokens != 50 {
		t.Errorf("claude-haiku usage = %+v, want 1 call, 50 in", haiku)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	correct := true
	if err := repo.AppendReviewEvent(ctx, ReviewEventData{
		ItemID: "i1", Topic: "algebra", Difficulty: "easy",
		Performance: 1, IntervalDays: 1, NextReview: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("append review: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		AttemptID: "a1", ItemID: "i1", Topic: "algebra",
		QuestionType: "single_choice", Difficulty: "easy",
		Correct: &correct, Answered: true, TimeSecs: 10,
	}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	re, err := s.Client().ReviewEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query review: %v", err)
	}
	ae, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer: %v", err)
	}
	if ae.Sequence <= re.Sequence {
		t.Errorf("answer sequence %d not after review sequence %d", ae.Sequence, re.Sequence)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
