package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/item"
	"github.com/prepdeck/prepdeck/internal/scheduler"
	"github.com/prepdeck/prepdeck/internal/store"
)

// memSnapshots is an in-memory SnapshotRepo.
type memSnapshots struct {
	snaps []*store.Snapshot
}

func (m *memSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	m.snaps = append(m.snaps, snap)
	return nil
}

func (m *memSnapshots) Latest(context.Context) (*store.Snapshot, error) {
	if len(m.snaps) == 0 {
		return nil, nil
	}
	return m.snaps[len(m.snaps)-1], nil
}

func (m *memSnapshots) Prune(_ context.Context, keep int) error {
	if len(m.snaps) > keep {
		m.snaps = m.snaps[len(m.snaps)-keep:]
	}
	return nil
}

// memEvents is an in-memory EventRepo.
type memEvents struct {
	reviews  []store.ReviewEventData
	answers  []store.AnswerEventData
	attempts []store.AttemptEventData
	gens     []store.GenRequestEventData
	at       []time.Time // timestamps for answers, parallel slice
	now      func() time.Time
}

func newMemEvents(clock Clock) *memEvents {
	return &memEvents{now: clock.Now}
}

func (m *memEvents) AppendReviewEvent(_ context.Context, d store.ReviewEventData) error {
	m.reviews = append(m.reviews, d)
	return nil
}

func (m *memEvents) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	m.answers = append(m.answers, d)
	m.at = append(m.at, m.now())
	return nil
}

func (m *memEvents) AppendAttemptEvent(_ context.Context, d store.AttemptEventData) error {
	m.attempts = append(m.attempts, d)
	return nil
}

func (m *memEvents) AppendGenRequest(_ context.Context, d store.GenRequestEventData) error {
	m.gens = append(m.gens, d)
	return nil
}

func (m *memEvents) AnswerOutcomes(_ context.Context, from, to time.Time) ([]store.AnswerOutcome, error) {
	var out []store.AnswerOutcome
	for i, a := range m.answers {
		at := m.at[i]
		if at.Before(from) || at.After(to) {
			continue
		}
		out = append(out, store.AnswerOutcome{
			AttemptID: a.AttemptID, ItemID: a.ItemID,
			Topic: a.Topic, Subtopic: a.Subtopic, Subject: a.Subject,
			Correct: a.Correct, Answered: a.Answered, At: at,
		})
	}
	return out, nil
}

func (m *memEvents) RecentTopicOutcomes(_ context.Context, topic string, lastN int, since time.Time) ([]store.AnswerOutcome, error) {
	var out []store.AnswerOutcome
	for i, a := range m.answers {
		if a.Topic != topic || m.at[i].Before(since) {
			continue
		}
		out = append(out, store.AnswerOutcome{
			Topic: a.Topic, Correct: a.Correct, Answered: a.Answered, At: m.at[i],
		})
	}
	if lastN > 0 && len(out) > lastN {
		out = out[len(out)-lastN:]
	}
	return out, nil
}

func (m *memEvents) RecentGenRequests(_ context.Context, limit int) ([]store.GenRequest, error) {
	return nil, nil
}

func (m *memEvents) GenUsageByModel(_ context.Context) ([]store.GenUsage, error) {
	return nil, nil
}

var testNow = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

func testItem(id, topic string, diff item.Difficulty) item.LearningItem {
	return item.LearningItem{
		ID: id, Topic: topic, Subject: "math", Difficulty: diff,
		Type: item.TypeSingleChoice, Key: item.AnswerKey{Choice: "B"},
		Marks: 1, AllottedSecs: 60, CognitiveLevel: item.LevelApply,
		Question: "pick B",
	}
}

func newTestEngine(t *testing.T, items ...item.LearningItem) (*Engine, *memSnapshots, *memEvents) {
	t.Helper()
	clock := FixedClock{At: testNow}
	snaps := &memSnapshots{}
	events := newMemEvents(clock)

	e, err := New(context.Background(), config.Default(), snaps, events, WithClock(clock))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(items) > 0 {
		if err := e.AddItems(context.Background(), items); err != nil {
			t.Fatalf("AddItems() error = %v", err)
		}
	}
	return e, snaps, events
}

func TestSubmitReview_SchedulesAndPersists(t *testing.T) {
	e, snaps, events := newTestEngine(t, testItem("a", "algebra", item.DifficultyMedium))

	res, err := e.SubmitReview(context.Background(), "a", 0.9, 45)
	if err != nil {
		t.Fatalf("SubmitReview() error = %v", err)
	}
	if res.Record.IntervalDays != 1 {
		t.Errorf("first interval = %d, want 1", res.Record.IntervalDays)
	}
	if res.Mastery <= 0 {
		t.Errorf("mastery = %v, want > 0", res.Mastery)
	}
	if len(events.reviews) != 1 {
		t.Fatalf("review events = %d, want 1", len(events.reviews))
	}
	if events.reviews[0].ItemID != "a" || events.reviews[0].Performance != 0.9 || events.reviews[0].TimeSecs != 45 {
		t.Errorf("event = %+v", events.reviews[0])
	}

	// AddItems persisted once, the review persisted again.
	latest, _ := snaps.Latest(context.Background())
	if latest == nil || len(latest.Data.Progress["a"].Records) != 1 {
		t.Error("snapshot does not carry the recorded review")
	}
}

func TestSubmitReview_UnknownItem(t *testing.T) {
	e, _, _ := newTestEngine(t, testItem("a", "algebra", item.DifficultyMedium))

	_, err := e.SubmitReview(context.Background(), "ghost", 0.9, 30)
	if !errors.Is(err, scheduler.ErrItemNotFound) {
		t.Errorf("error = %v, want ErrItemNotFound", err)
	}
}

func TestSubmitReviews_AtomicOnInvalidPerformance(t *testing.T) {
	items := []item.LearningItem{
		testItem("a", "algebra", item.DifficultyMedium),
		testItem("b", "algebra", item.DifficultyMedium),
		testItem("c", "algebra", item.DifficultyMedium),
	}
	e, _, events := newTestEngine(t, items...)

	reviews := []ReviewInput{
		{ItemID: "a", Performance: 0.9},
		{ItemID: "b", Performance: 0.8},
		{ItemID: "c", Performance: 1.5}, // out of range
	}
	_, err := e.SubmitReviews(context.Background(), reviews)
	if !errors.Is(err, scheduler.ErrInvalidPerformance) {
		t.Fatalf("error = %v, want ErrInvalidPerformance", err)
	}

	// Nothing committed: no events, no mastery, everything still new.
	if len(events.reviews) != 0 {
		t.Errorf("review events = %d, want 0 after rejected batch", len(events.reviews))
	}
	if got, _ := e.ItemMastery("a"); got != 0 {
		t.Errorf("mastery(a) = %v, want 0 after rejected batch", got)
	}
	if len(e.DueItems(0)) != 3 {
		t.Errorf("due = %d, want all 3 still new", len(e.DueItems(0)))
	}
}

func TestSubmitReviews_BatchAppliesInOrder(t *testing.T) {
	e, _, events := newTestEngine(t, testItem("a", "algebra", item.DifficultyMedium))

	// The same item twice in one batch: the second review sees the first.
	results, err := e.SubmitReviews(context.Background(), []ReviewInput{
		{ItemID: "a", Performance: 0.9},
		{ItemID: "a", Performance: 0.9},
	})
	if err != nil {
		t.Fatalf("SubmitReviews() error = %v", err)
	}
	if results[0].Record.IntervalDays != 1 || results[1].Record.IntervalDays != 2 {
		t.Errorf("intervals = %d, %d, want 1 then 2",
			results[0].Record.IntervalDays, results[1].Record.IntervalDays)
	}
	if len(events.reviews) != 2 {
		t.Errorf("review events = %d, want 2", len(events.reviews))
	}
}

func TestDueItems_RoundTrip(t *testing.T) {
	e, _, _ := newTestEngine(t,
		testItem("a", "algebra", item.DifficultyMedium),
		testItem("b", "algebra", item.DifficultyMedium),
	)

	// Review item a with high performance; it leaves the queue.
	if _, err := e.SubmitReview(context.Background(), "a", 0.9, 30); err != nil {
		t.Fatalf("SubmitReview() error = %v", err)
	}

	due := e.DueItems(0)
	if len(due) != 1 || due[0].ID != "b" {
		t.Fatalf("due = %v, want [b]", due)
	}
}

func TestEngine_RestoresFromSnapshot(t *testing.T) {
	clock := FixedClock{At: testNow}
	snaps := &memSnapshots{}
	events := newMemEvents(clock)
	ctx := context.Background()

	first, err := New(ctx, config.Default(), snaps, events, WithClock(clock))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := first.AddItems(ctx, []item.LearningItem{testItem("a", "algebra", item.DifficultyMedium)}); err != nil {
		t.Fatalf("AddItems() error = %v", err)
	}
	if _, err := first.SubmitReview(ctx, "a", 0.7, 30); err != nil {
		t.Fatalf("SubmitReview() error = %v", err)
	}

	// A fresh engine over the same repos sees the same state.
	second, err := New(ctx, config.Default(), snaps, events, WithClock(clock))
	if err != nil {
		t.Fatalf("New() (restore) error = %v", err)
	}
	m1, _ := first.ItemMastery("a")
	m2, err := second.ItemMastery("a")
	if err != nil {
		t.Fatalf("ItemMastery() after restore: %v", err)
	}
	if m1 != m2 {
		t.Errorf("restored mastery = %v, want %v", m2, m1)
	}
	if len(second.Items()) != 1 {
		t.Errorf("restored catalog = %d items, want 1", len(second.Items()))
	}
}

func TestSubmitAttempt_AppendsEvents(t *testing.T) {
	e, _, events := newTestEngine(t,
		testItem("q1", "algebra", item.DifficultyMedium),
		testItem("q2", "geometry", item.DifficultyMedium),
	)

	attempt := evaluation.Attempt{
		ID: "t1",
		Answers: []evaluation.AnswerRecord{
			{ItemID: "q1", Response: item.Response{Choice: "B"}, TimeSpentSecs: 40},
			{ItemID: "q2", Response: item.Response{Choice: "C"}, TimeSpentSecs: 70},
		},
		TotalTimeSecs: 110,
		Status:        evaluation.StatusCompleted,
	}
	result, err := e.SubmitAttempt(context.Background(), attempt)
	if err != nil {
		t.Fatalf("SubmitAttempt() error = %v", err)
	}
	if result.Score != 50 {
		t.Errorf("score = %v, want 50", result.Score)
	}
	if len(events.answers) != 2 {
		t.Fatalf("answer events = %d, want 2", len(events.answers))
	}
	if events.answers[0].Topic != "algebra" || events.answers[1].Topic != "geometry" {
		t.Errorf("answer event topics = %s, %s", events.answers[0].Topic, events.answers[1].Topic)
	}
	if len(events.attempts) != 1 || events.attempts[0].Score != 50 {
		t.Errorf("attempt events = %+v, want one with score 50", events.attempts)
	}
}

func TestSubmitAttempt_RejectedAttemptRecordsNothing(t *testing.T) {
	e, _, events := newTestEngine(t, testItem("q1", "algebra", item.DifficultyMedium))

	attempt := evaluation.Attempt{
		ID: "t1",
		Answers: []evaluation.AnswerRecord{
			{ItemID: "ghost", Response: item.Response{Choice: "B"}, TimeSpentSecs: 40},
		},
	}
	if _, err := e.SubmitAttempt(context.Background(), attempt); err == nil {
		t.Fatal("expected validation error")
	}
	if len(events.answers) != 0 || len(events.attempts) != 0 {
		t.Error("rejected attempt must record no events")
	}
}

func TestProgress_FromAnswerEvents(t *testing.T) {
	e, _, _ := newTestEngine(t,
		testItem("q1", "algebra", item.DifficultyMedium),
		testItem("q2", "algebra", item.DifficultyMedium),
	)

	attempt := evaluation.Attempt{
		ID: "t1",
		Answers: []evaluation.AnswerRecord{
			{ItemID: "q1", Response: item.Response{Choice: "B"}, TimeSpentSecs: 40},
			{ItemID: "q2", Response: item.Response{Choice: "C"}, TimeSpentSecs: 40},
		},
	}
	if _, err := e.SubmitAttempt(context.Background(), attempt); err != nil {
		t.Fatalf("SubmitAttempt() error = %v", err)
	}

	profile, err := e.Progress(context.Background(), testNow.Add(-time.Hour), testNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if profile.TotalQuestions != 2 || profile.TotalCorrect != 1 {
		t.Errorf("profile totals = %d/%d, want 1/2", profile.TotalCorrect, profile.TotalQuestions)
	}
	if profile.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", profile.Accuracy)
	}
}

func TestNextDifficulty_PromotesOnStrongTopic(t *testing.T) {
	e, _, events := newTestEngine(t, testItem("q1", "algebra", item.DifficultyMedium))

	correct := true
	for i := 0; i < 5; i++ {
		events.answers = append(events.answers, store.AnswerEventData{
			Topic: "algebra", Correct: &correct, Answered: true,
		})
		events.at = append(events.at, testNow.Add(-time.Duration(i)*time.Hour))
	}

	got, err := e.NextDifficulty(context.Background(), "algebra", item.DifficultyMedium)
	if err != nil {
		t.Fatalf("NextDifficulty() error = %v", err)
	}
	if got != item.DifficultyHard {
		t.Errorf("NextDifficulty() = %s, want hard", got)
	}
}

func TestNextDifficulty_NoHistoryKeepsBase(t *testing.T) {
	e, _, _ := newTestEngine(t, testItem("q1", "algebra", item.DifficultyMedium))

	got, err := e.NextDifficulty(context.Background(), "algebra", item.DifficultyMedium)
	if err != nil {
		t.Fatalf("NextDifficulty() error = %v", err)
	}
	if got != item.DifficultyMedium {
		t.Errorf("NextDifficulty() = %s, want medium unchanged", got)
	}
}

func TestRecommend_UsesAttemptScore(t *testing.T) {
	e, _, _ := newTestEngine(t, testItem("q1", "algebra", item.DifficultyMedium))

	eval := &evaluation.Result{Score: 30, Breakdown: evaluation.Breakdown{WeakAreas: []string{"algebra"}}}
	recs, path, err := e.Recommend(context.Background(), testNow.Add(-24*time.Hour), testNow, eval)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) == 0 || recs[0].Action != "revisit-fundamentals" {
		t.Errorf("recs = %+v, want revisit-fundamentals first", recs)
	}
	if len(path.Phases) != 3 {
		t.Errorf("path phases = %d, want 3 at 30%%", len(path.Phases))
	}
}

func TestAddItems_RejectsInvalid(t *testing.T) {
	e, _, _ := newTestEngine(t)

	bad := testItem("", "algebra", item.DifficultyMedium)
	if err := e.AddItems(context.Background(), []item.LearningItem{bad}); err == nil {
		t.Fatal("expected validation error for missing ID")
	}
	if len(e.Items()) != 0 {
		t.Error("invalid batch must not modify the catalog")
	}
}
