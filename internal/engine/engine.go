package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/adaptive"
	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/item"
	"github.com/prepdeck/prepdeck/internal/mastery"
	"github.com/prepdeck/prepdeck/internal/progress"
	"github.com/prepdeck/prepdeck/internal/recommend"
	"github.com/prepdeck/prepdeck/internal/scheduler"
	"github.com/prepdeck/prepdeck/internal/store"
)

// snapshotVersion is bumped when SnapshotData changes incompatibly.
const snapshotVersion = 1

// Engine is the mastery engine service. It owns the item catalog and the
// learner's review state, persists both through snapshots, and appends
// every state change to the event log.
//
// All state transitions go through Engine methods; the catalog and
// progress maps are never mutated by callers.
type Engine struct {
	mu sync.Mutex

	cfg   config.Config
	clock Clock
	log   *zap.Logger

	snapshots store.SnapshotRepo
	events    store.EventRepo

	items    map[string]item.LearningItem
	order    []string // catalog insertion order, drives queue tie-breaks
	progress map[string]scheduler.ItemProgress
	set      scheduler.SetProgress
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger replaces the no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New builds an Engine and restores state from the latest snapshot.
func New(ctx context.Context, cfg config.Config, snapshots store.SnapshotRepo, events store.EventRepo, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:       cfg,
		clock:     SystemClock{},
		log:       zap.NewNop(),
		snapshots: snapshots,
		events:    events,
		items:     make(map[string]item.LearningItem),
		progress:  make(map[string]scheduler.ItemProgress),
	}
	for _, opt := range opts {
		opt(e)
	}

	snap, err := snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}
	if snap != nil {
		for _, it := range snap.Data.Items {
			e.items[it.ID] = it
			e.order = append(e.order, it.ID)
		}
		if snap.Data.Progress != nil {
			e.progress = snap.Data.Progress
		}
		e.set = snap.Data.Set
		e.log.Debug("restored snapshot",
			zap.Int("items", len(e.items)),
			zap.Int("tracked", len(e.progress)),
		)
	}
	return e, nil
}

// AddItems validates and adds items to the catalog, then persists a
// snapshot. Adding an existing ID replaces the item; its history is kept.
func (e *Engine) AddItems(ctx context.Context, items []item.LearningItem) error {
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, it := range items {
		if _, exists := e.items[it.ID]; !exists {
			e.order = append(e.order, it.ID)
		}
		e.items[it.ID] = it
	}
	return e.persist(ctx)
}

// Items returns the catalog in insertion order.
func (e *Engine) Items() []item.LearningItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog()
}

// ReviewInput is one review to record. TimeSpentSecs is informational; it
// is logged with the event but does not affect scheduling.
type ReviewInput struct {
	ItemID        string
	Performance   float64
	TimeSpentSecs int
}

// ReviewResult reports the outcome of one recorded review.
type ReviewResult struct {
	ItemID     string
	Record     scheduler.ReviewRecord
	Mastery    float64 // per-item mastery after this review, [0,100]
	SetMastery float64 // whole-set mastery after this review, [0,100]
}

// SubmitReview records a single review. See SubmitReviews for the batch
// form; both share validation and atomicity behavior.
func (e *Engine) SubmitReview(ctx context.Context, itemID string, performance float64, timeSpentSecs int) (ReviewResult, error) {
	results, err := e.SubmitReviews(ctx, []ReviewInput{{ItemID: itemID, Performance: performance, TimeSpentSecs: timeSpentSecs}})
	if err != nil {
		return ReviewResult{}, err
	}
	return results[0], nil
}

// SubmitReviews records a batch of reviews atomically: every input is
// validated before any is applied, so one bad review leaves all state
// untouched. Reviews apply in order; a repeated item sees its own earlier
// reviews in the batch.
func (e *Engine) SubmitReviews(ctx context.Context, reviews []ReviewInput) ([]ReviewResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, r := range reviews {
		if _, ok := e.items[r.ItemID]; !ok {
			return nil, fmt.Errorf("review %s: %w", r.ItemID, scheduler.ErrItemNotFound)
		}
		if r.Performance < 0 || r.Performance > 1 {
			return nil, fmt.Errorf("review %s: %w", r.ItemID, scheduler.ErrInvalidPerformance)
		}
	}

	now := e.clock.Now()

	// Stage everything against a scratch copy so the event log and the
	// in-memory state move together or not at all.
	staged := make(map[string]scheduler.ItemProgress, len(reviews))
	results := make([]ReviewResult, 0, len(reviews))
	var eventData []store.ReviewEventData

	for _, r := range reviews {
		it := e.items[r.ItemID]
		prog, ok := staged[r.ItemID]
		if !ok {
			prog = e.progress[r.ItemID]
		}

		rec, err := e.cfg.Scheduler.Schedule(prog.Last(), r.Performance, it.Difficulty, now)
		if err != nil {
			return nil, fmt.Errorf("review %s: %w", r.ItemID, err)
		}
		prog.ItemID = r.ItemID
		prog = prog.WithRecord(rec)
		staged[r.ItemID] = prog

		results = append(results, ReviewResult{
			ItemID:  r.ItemID,
			Record:  rec,
			Mastery: mastery.Estimate(prog.Records),
		})
		eventData = append(eventData, store.ReviewEventData{
			ItemID:       it.ID,
			Topic:        it.Topic,
			Difficulty:   string(it.Difficulty),
			Performance:  r.Performance,
			IntervalDays: rec.IntervalDays,
			NextReview:   rec.NextReview,
			TimeSecs:     r.TimeSpentSecs,
		})
	}

	for id, prog := range staged {
		e.progress[id] = prog
	}
	e.set = mastery.EstimateSet(e.progress)
	for i := range results {
		results[i].SetMastery = e.set.OverallMastery
	}

	for _, data := range eventData {
		if err := e.events.AppendReviewEvent(ctx, data); err != nil {
			e.log.Warn("failed to append review event", zap.String("item", data.ItemID), zap.Error(err))
		}
	}
	if err := e.persist(ctx); err != nil {
		return nil, err
	}

	e.log.Debug("recorded reviews",
		zap.Int("count", len(reviews)),
		zap.Float64("set_mastery", e.set.OverallMastery),
	)
	return results, nil
}

// DueItems returns the review queue at the engine clock's now.
// limit <= 0 means no limit.
func (e *Engine) DueItems(limit int) []item.LearningItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return scheduler.DueItems(e.catalog(), e.progress, e.clock.Now(), limit)
}

// ItemMastery returns the mastery estimate for one item, or an error when
// the item is unknown.
func (e *Engine) ItemMastery(itemID string) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.items[itemID]; !ok {
		return 0, scheduler.ErrItemNotFound
	}
	return mastery.Estimate(e.progress[itemID].Records), nil
}

// SetMastery returns the whole-set summary.
func (e *Engine) SetMastery() scheduler.SetProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.set
}

// SubmitAttempt evaluates a completed test attempt against the catalog,
// appends the answer and attempt events, and returns the evaluation.
// A validation failure rejects the whole attempt and records nothing.
func (e *Engine) SubmitAttempt(ctx context.Context, attempt evaluation.Attempt) (evaluation.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	result, err := evaluation.Evaluate(e.cfg.Evaluation, attempt, e.items)
	if err != nil {
		return evaluation.Result{}, err
	}

	for _, q := range result.Questions {
		it := e.items[q.ItemID]
		data := store.AnswerEventData{
			AttemptID:    attempt.ID,
			ItemID:       q.ItemID,
			Topic:        it.Topic,
			Subtopic:     it.Subtopic,
			Subject:      it.Subject,
			QuestionType: string(it.Type),
			Difficulty:   string(it.Difficulty),
			Correct:      q.Correct,
			Answered:     q.Answered,
			Awarded:      q.Awarded,
			TimeSecs:     q.TimeSpentSecs,
		}
		if err := e.events.AppendAnswerEvent(ctx, data); err != nil {
			e.log.Warn("failed to append answer event", zap.String("item", q.ItemID), zap.Error(err))
		}
	}

	status := attempt.Status
	if status == "" {
		status = evaluation.StatusCompleted
	}
	attemptData := store.AttemptEventData{
		AttemptID:        attempt.ID,
		Score:            result.Score,
		MarksAwarded:     result.MarksAwarded,
		MaxMarks:         result.MaxMarks,
		CorrectAnswers:   result.CorrectAnswers,
		IncorrectAnswers: result.IncorrectAnswers,
		Unanswered:       result.Unanswered,
		TotalTimeSecs:    attempt.TotalTimeSecs,
		Status:           string(status),
	}
	if err := e.events.AppendAttemptEvent(ctx, attemptData); err != nil {
		e.log.Warn("failed to append attempt event", zap.String("attempt", attempt.ID), zap.Error(err))
	}

	e.log.Info("evaluated attempt",
		zap.String("attempt", attempt.ID),
		zap.Float64("score", result.Score),
		zap.Int("questions", len(result.Questions)),
	)
	return result, nil
}

// Progress replays answer events in [from, to] into a windowed
// performance profile.
func (e *Engine) Progress(ctx context.Context, from, to time.Time) (*progress.PerformanceProfile, error) {
	outcomes, err := e.events.AnswerOutcomes(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var po []progress.Outcome
	for _, o := range outcomes {
		if o.Correct == nil {
			continue // pending manual review, not scoreable
		}
		po = append(po, progress.Outcome{
			Topic:    o.Topic,
			Subtopic: o.Subtopic,
			Subject:  o.Subject,
			Correct:  *o.Correct,
			At:       o.At,
		})
	}

	profile := progress.Analyze(e.cfg.Progress, po, from, to)
	return &profile, nil
}

// NextDifficulty returns the difficulty to serve for a topic, moving the
// base at most one rank on the topic's rolling accuracy.
func (e *Engine) NextDifficulty(ctx context.Context, topic string, base item.Difficulty) (item.Difficulty, error) {
	now := e.clock.Now()
	outcomes, err := e.events.RecentTopicOutcomes(ctx, topic, adaptive.RollingWindow, now.Add(-adaptive.RollingMaxAge))
	if err != nil {
		return base, err
	}

	var history []adaptive.Outcome
	for _, o := range outcomes {
		if o.Correct == nil {
			continue
		}
		history = append(history, adaptive.Outcome{Correct: *o.Correct, At: o.At})
	}

	acc, ok := adaptive.RollingAccuracy(history, now)
	return e.cfg.Adaptive.Adjust(base, acc, ok), nil
}

// Recommend builds the recommendation list and learning path for the
// given window, optionally folding in a just-evaluated attempt.
func (e *Engine) Recommend(ctx context.Context, from, to time.Time, eval *evaluation.Result) ([]recommend.Recommendation, recommend.LearningPath, error) {
	profile, err := e.Progress(ctx, from, to)
	if err != nil {
		return nil, recommend.LearningPath{}, err
	}

	recs := recommend.Build(e.cfg.Recommend, profile, eval)

	accuracy := profile.Accuracy * 100
	weak := profile.WeakAreas
	if eval != nil {
		accuracy = eval.Score
		if len(eval.Breakdown.WeakAreas) > 0 {
			weak = eval.Breakdown.WeakAreas
		}
	}
	return recs, recommend.PathFor(accuracy, weak), nil
}

// catalog returns the items in insertion order. Callers hold e.mu.
func (e *Engine) catalog() []item.LearningItem {
	items := make([]item.LearningItem, 0, len(e.order))
	for _, id := range e.order {
		items = append(items, e.items[id])
	}
	return items
}

// persist saves a snapshot of the catalog and learner state. Callers hold
// e.mu.
func (e *Engine) persist(ctx context.Context) error {
	snap := &store.Snapshot{
		Timestamp: e.clock.Now(),
		Data: store.SnapshotData{
			Version:  snapshotVersion,
			Items:    e.catalog(),
			Progress: e.progress,
			Set:      e.set,
		},
	}
	if err := e.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	if e.cfg.SnapshotKeep > 0 {
		if err := e.snapshots.Prune(ctx, e.cfg.SnapshotKeep); err != nil {
			e.log.Warn("failed to prune snapshots", zap.Error(err))
		}
	}
	return nil
}
