package store

import (
	"context"
	"time"

	"github.com/prepdeck/prepdeck/internal/item"
	"github.com/prepdeck/prepdeck/internal/scheduler"
)

// SnapshotData captures the item catalog and the full learner state at a
// point in time. Restoring from the latest snapshot is the normal startup
// path; the event log exists for audit and analytics queries.
type SnapshotData struct {
	Version  int                               `json:"version"`
	Items    []item.LearningItem               `json:"items,omitempty"`
	Progress map[string]scheduler.ItemProgress `json:"progress,omitempty"`
	Set      scheduler.SetProgress             `json:"set"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ReviewEventData captures one spaced-repetition review.
type ReviewEventData struct {
	ItemID       string
	Topic        string
	Difficulty   string
	Performance  float64
	IntervalDays int
	NextReview   time.Time
	TimeSecs     int
}

// AnswerEventData captures one answered question within a test attempt.
// Correct is nil for free-text answers pending manual review.
type AnswerEventData struct {
	AttemptID    string
	ItemID       string
	Topic        string
	Subtopic     string
	Subject      string
	QuestionType string
	Difficulty   string
	Correct      *bool
	Answered     bool
	Awarded      float64
	TimeSecs     int
}

// AttemptEventData captures the evaluated outcome of a completed attempt.
type AttemptEventData struct {
	AttemptID        string
	Score            float64
	MarksAwarded     float64
	MaxMarks         float64
	CorrectAnswers   int
	IncorrectAnswers int
	Unanswered       int
	TotalTimeSecs    int
	Status           string
}

// GenRequestEventData captures one content-generation request.
type GenRequestEventData struct {
	Provider       string
	Model          string
	Purpose        string
	InputTokens    int
	OutputTokens   int
	LatencyMs      int64
	Success        bool
	ErrorMessage   string
	ItemsGenerated int
	FallbackUsed   bool
}

// GenRequest is a stored generation event, as listed by audit queries.
type GenRequest struct {
	ID             int
	Timestamp      time.Time
	Provider       string
	Model          string
	Purpose        string
	InputTokens    int
	OutputTokens   int
	LatencyMs      int64
	Success        bool
	ErrorMessage   string
	ItemsGenerated int
	FallbackUsed   bool
}

// GenUsage aggregates generation requests for one model.
type GenUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// AnswerOutcome is a replayed answer event, the raw material for windowed
// progress analysis and rolling-accuracy queries.
type AnswerOutcome struct {
	AttemptID string
	ItemID    string
	Topic     string
	Subtopic  string
	Subject   string
	Correct   *bool
	Answered  bool
	At        time.Time
}

// EventRepo provides append and replay access to the event log.
type EventRepo interface {
	// AppendReviewEvent records one spaced-repetition review.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendAttemptEvent records one evaluated attempt.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendGenRequest records a content-generation API call.
	AppendGenRequest(ctx context.Context, data GenRequestEventData) error

	// AnswerOutcomes returns all answer events with From <= timestamp <= To,
	// oldest first.
	AnswerOutcomes(ctx context.Context, from, to time.Time) ([]AnswerOutcome, error)

	// RecentTopicOutcomes returns up to lastN of the newest answer events
	// for a topic at or after since, oldest first.
	RecentTopicOutcomes(ctx context.Context, topic string, lastN int, since time.Time) ([]AnswerOutcome, error)

	// RecentGenRequests returns up to limit of the newest generation
	// events, newest first.
	RecentGenRequests(ctx context.Context, limit int) ([]GenRequest, error)

	// GenUsageByModel aggregates token usage and latency per model.
	GenUsageByModel(ctx context.Context) ([]GenUsage, error)
}
