package evaluation

import (
	"time"

	"github.com/prepdeck/prepdeck/internal/item"
)

// AnswerRecord is a learner's answer to one question in an attempt.
// Correctness is derived at evaluation time, never stored on the record.
type AnswerRecord struct {
	ItemID        string        `json:"item_id"`
	Response      item.Response `json:"response"`
	TimeSpentSecs int           `json:"time_spent_secs"`
}

// AttemptStatus describes the lifecycle state of an attempt.
type AttemptStatus string

const (
	StatusInProgress AttemptStatus = "in_progress"
	StatusCompleted  AttemptStatus = "completed"
	StatusAbandoned  AttemptStatus = "abandoned"
)

// Attempt is one completed test sitting: an ordered list of answers plus
// total time spent.
type Attempt struct {
	ID            string         `json:"id"`
	Answers       []AnswerRecord `json:"answers"`
	TotalTimeSecs int            `json:"total_time_secs"`
	Status        AttemptStatus  `json:"status"`
	StartedAt     time.Time      `json:"started_at"`
	CompletedAt   time.Time      `json:"completed_at"`
}
