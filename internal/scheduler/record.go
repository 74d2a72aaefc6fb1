package scheduler

import "time"

// ReviewRecord is one timestamped outcome of reviewing an item. Records are
// immutable once created; history is append-only and never rewritten.
type ReviewRecord struct {
	IntervalDays int       `json:"interval_days"`
	NextReview   time.Time `json:"next_review"`
	Performance  float64   `json:"performance"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// ItemProgress is the full review history for a single item.
type ItemProgress struct {
	ItemID         string         `json:"item_id"`
	Records        []ReviewRecord `json:"records"`
	TotalReviews   int            `json:"total_reviews"`
	LastReviewedAt time.Time      `json:"last_reviewed_at"`
}

// WithRecord returns a copy of the progress with r appended. The receiver
// is not modified; existing records are shared, never mutated.
func (p ItemProgress) WithRecord(r ReviewRecord) ItemProgress {
	records := make([]ReviewRecord, len(p.Records), len(p.Records)+1)
	copy(records, p.Records)
	records = append(records, r)
	return ItemProgress{
		ItemID:         p.ItemID,
		Records:        records,
		TotalReviews:   p.TotalReviews + 1,
		LastReviewedAt: r.RecordedAt,
	}
}

// Last returns the most recent record, or nil if the item has never been
// reviewed.
func (p ItemProgress) Last() *ReviewRecord {
	if len(p.Records) == 0 {
		return nil
	}
	return &p.Records[len(p.Records)-1]
}

// IsDue reports whether the item is at or past its next review date.
// An item with no history is always due.
func (p ItemProgress) IsDue(now time.Time) bool {
	last := p.Last()
	if last == nil {
		return true
	}
	return !now.Before(last.NextReview)
}

// SetProgress summarizes a collection of ItemProgress. It is a derived
// view recomputed from history after every review, never patched in place.
type SetProgress struct {
	OverallMastery float64   `json:"overall_mastery"`
	TotalReviews   int       `json:"total_reviews"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
}
