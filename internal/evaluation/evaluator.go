package evaluation

import (
	"fmt"
	"math"
	"sort"

	"github.com/prepdeck/prepdeck/internal/item"
)

// Config holds the scoring and classification parameters.
type Config struct {
	// NumericTolerance is the relative tolerance for numeric answers:
	// |given - correct| <= NumericTolerance * |correct|.
	NumericTolerance float64

	// TooFastBelow and TooSlowAbove bucket time spent relative to the
	// allotted time per question.
	TooFastBelow float64
	TooSlowAbove float64

	// WeakBelow / StrongAtLeast classify attempt-scoped topic percentages,
	// on the [0,100] scale. Boundary-exact: exactly WeakBelow is not weak,
	// exactly StrongAtLeast is strong.
	WeakBelow     float64
	StrongAtLeast float64
}

// DefaultConfig returns the standard evaluation parameters.
func DefaultConfig() Config {
	return Config{
		NumericTolerance: 0.01,
		TooFastBelow:     0.5,
		TooSlowAbove:     1.5,
		WeakBelow:        60,
		StrongAtLeast:    75,
	}
}

// ValidationError rejects a malformed answer before any scoring happens.
// A single ValidationError fails the whole attempt.
type ValidationError struct {
	ItemID  string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("answer for item %q: %s", e.ItemID, e.Message)
}

// TimeBucket classifies time spent on one question.
type TimeBucket string

const (
	TimeTooFast TimeBucket = "too_fast"
	TimeOptimal TimeBucket = "optimal"
	TimeTooSlow TimeBucket = "too_slow"
)

// QuestionResult is the evaluated outcome for one question. Correct is nil
// for free-text questions, which are excluded from automatic scoring.
type QuestionResult struct {
	ItemID        string     `json:"item_id"`
	Correct       *bool      `json:"correct"`
	Answered      bool       `json:"answered"`
	Awarded       float64    `json:"awarded"`
	MaxMarks      float64    `json:"max_marks"`
	TimeSpentSecs int        `json:"time_spent_secs"`
	TimeBucket    TimeBucket `json:"time_bucket"`
}

// Tally is a correct/total pair with its percentage.
type Tally struct {
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Breakdown is the multi-dimensional analytics view of one attempt.
type Breakdown struct {
	ByTopic          map[string]Tally `json:"by_topic"`
	ByDifficulty     map[string]Tally `json:"by_difficulty"`
	ByCognitiveLevel map[string]Tally `json:"by_cognitive_level"`
	WeakAreas        []string         `json:"weak_areas"`
	StrongAreas      []string         `json:"strong_areas"`
	TooFast          int              `json:"too_fast"`
	Optimal          int              `json:"optimal"`
	TooSlow          int              `json:"too_slow"`
	AvgTimePerQSecs  float64          `json:"avg_time_per_q_secs"`
}

// Result is the full evaluation of one attempt.
type Result struct {
	AttemptID        string           `json:"attempt_id"`
	Score            float64          `json:"score"` // [0,100]
	MarksAwarded     float64          `json:"marks_awarded"`
	MaxMarks         float64          `json:"max_marks"`
	CorrectAnswers   int              `json:"correct_answers"`
	IncorrectAnswers int              `json:"incorrect_answers"`
	Unanswered       int              `json:"unanswered"`
	ManualReview     []string         `json:"manual_review"` // free-text item IDs
	Questions        []QuestionResult `json:"questions"`
	Breakdown        Breakdown        `json:"breakdown"`
}

// Evaluate scores a completed attempt against the answer keys in items.
// It is deterministic: identical attempt and keys always produce identical
// output. Any unknown item reference or malformed answer shape rejects the
// whole attempt with a typed error and nothing is scored.
func Evaluate(cfg Config, attempt Attempt, items map[string]item.LearningItem) (Result, error) {
	// Validate everything up front so a bad answer can't partially score.
	for _, ans := range attempt.Answers {
		it, ok := items[ans.ItemID]
		if !ok {
			return Result{}, &ValidationError{ItemID: ans.ItemID, Message: "unknown item"}
		}
		if err := validateShape(it, ans.Response); err != nil {
			return Result{}, err
		}
	}

	result := Result{
		AttemptID: attempt.ID,
		Breakdown: Breakdown{
			ByTopic:          make(map[string]Tally),
			ByDifficulty:     make(map[string]Tally),
			ByCognitiveLevel: make(map[string]Tally),
		},
	}

	totalTime := 0
	for _, ans := range attempt.Answers {
		it := items[ans.ItemID]
		qr := scoreQuestion(cfg, it, ans)
		result.Questions = append(result.Questions, qr)

		totalTime += qr.TimeSpentSecs
		switch qr.TimeBucket {
		case TimeTooFast:
			result.Breakdown.TooFast++
		case TimeTooSlow:
			result.Breakdown.TooSlow++
		default:
			result.Breakdown.Optimal++
		}

		if qr.Correct == nil {
			if qr.Answered {
				result.ManualReview = append(result.ManualReview, it.ID)
			} else {
				result.Unanswered++
			}
			continue // excluded from automatic scoring
		}

		result.MaxMarks += qr.MaxMarks
		result.MarksAwarded += qr.Awarded
		switch {
		case !qr.Answered:
			result.Unanswered++
		case *qr.Correct:
			result.CorrectAnswers++
		default:
			result.IncorrectAnswers++
		}

		tallyInto(result.Breakdown.ByTopic, it.Topic, *qr.Correct && qr.Answered)
		tallyInto(result.Breakdown.ByDifficulty, string(it.Difficulty), *qr.Correct && qr.Answered)
		tallyInto(result.Breakdown.ByCognitiveLevel, string(it.CognitiveLevel), *qr.Correct && qr.Answered)
	}

	finalizeTallies(result.Breakdown.ByTopic)
	finalizeTallies(result.Breakdown.ByDifficulty)
	finalizeTallies(result.Breakdown.ByCognitiveLevel)

	if len(attempt.Answers) > 0 {
		result.Breakdown.AvgTimePerQSecs = float64(totalTime) / float64(len(attempt.Answers))
	}
	if result.MaxMarks > 0 {
		result.Score = result.MarksAwarded / result.MaxMarks * 100
	}

	result.Breakdown.WeakAreas, result.Breakdown.StrongAreas = classifyTopics(cfg, result.Breakdown.ByTopic)
	return result, nil
}

// scoreQuestion derives correctness, awarded marks, and the time bucket for
// one answer. Unanswered questions award 0 but still occupy the denominator;
// incorrect answers subtract negative marks, floored at -NegativeMarks.
func scoreQuestion(cfg Config, it item.LearningItem, ans AnswerRecord) QuestionResult {
	qr := QuestionResult{
		ItemID:        it.ID,
		MaxMarks:      it.Marks,
		TimeSpentSecs: ans.TimeSpentSecs,
		TimeBucket:    timeBucket(cfg, ans.TimeSpentSecs, it.AllottedSecs),
		Answered:      !ans.Response.Empty(),
	}

	if it.Type == item.TypeFreeText {
		qr.Correct = nil
		qr.MaxMarks = 0
		return qr
	}
	if !qr.Answered {
		incorrect := false
		qr.Correct = &incorrect
		return qr
	}

	correct := isCorrect(cfg, it, ans.Response)
	qr.Correct = &correct
	if correct {
		qr.Awarded = it.Marks
	} else {
		qr.Awarded = -it.NegativeMarks
	}
	return qr
}

// isCorrect applies the per-type correctness rule. Shapes were validated
// before scoring, so the relevant response field is known to be populated.
func isCorrect(cfg Config, it item.LearningItem, resp item.Response) bool {
	switch it.Type {
	case item.TypeSingleChoice:
		return resp.Choice == it.Key.Choice

	case item.TypeMultiChoice:
		return sameSet(resp.Choices, it.Key.Choices)

	case item.TypeNumeric:
		given := *resp.Number
		want := it.Key.Number
		return math.Abs(given-want) <= cfg.NumericTolerance*math.Abs(want)
	}
	return false
}

// sameSet compares two choice lists as sets: equal size and membership.
func sameSet(a, b []string) bool {
	as := make(map[string]bool, len(a))
	for _, v := range a {
		as[v] = true
	}
	bs := make(map[string]bool, len(b))
	for _, v := range b {
		bs[v] = true
	}
	if len(as) != len(bs) {
		return false
	}
	for v := range as {
		if !bs[v] {
			return false
		}
	}
	return true
}

// validateShape rejects responses whose populated fields don't match the
// item type. Empty responses are allowed everywhere (unanswered).
func validateShape(it item.LearningItem, resp item.Response) error {
	if resp.Empty() {
		return nil
	}
	switch it.Type {
	case item.TypeSingleChoice:
		if resp.Choice == "" || len(resp.Choices) > 0 || resp.Number != nil || resp.Text != "" {
			return &ValidationError{ItemID: it.ID, Message: "single_choice expects one selected choice"}
		}
	case item.TypeMultiChoice:
		if len(resp.Choices) == 0 || resp.Choice != "" || resp.Number != nil || resp.Text != "" {
			return &ValidationError{ItemID: it.ID, Message: "multi_choice expects a set of selected choices"}
		}
	case item.TypeNumeric:
		if resp.Number == nil || resp.Choice != "" || len(resp.Choices) > 0 || resp.Text != "" {
			return &ValidationError{ItemID: it.ID, Message: "numeric expects a numeric value"}
		}
	case item.TypeFreeText:
		if resp.Text == "" || resp.Choice != "" || len(resp.Choices) > 0 || resp.Number != nil {
			return &ValidationError{ItemID: it.ID, Message: "free_text expects a text response"}
		}
	default:
		return &ValidationError{ItemID: it.ID, Message: fmt.Sprintf("unknown item type %q", it.Type)}
	}
	return nil
}

func timeBucket(cfg Config, spentSecs, allottedSecs int) TimeBucket {
	if allottedSecs <= 0 {
		return TimeOptimal
	}
	ratio := float64(spentSecs) / float64(allottedSecs)
	switch {
	case ratio < cfg.TooFastBelow:
		return TimeTooFast
	case ratio > cfg.TooSlowAbove:
		return TimeTooSlow
	default:
		return TimeOptimal
	}
}

func tallyInto(m map[string]Tally, key string, correct bool) {
	if key == "" {
		return
	}
	t := m[key]
	t.Total++
	if correct {
		t.Correct++
	}
	m[key] = t
}

func finalizeTallies(m map[string]Tally) {
	for k, t := range m {
		if t.Total > 0 {
			t.Percentage = float64(t.Correct) / float64(t.Total) * 100
		}
		m[k] = t
	}
}

// classifyTopics applies the weak/strong thresholds to the attempt-scoped
// topic percentages. Weakest topics come first in the weak list, strongest
// first in the strong list.
func classifyTopics(cfg Config, topics map[string]Tally) (weak, strong []string) {
	type scored struct {
		topic string
		pct   float64
	}
	var all []scored
	for topic, t := range topics {
		all = append(all, scored{topic: topic, pct: t.Percentage})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].pct != all[j].pct {
			return all[i].pct < all[j].pct
		}
		return all[i].topic < all[j].topic
	})
	for _, s := range all {
		if s.pct < cfg.WeakBelow {
			weak = append(weak, s.topic)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].pct != all[j].pct {
			return all[i].pct > all[j].pct
		}
		return all[i].topic < all[j].topic
	})
	for _, s := range all {
		if s.pct >= cfg.StrongAtLeast {
			strong = append(strong, s.topic)
		}
	}
	return weak, strong
}
