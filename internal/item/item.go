package item

import "fmt"

// LearningItem is a single flashcard or question with its answer key and
// scoring metadata. Items are immutable once created; the engine never
// modifies them.
type LearningItem struct {
	ID             string         `json:"id"`
	Topic          string         `json:"topic"`
	Subtopic       string         `json:"subtopic"`
	Subject        string         `json:"subject"`
	Difficulty     Difficulty     `json:"difficulty"`
	Type           QuestionType   `json:"type"`
	Key            AnswerKey      `json:"key"`
	Marks          float64        `json:"marks"`
	NegativeMarks  float64        `json:"negative_marks"`
	AllottedSecs   int            `json:"allotted_secs"`
	CognitiveLevel CognitiveLevel `json:"cognitive_level"`
	Question       string         `json:"question"`
	Choices        []string       `json:"choices,omitempty"`
	Explanation    string         `json:"explanation,omitempty"`
}

// QuestionType describes how an item is answered and scored.
type QuestionType string

const (
	TypeSingleChoice QuestionType = "single_choice"
	TypeMultiChoice  QuestionType = "multi_choice"
	TypeNumeric      QuestionType = "numeric"
	TypeFreeText     QuestionType = "free_text"
)

// CognitiveLevel classifies the reasoning demand of a question
// (Bloom's taxonomy).
type CognitiveLevel string

const (
	LevelRemember   CognitiveLevel = "remember"
	LevelUnderstand CognitiveLevel = "understand"
	LevelApply      CognitiveLevel = "apply"
	LevelAnalyze    CognitiveLevel = "analyze"
	LevelEvaluate   CognitiveLevel = "evaluate"
	LevelCreate     CognitiveLevel = "create"
)

// AnswerKey holds the correct answer. Which field is meaningful depends on
// the item's Type: Choice for single_choice, Choices for multi_choice,
// Number for numeric. Free-text items carry no key and are routed to
// manual review.
type AnswerKey struct {
	Choice  string   `json:"choice,omitempty"`
	Choices []string `json:"choices,omitempty"`
	Number  float64  `json:"number,omitempty"`
}

// Response is a learner's answer to an item, shaped like AnswerKey plus a
// free-text field. Empty returns true when no field is populated.
type Response struct {
	Choice  string   `json:"choice,omitempty"`
	Choices []string `json:"choices,omitempty"`
	Number  *float64 `json:"number,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// Empty reports whether the response carries no answer at all.
func (r Response) Empty() bool {
	return r.Choice == "" && len(r.Choices) == 0 && r.Number == nil && r.Text == ""
}

// Validate checks that the item is internally consistent: known type and
// difficulty, an answer key matching the type, and non-negative marks.
func (it *LearningItem) Validate() error {
	if it.ID == "" {
		return fmt.Errorf("item: missing id")
	}
	if it.Topic == "" {
		return fmt.Errorf("item %s: missing topic", it.ID)
	}
	if !it.Difficulty.Valid() {
		return fmt.Errorf("item %s: unknown difficulty %q", it.ID, it.Difficulty)
	}
	if it.Marks < 0 || it.NegativeMarks < 0 {
		return fmt.Errorf("item %s: marks must be non-negative", it.ID)
	}
	switch it.Type {
	case TypeSingleChoice:
		if it.Key.Choice == "" {
			return fmt.Errorf("item %s: single_choice requires a key choice", it.ID)
		}
	case TypeMultiChoice:
		if len(it.Key.Choices) == 0 {
			return fmt.Errorf("item %s: multi_choice requires key choices", it.ID)
		}
	case TypeNumeric, TypeFreeText:
		// Numeric keys may legitimately be zero; free-text has no key.
	default:
		return fmt.Errorf("item %s: unknown type %q", it.ID, it.Type)
	}
	return nil
}
