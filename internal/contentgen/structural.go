package contentgen

import "github.com/prepdeck/prepdeck/internal/item"

// StructuralValidator checks that required fields are present, within
// length limits, and internally consistent with the question type.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(d *itemDraft, _ GenerateInput) *ValidationError {
	if d.Question == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if len(d.Question) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question exceeds 1000 characters",
			Retryable: true,
		}
	}
	if d.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(d.Explanation) > 2000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 2000 characters",
			Retryable: true,
		}
	}
	if d.AllottedSecs <= 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "allotted_secs must be positive",
			Retryable: true,
		}
	}

	switch item.QuestionType(d.Type) {
	case item.TypeSingleChoice:
		if len(d.Choices) != 4 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "single_choice requires exactly 4 choices",
				Retryable: true,
			}
		}
		if !contains(d.Choices, d.CorrectChoice) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "correct_choice is not among the choices",
				Retryable: true,
			}
		}

	case item.TypeMultiChoice:
		if len(d.Choices) != 4 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "multi_choice requires exactly 4 choices",
				Retryable: true,
			}
		}
		if len(d.CorrectChoices) == 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "multi_choice requires at least one correct choice",
				Retryable: true,
			}
		}
		for _, c := range d.CorrectChoices {
			if !contains(d.Choices, c) {
				return &ValidationError{
					Validator: v.Name(),
					Message:   "correct_choices contains an option not among the choices",
					Retryable: true,
				}
			}
		}

	case item.TypeNumeric:
		if len(d.Choices) != 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "numeric questions must not carry choices",
				Retryable: true,
			}
		}

	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "type must be \"single_choice\", \"multi_choice\", or \"numeric\"",
			Retryable: true,
		}
	}
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
