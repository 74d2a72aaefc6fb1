package contentgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated item. They execute in order; the first failure
	// rejects the item.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions
	// to include in the prompt for deduplication.
	MaxPriorQuestions int

	// MaxWeakAreaNotes is the maximum number of learner mistake notes
	// to include in the prompt.
	MaxWeakAreaNotes int

	// BatchConcurrency bounds how many topic requests run in parallel
	// in GenerateBatch.
	BatchConcurrency int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MaxTokens:         2048,
		Temperature:       0.7,
		MaxPriorQuestions: 8,
		MaxWeakAreaNotes:  5,
		BatchConcurrency:  3,
	}
}
