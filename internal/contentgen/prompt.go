package contentgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an exam content author writing practice questions for competitive exam preparation.

Rules:
- Generate the requested number of questions for the given topic, subject, and difficulty.
- Use plain ASCII text for all content. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, and standard operators.
- Each question must be clear, self-contained, and unambiguous.
- The answer key must be correct. Double-check numeric answers.
- The explanation should show the solution step by step.
- Choose "numeric" for computation questions (the candidate types a number).
- Choose "single_choice" for questions with exactly one correct option out of 4.
- Choose "multi_choice" only when several options are genuinely correct; still provide exactly 4 options.
- Distractors should reflect common mistakes, not random values.
- Match the requested difficulty: easy questions test recall, expert questions demand multi-step reasoning.
- Do not repeat any question from the "already in the catalog" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	if input.Subtopic != "" {
		fmt.Fprintf(&b, "Subtopic: %s\n", input.Subtopic)
	}
	if input.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	}
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Questions requested: %d\n", input.Count)

	b.WriteString("\nAlready in the catalog:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	if len(input.WeakAreaNotes) > 0 {
		b.WriteString("\n\nRecent mistakes by this candidate:\n")
		b.WriteString(buildNotes(input.WeakAreaNotes, cfg.MaxWeakAreaNotes))
	}

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildNotes formats learner mistake notes, respecting the max limit.
func buildNotes(notes []string, max int) string {
	if max > 0 && len(notes) > max {
		notes = notes[len(notes)-max:]
	}

	var b strings.Builder
	for i, n := range notes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, n)
	}
	return strings.TrimRight(b.String(), "\n")
}
