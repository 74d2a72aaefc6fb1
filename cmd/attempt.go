package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/evaluation"
)

var attemptCmd = &cobra.Command{
	Use:   "attempt <answers.json>",
	Short: "Evaluate a completed test attempt",
	Long: "Reads an attempt (answers plus time spent) from a JSON file, scores it\n" +
		"against the item catalog, and records the outcome in the event log.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read attempt file: %w", err)
		}

		var attempt evaluation.Attempt
		if err := json.Unmarshal(raw, &attempt); err != nil {
			return fmt.Errorf("parse attempt file: %w", err)
		}
		if attempt.ID == "" {
			attempt.ID = uuid.NewString()
		}
		if attempt.CompletedAt.IsZero() {
			attempt.CompletedAt = time.Now().UTC()
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		result, err := eng.SubmitAttempt(cmd.Context(), attempt)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		printResult(result)
		return nil
	},
}

func init() {
	attemptCmd.Flags().Bool("json", false, "Print the full evaluation as JSON")
}

func printResult(r evaluation.Result) {
	sep := strings.Repeat("─", 60)

	fmt.Printf("Attempt:   %s\n", r.AttemptID)
	fmt.Printf("Score:     %.1f%%  (%.2f / %.2f marks)\n", r.Score, r.MarksAwarded, r.MaxMarks)
	fmt.Printf("Answers:   %d correct, %d incorrect, %d unanswered\n",
		r.CorrectAnswers, r.IncorrectAnswers, r.Unanswered)
	if len(r.ManualReview) > 0 {
		fmt.Printf("Manual:    %s\n", strings.Join(r.ManualReview, ", "))
	}

	fmt.Println(sep)
	fmt.Printf("%-24s  %-7s  %8s  %s\n", "Item", "Correct", "Awarded", "Pace")
	for _, q := range r.Questions {
		mark := "-"
		switch {
		case q.Correct == nil:
			mark = "review"
		case *q.Correct:
			mark = "yes"
		case q.Answered:
			mark = "no"
		}
		fmt.Printf("%-24s  %-7s  %8.2f  %s\n", q.ItemID, mark, q.Awarded, q.TimeBucket)
	}

	fmt.Println(sep)
	fmt.Printf("Pacing:    %d too fast, %d optimal, %d too slow (avg %.1fs/question)\n",
		r.Breakdown.TooFast, r.Breakdown.Optimal, r.Breakdown.TooSlow, r.Breakdown.AvgTimePerQSecs)
	if len(r.Breakdown.WeakAreas) > 0 {
		fmt.Printf("Weak:      %s\n", strings.Join(r.Breakdown.WeakAreas, ", "))
	}
	if len(r.Breakdown.StrongAreas) > 0 {
		fmt.Printf("Strong:    %s\n", strings.Join(r.Breakdown.StrongAreas, ", "))
	}
}
