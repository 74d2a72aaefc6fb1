package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/engine"
)

var reviewCmd = &cobra.Command{
	Use:   "review <item-id> <performance> [<item-id> <performance> ...]",
	Short: "Record review outcomes and reschedule the items",
	Long: "Records one or more reviews in a single atomic batch. Performance is a\n" +
		"fraction in [0,1]; a single invalid review rejects the whole batch.",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 || len(args)%2 != 0 {
			return fmt.Errorf("expected <item-id> <performance> pairs, got %d args", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		secs, _ := cmd.Flags().GetInt("secs")

		var reviews []engine.ReviewInput
		for i := 0; i < len(args); i += 2 {
			perf, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return fmt.Errorf("invalid performance %q: %w", args[i+1], err)
			}
			reviews = append(reviews, engine.ReviewInput{
				ItemID:        args[i],
				Performance:   perf,
				TimeSpentSecs: secs,
			})
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		results, err := eng.SubmitReviews(cmd.Context(), reviews)
		if err != nil {
			return err
		}

		fmt.Printf("%-24s  %-8s  %-12s  %s\n", "Item", "Interval", "Next Review", "Mastery")
		for _, r := range results {
			fmt.Printf("%-24s  %5dd    %-12s  %5.1f\n",
				r.ItemID,
				r.Record.IntervalDays,
				r.Record.NextReview.Format("2006-01-02"),
				r.Mastery,
			)
		}
		fmt.Printf("\nSet mastery: %.1f\n", results[len(results)-1].SetMastery)
		return nil
	},
}

func init() {
	reviewCmd.Flags().Int("secs", 0, "Seconds spent per review, recorded with each event")
}
