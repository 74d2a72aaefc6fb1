package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the performance profile for a recent window",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		if days <= 0 {
			return fmt.Errorf("--days must be positive, got %d", days)
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		to := time.Now().UTC()
		from := to.AddDate(0, 0, -days)
		profile, err := eng.Progress(cmd.Context(), from, to)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(profile)
		}

		fmt.Printf("Window:       last %d days\n", days)
		fmt.Printf("Questions:    %d (%d correct)\n", profile.TotalQuestions, profile.TotalCorrect)
		fmt.Printf("Accuracy:     %.1f%%\n", profile.Accuracy*100)
		fmt.Printf("Consistency:  %.2f\n", profile.Consistency)
		fmt.Printf("Improvement:  %+.1f%%\n", profile.ImprovementRate*100)

		if len(profile.TopicMastery) > 0 {
			topics := make([]string, 0, len(profile.TopicMastery))
			for t := range profile.TopicMastery {
				topics = append(topics, t)
			}
			sort.Strings(topics)

			fmt.Println(strings.Repeat("─", 60))
			fmt.Printf("%-20s  %7s  %8s  %10s\n", "Topic", "Mastery", "Attempts", "Confidence")
			for _, t := range topics {
				tm := profile.TopicMastery[t]
				fmt.Printf("%-20s  %7.1f  %8d  %10.2f\n", t, tm.Mastery, tm.Attempts, tm.Confidence)
			}
		}

		if len(profile.WeakAreas) > 0 {
			fmt.Printf("\nWeak areas:   %s\n", strings.Join(profile.WeakAreas, ", "))
		}
		if len(profile.StrongAreas) > 0 {
			fmt.Printf("Strong areas: %s\n", strings.Join(profile.StrongAreas, ", "))
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().IntP("days", "d", 30, "Window length in days")
	progressCmd.Flags().Bool("json", false, "Print the full profile as JSON")
}
