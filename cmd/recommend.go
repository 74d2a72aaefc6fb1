package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show study recommendations and a learning path",
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
		recs, path, err := eng.Recommend(cmd.Context(), from, to, nil)
		if err != nil {
			return err
		}

		if len(recs) == 0 {
			fmt.Println("No recommendations. Keep going.")
		} else {
			for _, r := range recs {
				topic := ""
				if r.Topic != "" {
					topic = " [" + r.Topic + "]"
				}
				fmt.Printf("(%s) %s%s\n    %s\n", r.Priority, r.Action, topic, r.Reason)
			}
		}

		if len(path.Phases) > 0 {
			fmt.Println(strings.Repeat("─", 60))
			fmt.Printf("Learning path (~%d days):\n", path.EstimatedDays)
			for i, p := range path.Phases {
				fmt.Printf("  %d. %s (%dd): %s\n", i+1, p.Name, p.DurationDays, p.Focus)
			}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().IntP("days", "d", 30, "Window length in days")
}
