package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List items due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		due := eng.DueItems(limit)
		if len(due) == 0 {
			fmt.Println("Nothing due. Well done.")
			return nil
		}

		fmt.Printf("%-24s  %-16s  %-8s  %s\n", "Item", "Topic", "Diff", "Question")
		for _, it := range due {
			fmt.Printf("%-24s  %-16s  %-8s  %s\n",
				it.ID, it.Topic, it.Difficulty, truncate(it.Question, 48))
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().IntP("limit", "n", 0, "Maximum items to list (0 = all)")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
