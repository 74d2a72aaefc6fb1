package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery [item-id]",
	Short: "Show mastery for one item or for the whole set",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 1 {
			m, err := eng.ItemMastery(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: %.1f\n", args[0], m)
			return nil
		}

		set := eng.SetMastery()
		fmt.Printf("Overall mastery: %.1f\n", set.OverallMastery)
		fmt.Printf("Total reviews:   %d\n", set.TotalReviews)
		if !set.LastReviewedAt.IsZero() {
			fmt.Printf("Last reviewed:   %s\n", set.LastReviewedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}
