package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/item"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage the learning item catalog",
}

var itemsAddCmd = &cobra.Command{
	Use:   "add <items.json>",
	Short: "Add items from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read items file: %w", err)
		}

		var items []item.LearningItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("parse items file: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("no items in %s", args[0])
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.AddItems(cmd.Context(), items); err != nil {
			return err
		}
		fmt.Printf("Added %d items. Catalog size: %d\n", len(items), len(eng.Items()))
		return nil
	},
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		items := eng.Items()
		if len(items) == 0 {
			fmt.Println("Catalog is empty. Use 'prepdeck items add' or 'prepdeck gen'.")
			return nil
		}

		fmt.Printf("%-24s  %-16s  %-8s  %-13s  %s\n", "Item", "Topic", "Diff", "Type", "Question")
		for _, it := range items {
			fmt.Printf("%-24s  %-16s  %-8s  %-13s  %s\n",
				it.ID, it.Topic, it.Difficulty, it.Type, truncate(it.Question, 40))
		}
		return nil
	},
}

func init() {
	itemsCmd.AddCommand(itemsAddCmd)
	itemsCmd.AddCommand(itemsListCmd)
}
