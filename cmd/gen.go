package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/contentgen"
	"github.com/prepdeck/prepdeck/internal/engine"
	"github.com/prepdeck/prepdeck/internal/item"
	"github.com/prepdeck/prepdeck/internal/llm"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate new items for a topic",
	Long: "Generates validated items with the configured LLM provider and adds\n" +
		"them to the catalog. Falls back to a deterministic item bank when no\n" +
		"provider is available or generation fails.",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			return fmt.Errorf("--topic is required")
		}
		subtopic, _ := cmd.Flags().GetString("subtopic")
		subject, _ := cmd.Flags().GetString("subject")
		count, _ := cmd.Flags().GetInt("count")
		diffStr, _ := cmd.Flags().GetString("difficulty")
		adaptive, _ := cmd.Flags().GetBool("adaptive")
		offline, _ := cmd.Flags().GetBool("offline")

		diff := item.Difficulty(diffStr)
		if !diff.Valid() {
			return fmt.Errorf("unknown difficulty %q", diffStr)
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		log := newLogger(cmd)

		if adaptive {
			next, err := eng.NextDifficulty(ctx, topic, diff)
			if err != nil {
				return fmt.Errorf("adapt difficulty: %w", err)
			}
			if next != diff {
				fmt.Printf("Adjusting difficulty %s -> %s from recent accuracy.\n", diff, next)
				diff = next
			}
		}

		generator := contentgen.Generator(contentgen.NewFallback())
		if !offline {
			provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
			if err != nil {
				fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
				fmt.Fprintln(os.Stderr, "Using the deterministic item bank instead.")
			} else {
				primary := contentgen.New(provider, contentgen.DefaultConfig())
				generator = contentgen.WithFallback(primary, contentgen.NewFallback(), st.EventRepo(), log)
			}
		}

		input := contentgen.GenerateInput{
			Topic:          topic,
			Subtopic:       subtopic,
			Subject:        subject,
			Difficulty:     diff,
			Count:          count,
			PriorQuestions: priorQuestions(eng.Items(), topic),
			WeakAreaNotes:  weakAreaNotes(cmd, eng, topic),
		}

		items, err := generator.Generate(ctx, input)
		if err != nil {
			return fmt.Errorf("generate items: %w", err)
		}
		if err := eng.AddItems(ctx, items); err != nil {
			return fmt.Errorf("add generated items: %w", err)
		}

		fmt.Printf("Generated %d %s items for %q:\n", len(items), diff, topic)
		for _, it := range items {
			fmt.Printf("  %-24s  %s\n", it.ID, truncate(it.Question, 56))
		}
		return nil
	},
}

// priorQuestions collects existing question texts for a topic so the
// prompt can steer away from duplicates.
func priorQuestions(items []item.LearningItem, topic string) []string {
	var prior []string
	for _, it := range items {
		if it.Topic == topic {
			prior = append(prior, it.Question)
		}
	}
	return prior
}

// weakAreaNotes summarizes recent accuracy on the topic for the prompt.
func weakAreaNotes(cmd *cobra.Command, eng *engine.Engine, topic string) []string {
	to := time.Now().UTC()
	profile, err := eng.Progress(cmd.Context(), to.AddDate(0, 0, -30), to)
	if err != nil || profile == nil {
		return nil
	}
	tm, ok := profile.TopicMastery[topic]
	if !ok || tm.Attempts == 0 {
		return nil
	}
	return []string{fmt.Sprintf(
		"Learner answered %d of %d recent %s questions correctly.",
		tm.Correct, tm.Attempts, topic,
	)}
}

var genLogCmd = &cobra.Command{
	Use:   "log",
	Short: "List recent generation requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		_, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().RecentGenRequests(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No generation requests recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-28s  %6s  %6s  %7s  %5s  %s\n",
			"ID", "Timestamp", "Model", "In", "Out", "Ms", "Items", "OK")
		fmt.Println(strings.Repeat("─", 96))
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			if e.FallbackUsed {
				ok += " (fallback)"
			}
			fmt.Printf("%-5d  %-19s  %-28s  %6d  %6d  %7d  %5d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				e.ItemsGenerated,
				ok,
			)
		}
		return nil
	},
}

var genStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated generation cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		usage, err := st.EventRepo().GenUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No generation usage recorded yet.")
			return nil
		}

		fmt.Println("Estimated Cost (USD)")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
			"Model", "Calls", "Input", "Output", "Cost")
		fmt.Println(strings.Repeat("─", 72))

		var totalCost float64
		var unknownModels []string
		for _, u := range usage {
			cost := llm.LookupCost(u.Model)
			if cost == nil {
				unknownModels = append(unknownModels, u.Model)
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					truncate(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, "?")
				continue
			}
			c := cost.Cost(u.InputTokens, u.OutputTokens)
			totalCost += c
			fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
				truncate(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 72))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}
		return nil
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	genCmd.Flags().StringP("topic", "t", "", "Target topic (required)")
	genCmd.Flags().String("subtopic", "", "Narrower subtopic")
	genCmd.Flags().String("subject", "", "Parent subject")
	genCmd.Flags().StringP("difficulty", "D", "medium", "Target difficulty (easy|medium|hard|expert)")
	genCmd.Flags().IntP("count", "n", 5, "Number of items to generate")
	genCmd.Flags().Bool("adaptive", false, "Adjust difficulty from recent topic accuracy")
	genCmd.Flags().Bool("offline", false, "Skip the LLM and use the deterministic item bank")

	genLogCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	genCmd.AddCommand(genLogCmd)
	genCmd.AddCommand(genStatsCmd)
}
