package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/engine"
	"github.com/prepdeck/prepdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "prepdeck",
	Short:        "Adaptive mastery engine for exam preparation",
	Long:         "PrepDeck schedules spaced-repetition reviews, evaluates test attempts,\nand adapts question difficulty to a learner's recent performance.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPDECK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: prepdeck.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then PREPDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		if log, err := zap.NewDevelopment(); err == nil {
			return log
		}
	}
	return zap.NewNop()
}

// openEngine opens the store and restores the engine from the latest
// snapshot. The caller must Close the returned store.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	eng, err := engine.New(cmd.Context(), cfg, st.SnapshotRepo(), st.EventRepo(),
		engine.WithLogger(newLogger(cmd)))
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("restore engine state: %w", err)
	}
	return eng, st, nil
}
