package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/prepdeck/prepdeck/internal/adaptive"
	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/progress"
	"github.com/prepdeck/prepdeck/internal/recommend"
	"github.com/prepdeck/prepdeck/internal/scheduler"
)

// Config is the engine-wide configuration, assembled from defaults, an
// optional config file, and PREPDECK_* environment variables (in that
// order of increasing precedence).
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string

	// SnapshotKeep is how many snapshots Prune retains.
	SnapshotKeep int

	Scheduler  scheduler.Policy
	Adaptive   adaptive.Thresholds
	Progress   progress.Config
	Evaluation evaluation.Config
	Recommend  recommend.Config
}

// Default returns the configuration with every package's standard values.
func Default() Config {
	return Config{
		SnapshotKeep: 10,
		Scheduler:    scheduler.DefaultPolicy(),
		Adaptive:     adaptive.DefaultThresholds(),
		Progress:     progress.DefaultConfig(),
		Evaluation:   evaluation.DefaultConfig(),
		Recommend:    recommend.DefaultConfig(),
	}
}

// Load reads configuration from an optional file and the environment.
// When path is empty, prepdeck.yaml is searched in the current directory
// and $XDG_CONFIG_HOME/prepdeck. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PREPDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("prepdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Default()
	cfg.DBPath = v.GetString("db")
	cfg.SnapshotKeep = v.GetInt("snapshot.keep")

	cfg.Scheduler.DoubleAt = v.GetFloat64("scheduler.double_at")
	cfg.Scheduler.GrowAt = v.GetFloat64("scheduler.grow_at")
	cfg.Scheduler.HoldAt = v.GetFloat64("scheduler.hold_at")
	cfg.Scheduler.MaxDoubleDays = v.GetInt("scheduler.max_double_days")
	cfg.Scheduler.MaxGrowDays = v.GetInt("scheduler.max_grow_days")

	cfg.Adaptive.PromoteAt = v.GetFloat64("adaptive.promote_at")
	cfg.Adaptive.DemoteBelow = v.GetFloat64("adaptive.demote_below")

	cfg.Progress.WeakBelow = v.GetFloat64("progress.weak_below")
	cfg.Progress.StrongAtLeast = v.GetFloat64("progress.strong_at_least")

	cfg.Evaluation.NumericTolerance = v.GetFloat64("evaluation.numeric_tolerance")
	cfg.Evaluation.WeakBelow = v.GetFloat64("progress.weak_below")
	cfg.Evaluation.StrongAtLeast = v.GetFloat64("progress.strong_at_least")

	cfg.Recommend.FoundationBelow = v.GetFloat64("recommend.foundation_below")
	cfg.Recommend.PracticeBelow = v.GetFloat64("recommend.practice_below")
	cfg.Recommend.MaxItems = v.GetInt("recommend.max_items")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults seeds viper so unset keys resolve to the package defaults.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("db", "")
	v.SetDefault("snapshot.keep", d.SnapshotKeep)

	v.SetDefault("scheduler.double_at", d.Scheduler.DoubleAt)
	v.SetDefault("scheduler.grow_at", d.Scheduler.GrowAt)
	v.SetDefault("scheduler.hold_at", d.Scheduler.HoldAt)
	v.SetDefault("scheduler.max_double_days", d.Scheduler.MaxDoubleDays)
	v.SetDefault("scheduler.max_grow_days", d.Scheduler.MaxGrowDays)

	v.SetDefault("adaptive.promote_at", d.Adaptive.PromoteAt)
	v.SetDefault("adaptive.demote_below", d.Adaptive.DemoteBelow)

	v.SetDefault("progress.weak_below", d.Progress.WeakBelow)
	v.SetDefault("progress.strong_at_least", d.Progress.StrongAtLeast)

	v.SetDefault("evaluation.numeric_tolerance", d.Evaluation.NumericTolerance)

	v.SetDefault("recommend.foundation_below", d.Recommend.FoundationBelow)
	v.SetDefault("recommend.practice_below", d.Recommend.PracticeBelow)
	v.SetDefault("recommend.max_items", d.Recommend.MaxItems)
}

// validate rejects threshold combinations that would misorder the bands.
func (c Config) validate() error {
	if c.Scheduler.DoubleAt < c.Scheduler.GrowAt || c.Scheduler.GrowAt < c.Scheduler.HoldAt {
		return fmt.Errorf("scheduler thresholds must satisfy double_at >= grow_at >= hold_at")
	}
	if c.Adaptive.PromoteAt <= c.Adaptive.DemoteBelow {
		return fmt.Errorf("adaptive promote_at must exceed demote_below")
	}
	if c.Progress.WeakBelow > c.Progress.StrongAtLeast {
		return fmt.Errorf("progress weak_below must not exceed strong_at_least")
	}
	if c.Recommend.FoundationBelow > c.Recommend.PracticeBelow {
		return fmt.Errorf("recommend foundation_below must not exceed practice_below")
	}
	return nil
}

// configDir returns the prepdeck config directory under XDG rules.
func configDir() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "prepdeck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "prepdeck")
}
