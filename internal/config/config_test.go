package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scheduler.DoubleAt != 0.8 {
		t.Errorf("Scheduler.DoubleAt = %v, want 0.8", cfg.Scheduler.DoubleAt)
	}
	if cfg.Adaptive.PromoteAt != 0.8 || cfg.Adaptive.DemoteBelow != 0.5 {
		t.Errorf("Adaptive = %+v, want 0.8/0.5", cfg.Adaptive)
	}
	if cfg.Progress.WeakBelow != 60 || cfg.Progress.StrongAtLeast != 75 {
		t.Errorf("Progress thresholds = %v/%v, want 60/75", cfg.Progress.WeakBelow, cfg.Progress.StrongAtLeast)
	}
	if cfg.SnapshotKeep != 10 {
		t.Errorf("SnapshotKeep = %d, want 10", cfg.SnapshotKeep)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PREPDECK_SCHEDULER_DOUBLE_AT", "0.9")
	t.Setenv("PREPDECK_RECOMMEND_MAX_ITEMS", "4")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scheduler.DoubleAt != 0.9 {
		t.Errorf("Scheduler.DoubleAt = %v, want 0.9 from env", cfg.Scheduler.DoubleAt)
	}
	if cfg.Recommend.MaxItems != 4 {
		t.Errorf("Recommend.MaxItems = %d, want 4 from env", cfg.Recommend.MaxItems)
	}
	// Untouched values stay at defaults.
	if cfg.Scheduler.GrowAt != 0.6 {
		t.Errorf("Scheduler.GrowAt = %v, want default 0.6", cfg.Scheduler.GrowAt)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prepdeck.yaml")
	content := []byte("progress:\n  weak_below: 55\nsnapshot:\n  keep: 3\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Progress.WeakBelow != 55 {
		t.Errorf("Progress.WeakBelow = %v, want 55 from file", cfg.Progress.WeakBelow)
	}
	if cfg.Evaluation.WeakBelow != 55 {
		t.Errorf("Evaluation.WeakBelow = %v, want 55 (shared threshold)", cfg.Evaluation.WeakBelow)
	}
	if cfg.SnapshotKeep != 3 {
		t.Errorf("SnapshotKeep = %d, want 3 from file", cfg.SnapshotKeep)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_RejectsMisorderedThresholds(t *testing.T) {
	t.Setenv("PREPDECK_ADAPTIVE_PROMOTE_AT", "0.4")
	if _, err := Load(""); err == nil {
		t.Fatal("expected validation error when promote_at <= demote_below")
	}
}
