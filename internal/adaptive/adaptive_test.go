package adaptive

import (
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/item"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func outcomes(corrects []bool, hoursAgo []int) []Outcome {
	os := make([]Outcome, len(corrects))
	for i := range corrects {
		os[i] = Outcome{Correct: corrects[i], At: now.Add(-time.Duration(hoursAgo[i]) * time.Hour)}
	}
	return os
}

func TestAdjust_PromoteOnHighAccuracy(t *testing.T) {
	th := DefaultThresholds()
	got := th.Adjust(item.DifficultyMedium, 0.85, true)
	if got != item.DifficultyHard {
		t.Errorf("Adjust(medium, 0.85) = %s, want hard", got)
	}
}

func TestAdjust_DemoteOnLowAccuracy(t *testing.T) {
	th := DefaultThresholds()
	got := th.Adjust(item.DifficultyMedium, 0.3, true)
	if got != item.DifficultyEasy {
		t.Errorf("Adjust(medium, 0.3) = %s, want easy", got)
	}
}

func TestAdjust_MidRangeUnchanged(t *testing.T) {
	th := DefaultThresholds()
	got := th.Adjust(item.DifficultyMedium, 0.65, true)
	if got != item.DifficultyMedium {
		t.Errorf("Adjust(medium, 0.65) = %s, want medium", got)
	}
}

func TestAdjust_Boundaries(t *testing.T) {
	th := DefaultThresholds()
	if got := th.Adjust(item.DifficultyMedium, 0.8, true); got != item.DifficultyHard {
		t.Errorf("exact 0.8 should promote, got %s", got)
	}
	if got := th.Adjust(item.DifficultyMedium, 0.5, true); got != item.DifficultyMedium {
		t.Errorf("exact 0.5 should not demote, got %s", got)
	}
}

func TestAdjust_CeilingAndFloor(t *testing.T) {
	th := DefaultThresholds()
	if got := th.Adjust(item.DifficultyExpert, 1.0, true); got != item.DifficultyExpert {
		t.Errorf("expert should stay at ceiling, got %s", got)
	}
	if got := th.Adjust(item.DifficultyEasy, 0.0, true); got != item.DifficultyEasy {
		t.Errorf("easy should stay at floor, got %s", got)
	}
}

func TestAdjust_NoHistoryUnchanged(t *testing.T) {
	th := DefaultThresholds()
	if got := th.Adjust(item.DifficultyHard, 0, false); got != item.DifficultyHard {
		t.Errorf("Adjust with no history = %s, want hard", got)
	}
}

func TestAdjust_MovesAtMostOneRank(t *testing.T) {
	th := DefaultThresholds()
	if got := th.Adjust(item.DifficultyEasy, 1.0, true); got != item.DifficultyMedium {
		t.Errorf("Adjust(easy, 1.0) = %s, want medium (one rank)", got)
	}
	if got := th.Adjust(item.DifficultyExpert, 0.0, true); got != item.DifficultyHard {
		t.Errorf("Adjust(expert, 0.0) = %s, want hard (one rank)", got)
	}
}

func TestRollingAccuracy_Basic(t *testing.T) {
	history := outcomes([]bool{true, true, false, true}, []int{1, 2, 3, 4})
	acc, ok := RollingAccuracy(history, now)
	if !ok {
		t.Fatal("expected history")
	}
	if acc != 0.75 {
		t.Errorf("RollingAccuracy() = %v, want 0.75", acc)
	}
}

func TestRollingAccuracy_NoHistory(t *testing.T) {
	_, ok := RollingAccuracy(nil, now)
	if ok {
		t.Error("expected ok=false with no history")
	}
}

func TestRollingAccuracy_ExcludesOldAttempts(t *testing.T) {
	// Two wrong answers 8 days ago must not drag the accuracy down.
	history := outcomes([]bool{false, false, true, true}, []int{8 * 24, 8 * 24, 2, 1})
	acc, ok := RollingAccuracy(history, now)
	if !ok {
		t.Fatal("expected history")
	}
	if acc != 1.0 {
		t.Errorf("RollingAccuracy() = %v, want 1.0", acc)
	}
}

func TestRollingAccuracy_AllTooOld(t *testing.T) {
	history := outcomes([]bool{true, true}, []int{10 * 24, 9 * 24})
	_, ok := RollingAccuracy(history, now)
	if ok {
		t.Error("expected ok=false when everything is outside the window")
	}
}

func TestRollingAccuracy_WindowOfTen(t *testing.T) {
	// 12 recent attempts: two old misses beyond the last 10 are dropped.
	corrects := make([]bool, 12)
	hours := make([]int, 12)
	for i := range corrects {
		corrects[i] = i >= 2 // first two (oldest) are wrong
		hours[i] = 12 - i    // oldest first
	}
	acc, ok := RollingAccuracy(outcomes(corrects, hours), now)
	if !ok {
		t.Fatal("expected history")
	}
	if acc != 1.0 {
		t.Errorf("RollingAccuracy() = %v, want 1.0 over last 10", acc)
	}
}
