package scheduler

import (
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/item"
)

func queueItems(ids ...string) []item.LearningItem {
	items := make([]item.LearningItem, len(ids))
	for i, id := range ids {
		items[i] = item.LearningItem{ID: id, Topic: "algebra", Difficulty: item.DifficultyMedium, Type: item.TypeSingleChoice}
	}
	return items
}

func reviewed(itemID string, lastPerf float64, nextReview time.Time) ItemProgress {
	return ItemProgress{
		ItemID: itemID,
		Records: []ReviewRecord{
			{IntervalDays: 1, Performance: lastPerf, NextReview: nextReview, RecordedAt: nextReview.AddDate(0, 0, -1)},
		},
		TotalReviews:   1,
		LastReviewedAt: nextReview.AddDate(0, 0, -1),
	}
}

func TestDueItems_NewItemsFirst(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := queueItems("due-1", "new-1", "due-2")
	progress := map[string]ItemProgress{
		"due-1": reviewed("due-1", 0.9, now.AddDate(0, 0, -1)),
		"due-2": reviewed("due-2", 0.9, now.AddDate(0, 0, -2)),
	}

	got := DueItems(items, progress, now, 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	if got[0].ID != "new-1" {
		t.Errorf("got[0] = %s, want new-1", got[0].ID)
	}
}

func TestDueItems_ShakyBeforeSolid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := queueItems("solid", "shaky")
	progress := map[string]ItemProgress{
		"solid": reviewed("solid", 0.8, now.AddDate(0, 0, -1)),
		"shaky": reviewed("shaky", 0.5, now.AddDate(0, 0, -1)),
	}

	got := DueItems(items, progress, now, 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "shaky" || got[1].ID != "solid" {
		t.Errorf("order = [%s %s], want [shaky solid]", got[0].ID, got[1].ID)
	}
}

func TestDueItems_ExactThresholdIsSolid(t *testing.T) {
	// Last performance exactly 0.6 stays in the ordinary due bucket.
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := queueItems("boundary", "shaky")
	progress := map[string]ItemProgress{
		"boundary": reviewed("boundary", 0.6, now.AddDate(0, 0, -1)),
		"shaky":    reviewed("shaky", 0.59, now.AddDate(0, 0, -1)),
	}

	got := DueItems(items, progress, now, 0)
	if got[0].ID != "shaky" {
		t.Errorf("got[0] = %s, want shaky", got[0].ID)
	}
}

func TestDueItems_TiesKeepOriginalOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := queueItems("c", "a", "b")

	got := DueItems(items, nil, now, 0)
	if got[0].ID != "c" || got[1].ID != "a" || got[2].ID != "b" {
		t.Errorf("order = [%s %s %s], want original [c a b]", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestDueItems_NotDueExcluded(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := queueItems("future")
	progress := map[string]ItemProgress{
		"future": reviewed("future", 0.9, now.AddDate(0, 0, 3)),
	}

	got := DueItems(items, progress, now, 0)
	if len(got) != 0 {
		t.Errorf("expected 0 due items, got %d", len(got))
	}
}

func TestDueItems_ReappearsOnDueDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := queueItems("item-a")
	progress := map[string]ItemProgress{
		"item-a": reviewed("item-a", 0.9, now),
	}

	before := DueItems(items, progress, now.Add(-time.Second), 0)
	if len(before) != 0 {
		t.Errorf("item due before its review date")
	}
	onDate := DueItems(items, progress, now, 0)
	if len(onDate) != 1 {
		t.Errorf("item not due exactly on its review date")
	}
}

func TestDueItems_Limit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := queueItems("a", "b", "c", "d")

	got := DueItems(items, nil, now, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 items with limit, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("order = [%s %s], want [a b]", got[0].ID, got[1].ID)
	}
}
