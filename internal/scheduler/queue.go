package scheduler

import (
	"sort"
	"time"

	"github.com/prepdeck/prepdeck/internal/item"
)

// Queue priorities. Lower values are served first.
const (
	priorityNew   = 1 // never reviewed
	priorityShaky = 2 // due, last performance below the shaky threshold
	priorityDue   = 3 // due, last performance at or above the threshold
)

// ShakyPerformance is the last-performance cutoff below which a due item
// jumps ahead of other due items in the queue.
const ShakyPerformance = 0.6

// DueItems returns the items due for review at now, ordered by priority:
// new items first, then due items whose last performance was below
// ShakyPerformance, then the remaining due items. Ties keep the original
// item order. limit <= 0 means no limit.
func DueItems(items []item.LearningItem, progress map[string]ItemProgress, now time.Time, limit int) []item.LearningItem {
	type entry struct {
		it       item.LearningItem
		priority int
		order    int
	}

	var due []entry
	for i, it := range items {
		p, ok := progress[it.ID]
		if !ok || len(p.Records) == 0 {
			due = append(due, entry{it: it, priority: priorityNew, order: i})
			continue
		}
		if !p.IsDue(now) {
			continue
		}
		prio := priorityDue
		if p.Last().Performance < ShakyPerformance {
			prio = priorityShaky
		}
		due = append(due, entry{it: it, priority: prio, order: i})
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].priority != due[j].priority {
			return due[i].priority < due[j].priority
		}
		return due[i].order < due[j].order
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	result := make([]item.LearningItem, len(due))
	for i, e := range due {
		result[i] = e.it
	}
	return result
}
