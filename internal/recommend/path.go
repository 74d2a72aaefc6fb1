package recommend

import (
	"fmt"
	"strings"
)

// Phase is one stage of a learning path.
type Phase struct {
	Name         string `json:"name"`
	Focus        string `json:"focus"`
	DurationDays int    `json:"duration_days"`
}

// LearningPath is the phased plan selected from overall accuracy.
type LearningPath struct {
	Phases        []Phase `json:"phases"`
	EstimatedDays int     `json:"estimated_days"`
}

// Path accuracy bands, on the [0,100] scale.
const (
	// PathFoundationBelow selects the full three-phase path.
	PathFoundationBelow = 40.0
	// PathRefinementAt selects the single refinement phase.
	PathRefinementAt = 70.0
)

// PathFor selects a phased learning path from overall accuracy. Weak areas,
// when provided, are folded into the focus descriptions.
func PathFor(accuracy float64, weakAreas []string) LearningPath {
	focusSuffix := ""
	if len(weakAreas) > 0 {
		focusSuffix = fmt.Sprintf(", starting with %s", strings.Join(weakAreas, ", "))
	}

	var phases []Phase
	switch {
	case accuracy < PathFoundationBelow:
		phases = []Phase{
			{Name: "Foundation", DurationDays: 14, Focus: "core concepts and guided examples" + focusSuffix},
			{Name: "Practice", DurationDays: 14, Focus: "mixed practice sets with increasing difficulty"},
			{Name: "Mastery", DurationDays: 7, Focus: "timed full-length tests and error review"},
		}
	case accuracy < PathRefinementAt:
		phases = []Phase{
			{Name: "Practice", DurationDays: 14, Focus: "targeted practice on weaker topics" + focusSuffix},
			{Name: "Mastery", DurationDays: 7, Focus: "timed full-length tests and error review"},
		}
	default:
		phases = []Phase{
			{Name: "Refinement", DurationDays: 7, Focus: "polish edge cases and maintain speed" + focusSuffix},
		}
	}

	total := 0
	for _, p := range phases {
		total += p.DurationDays
	}
	return LearningPath{Phases: phases, EstimatedDays: total}
}
