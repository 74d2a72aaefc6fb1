package item

// Difficulty is a totally ordered rank: easy < medium < hard < expert.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// difficultyOrder maps each difficulty to its rank.
var difficultyOrder = map[Difficulty]int{
	DifficultyEasy:   0,
	DifficultyMedium: 1,
	DifficultyHard:   2,
	DifficultyExpert: 3,
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	_, ok := difficultyOrder[d]
	return ok
}

// Rank returns the position of d in the easy..expert order, or -1 for an
// unknown difficulty.
func (d Difficulty) Rank() int {
	r, ok := difficultyOrder[d]
	if !ok {
		return -1
	}
	return r
}

// Promote returns the next harder difficulty, or d unchanged at the ceiling.
func (d Difficulty) Promote() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	case DifficultyHard:
		return DifficultyExpert
	}
	return d
}

// Demote returns the next easier difficulty, or d unchanged at the floor.
func (d Difficulty) Demote() Difficulty {
	switch d {
	case DifficultyExpert:
		return DifficultyHard
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	}
	return d
}
