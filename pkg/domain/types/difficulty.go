package types

import "fmt"

// Difficulty represents the implementation difficulty of a mitigation strategy
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// AllDifficulties returns all valid difficulties in ascending order
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
	}
}

// IsValid checks if the difficulty is valid
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy,
		DifficultyMedium,
		DifficultyHard:
		return true
	default:
		return false
	}
}

// String returns the string representation of the difficulty
func (d Difficulty) String() string {
	return string(d)
}

// ParseDifficulty parses a string into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	difficulty := Difficulty(s)
	if !difficulty.IsValid() {
		return "", fmt.Errorf("invalid difficulty: %s", s)
	}
	return difficulty, nil
}
