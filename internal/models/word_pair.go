package models

import "time"

// Difficulty grades how close the two words of a pair are
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulties
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// WordPair is one library entry
type WordPair struct {
	ID             string
	PublicWord     string
	UndercoverWord string
	Difficulty     Difficulty
	CreatedAt      time.Time
}
