package game

import (
	"errors"

	"github.com/KirkDiggler/undercover/internal/services/wordpair"
)

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidSeatCount GameError = "a game needs between 3 and 6 seats"
	ErrDuplicatePersona GameError = "a persona can only occupy one seat"
	ErrSessionNotFound  GameError = "session not found"
	ErrSessionFinished  GameError = "session is finished"
	ErrInvalidSeat      GameError = "seat does not exist"
	ErrSeatEliminated   GameError = "seat is eliminated"
	ErrInvalidPhase     GameError = "operation not allowed in the current phase"
	ErrPersonaNotFound  GameError = "persona not found"

	// ErrVoteTallyEmpty is returned when no vote resolved to a seat; the voting phase can be run again
	ErrVoteTallyEmpty GameError = "no valid votes to tally"

	ErrInvalidWordPair  = wordpair.ErrInvalidWordPair
	ErrNoWordsAvailable = wordpair.ErrNoWordsAvailable

	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNilPersonaRepo   GameError = "persona repository cannot be nil"
	ErrNilWordPairs     GameError = "word pair service cannot be nil"
	ErrNilGenerator     GameError = "generator cannot be nil"
	ErrNilComposer      GameError = "composer cannot be nil"
	ErrNilFallback      GameError = "fallback service cannot be nil"
	ErrNilRandom        GameError = "random source cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)

var validationErrors = []error{
	ErrInvalidSeatCount,
	ErrDuplicatePersona,
	ErrInvalidWordPair,
	ErrNoWordsAvailable,
	ErrSessionNotFound,
	ErrSessionFinished,
	ErrInvalidSeat,
	ErrSeatEliminated,
	ErrInvalidPhase,
	ErrPersonaNotFound,
}

// IsValidationError reports whether err is caused by the caller's request
// rather than by the engine or its storage
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
