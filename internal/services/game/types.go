package game

import (
	"time"

	"github.com/KirkDiggler/undercover/internal/common/clock"
	"github.com/KirkDiggler/undercover/internal/common/random"
	"github.com/KirkDiggler/undercover/internal/common/uuid"
	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/KirkDiggler/undercover/internal/models"
	"github.com/KirkDiggler/undercover/internal/prompts"
	personaRepo "github.com/KirkDiggler/undercover/internal/repositories/persona"
	sessionRepo "github.com/KirkDiggler/undercover/internal/repositories/session"
	"github.com/KirkDiggler/undercover/internal/services/fallback"
	"github.com/KirkDiggler/undercover/internal/services/wordpair"
)

const (
	MinSeats = 3
	MaxSeats = 6

	// DefaultGenerationAttempts is the number of model calls before falling back
	DefaultGenerationAttempts = 3

	DefaultDescriptionRetryDelay = time.Second
	DefaultVoteRetryDelay        = 500 * time.Millisecond
	DefaultSpeechRetryDelay      = time.Second
)

// TieBreakPolicy picks one seat among those tied for the most votes
type TieBreakPolicy string

const (
	// TieBreakRandom picks uniformly among the tied seats
	TieBreakRandom TieBreakPolicy = "random"

	// TieBreakSaboteurPriority eliminates the saboteur if tied, otherwise picks uniformly
	TieBreakSaboteurPriority TieBreakPolicy = "saboteur_priority"

	// TieBreakCivilianPriority picks uniformly among tied civilians, or among everyone if none
	TieBreakCivilianPriority TieBreakPolicy = "civilian_priority"

	// TieBreakWeightedRandom weights the saboteur down by 0.8 and, after round 1,
	// jitters every weight by a factor in [0.7, 1.3)
	TieBreakWeightedRandom TieBreakPolicy = "weighted_random"
)

// TieBreakPolicies is every policy; with no pinned policy one is drawn per tie
var TieBreakPolicies = []TieBreakPolicy{
	TieBreakRandom,
	TieBreakSaboteurPriority,
	TieBreakCivilianPriority,
	TieBreakWeightedRandom,
}

// Valid reports whether p is a known policy
func (p TieBreakPolicy) Valid() bool {
	for _, known := range TieBreakPolicies {
		if p == known {
			return true
		}
	}
	return false
}

// Config holds the configuration for the game service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	PersonaRepo personaRepo.Repository

	// Service dependencies
	WordPairs     wordpair.Service
	Generator     llm.Generator
	Composer      *prompts.Composer
	Fallback      fallback.Service
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// GenerationAttempts bounds model calls per artifact
	GenerationAttempts int

	// Pauses between failed attempts
	DescriptionRetryDelay time.Duration
	VoteRetryDelay        time.Duration
	SpeechRetryDelay      time.Duration

	// TieBreakPolicy pins one policy; empty draws a policy at random for every tie
	TieBreakPolicy TieBreakPolicy
}

// CreateSessionInput contains parameters for creating a new game
type CreateSessionInput struct {
	// PersonaIDs fill the seats in order
	PersonaIDs []string

	Difficulty models.Difficulty

	// MaxRounds is advisory; defaults to the number of seats
	MaxRounds int

	// CustomPair skips the word library when set
	CustomPair *wordpair.CustomPair
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *models.GameSession
}

// GetSessionInput identifies a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput is a snapshot of the session. It includes both words and
// the saboteur seat, so it is only meant for hosts and spectators.
type GetSessionOutput struct {
	Session *models.GameSession
}

// RecordDescriptionInput identifies the seat that should speak
type RecordDescriptionInput struct {
	SessionID string
	SeatIndex int
}

// RecordDescriptionOutput contains the committed entry
type RecordDescriptionOutput struct {
	Entry *models.DescriptionEntry
}

// RunVotingPhaseInput identifies the session
type RunVotingPhaseInput struct {
	SessionID string
}

// RunVotingPhaseOutput contains one vote per seat that could vote, in seat order
type RunVotingPhaseOutput struct {
	Votes []*models.VoteEntry
}

// ApplyVotesInput contains the votes to tally
type ApplyVotesInput struct {
	SessionID string
	Votes     []*models.VoteEntry
}

// TieBreak describes how a tie was resolved
type TieBreak struct {
	Policy     TieBreakPolicy
	Candidates []int
}

// EliminationResult is shared by every operation that removes a seat
type EliminationResult struct {
	EliminatedSeat int
	EliminatedName string
	WasSaboteur    bool
	Speech         string

	GameOver bool
	Winner   models.Winner
}

// ApplyVotesOutput contains the outcome of a voting round
type ApplyVotesOutput struct {
	EliminationResult

	// Tally counts valid votes per seat
	Tally map[int]int

	// TieBreak is nil when one seat had the most votes
	TieBreak *TieBreak

	// NextRound is the round to describe next; unchanged when the game is over
	NextRound int
}

// ManualEliminateInput identifies the seat to remove
type ManualEliminateInput struct {
	SessionID string
	SeatIndex int
}

// ManualEliminateOutput contains the outcome. AlreadyEliminated is set when
// the seat was out before the call, in which case nothing changed.
type ManualEliminateOutput struct {
	EliminationResult

	AlreadyEliminated bool
}

// PlayRoundInput identifies the session
type PlayRoundInput struct {
	SessionID string
}

// PlayRoundOutput contains everything that happened in the round
type PlayRoundOutput struct {
	Round        int
	Descriptions []*models.DescriptionEntry
	Votes        []*models.VoteEntry
	Result       *ApplyVotesOutput
}
