package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/undercover/internal/services/game Service

// Service defines the interface for the Undercover game engine. Every
// mutating operation is serialized per session.
type Service interface {
	// CreateSession seats the personas, picks the words and the saboteur
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession returns a read only snapshot, secrets included
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// RecordDescription generates and stores one seat's description for the current round.
	// Callers go in seat order: a seat only sees this round's lower-index seats that already spoke.
	RecordDescription(ctx context.Context, input *RecordDescriptionInput) (*RecordDescriptionOutput, error)

	// RunVotingPhase collects one vote from every non-eliminated seat
	RunVotingPhase(ctx context.Context, input *RunVotingPhaseInput) (*RunVotingPhaseOutput, error)

	// ApplyVotes tallies votes, eliminates one seat and advances the game
	ApplyVotes(ctx context.Context, input *ApplyVotesInput) (*ApplyVotesOutput, error)

	// ManualEliminate eliminates a seat chosen by the host
	ManualEliminate(ctx context.Context, input *ManualEliminateInput) (*ManualEliminateOutput, error)

	// PlayRound runs the remaining descriptions, the voting phase and the elimination of the current round
	PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)
}
