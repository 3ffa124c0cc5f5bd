package fallback

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/undercover/internal/services/fallback Service

// Service synthesizes game content when generation gives up
type Service interface {
	// GetDescription returns a canned description for the seat's role
	GetDescription(ctx context.Context, input *GetDescriptionInput) (*GetDescriptionOutput, error)

	// GetVote picks a target among the eligible seats and a canned reason
	GetVote(ctx context.Context, input *GetVoteInput) (*GetVoteOutput, error)

	// GetSpeech returns a canned elimination speech that satisfies the speech length bound
	GetSpeech(ctx context.Context, input *GetSpeechInput) (*GetSpeechOutput, error)
}
