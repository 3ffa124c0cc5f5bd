package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/undercover/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/undercover/internal/models"
)

// Repository defines the interface for game session persistence
type Repository interface {
	// CreateSession stores a brand new session at version 1
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error)

	// UpdateSession commits a session whose Version still matches the stored one
	UpdateSession(ctx context.Context, input *UpdateSessionInput) error

	// ListActiveSessions returns the IDs of sessions that are still in progress
	ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error)
}
