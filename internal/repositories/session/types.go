package session

import "github.com/KirkDiggler/undercover/internal/models"

type CreateSessionInput struct {
	Session *models.GameSession
}

type GetSessionInput struct {
	SessionID string
}

// UpdateSessionInput carries the mutated session. Session.Version must be the
// version that was read; on success it is bumped in place.
type UpdateSessionInput struct {
	Session *models.GameSession
}

type ListActiveSessionsInput struct {
}

type ListActiveSessionsOutput struct {
	SessionIDs []string
}
