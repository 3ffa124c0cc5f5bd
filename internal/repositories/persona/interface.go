package persona

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/undercover/internal/repositories/persona Repository

import (
	"context"

	"github.com/KirkDiggler/undercover/internal/models"
)

// Repository defines the interface for persona persistence
type Repository interface {
	// SavePersona persists a persona
	SavePersona(ctx context.Context, input *SavePersonaInput) error

	// GetPersona retrieves a persona by ID
	GetPersona(ctx context.Context, input *GetPersonaInput) (*models.Persona, error)

	// ListPersonas retrieves every stored persona
	ListPersonas(ctx context.Context, input *ListPersonasInput) (*ListPersonasOutput, error)
}
