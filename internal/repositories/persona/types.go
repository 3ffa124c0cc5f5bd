package persona

import "github.com/KirkDiggler/undercover/internal/models"

// SavePersonaInput contains parameters for saving a persona
type SavePersonaInput struct {
	Persona *models.Persona
}

// GetPersonaInput contains parameters for retrieving a persona
type GetPersonaInput struct {
	PersonaID string
}

type ListPersonasInput struct {
}

type ListPersonasOutput struct {
	Personas []*models.Persona
}
