package models

import "time"

// Persona is an AI character that can occupy a seat
type Persona struct {
	ID string

	// Name is the display name used in prompts and vote parsing
	Name string

	// Personality is a short comma separated list of traits
	Personality string

	Description string

	// Instructions is the opaque persona prompt prepended to every game prompt
	Instructions string

	CreatedAt time.Time
}
