package fallback

import "github.com/KirkDiggler/undercover/internal/common/random"

// Target is a seat a fallback vote may pick
type Target struct {
	SeatIndex int
	Name      string
}

// GetDescriptionInput contains parameters for a fallback description
type GetDescriptionInput struct {
	IsSaboteur bool
}

// GetDescriptionOutput contains the fallback description
type GetDescriptionOutput struct {
	Text string
}

// GetVoteInput contains parameters for a fallback vote
type GetVoteInput struct {
	IsSaboteur bool

	// Targets must already exclude the voter and eliminated seats
	Targets []Target
}

// GetVoteOutput contains the fallback vote
type GetVoteOutput struct {
	Target Target
	Reason string

	// Text is the vote in the same shape a model is asked to answer in
	Text string
}

// GetSpeechInput contains parameters for a fallback elimination speech
type GetSpeechInput struct {
	Name       string
	IsSaboteur bool
}

// GetSpeechOutput contains the fallback speech
type GetSpeechOutput struct {
	Text string

	// Minimal is set when even the bank entry failed validation
	Minimal bool
}

// ServiceConfig contains configuration for the fallback service
type ServiceConfig struct {
	Random random.Source
}
