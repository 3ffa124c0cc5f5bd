package prompts

import (
	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/KirkDiggler/undercover/internal/models"
)

// Line is one spoken description as shown to other seats
type Line struct {
	SeatName string
	Text     string
}

// RoundLines is every description of one earlier round
type RoundLines struct {
	Round int
	Lines []Line
}

// DescriptionPromptInput contains what a seat may know when it describes its word
type DescriptionPromptInput struct {
	// Instructions is the persona prompt from the persona store
	Instructions string

	Role       models.Role
	TargetWord string

	// SpokenThisRound is what earlier seats said this round, in seat order
	SpokenThisRound []Line

	// PreviousRounds is the history of completed rounds
	PreviousRounds []RoundLines
}

// VotePromptInput contains what a seat may know when it votes
type VotePromptInput struct {
	Instructions string

	// Personality biases the civilian strategy hint
	Personality string

	Role    models.Role
	OwnWord string

	// Descriptions are this round's descriptions from non-eliminated seats in seat order
	Descriptions []Line

	// Targets are the names the seat may vote for
	Targets []string
}

// VotePrompt is the built voting prompt plus the hints that were drawn for it
type VotePrompt struct {
	Messages []llm.Message

	StrategyHint string
	Angle        string
	Posture      string
}

// SpeechPromptInput contains the context of an elimination
type SpeechPromptInput struct {
	Name         string
	Personality  string
	Instructions string
	IsSaboteur   bool

	Round          int
	PublicWord     string
	UndercoverWord string
}

// WordPairPromptInput asks for new library entries
type WordPairPromptInput struct {
	Theme      string
	Difficulty models.Difficulty
	Count      int
}
