package interpreter

// InterpretError is returned when model text cannot be turned into a usable artifact
type InterpretError string

func (e InterpretError) Error() string {
	return string(e)
}

const (
	// ErrEmptyText is returned when nothing is left after cleanup
	ErrEmptyText InterpretError = "text is empty after cleanup"

	// ErrSpeechLength is returned when a speech falls outside the allowed length
	ErrSpeechLength InterpretError = "speech length out of bounds"

	// ErrNoVoteTarget is returned when a vote does not resolve to an eligible seat
	ErrNoVoteTarget InterpretError = "vote does not name an eligible seat"

	// ErrMalformedWordPairs is returned when generated word pairs are not a JSON array
	ErrMalformedWordPairs InterpretError = "generated word pairs are not a JSON array"

	// ErrNoValidWordPairs is returned when no generated word pair passes validation
	ErrNoValidWordPairs InterpretError = "no valid generated word pairs"
)
