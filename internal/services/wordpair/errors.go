package wordpair

import "errors"

// WordPairError is a word library error
type WordPairError string

func (e WordPairError) Error() string {
	return string(e)
}

const (
	// ErrInvalidWordPair is returned for an empty word or two identical words
	ErrInvalidWordPair WordPairError = "invalid word pair"

	// ErrInvalidDifficulty is returned for an unknown difficulty
	ErrInvalidDifficulty WordPairError = "invalid difficulty"

	// ErrNoWordsAvailable is returned when the library is empty
	ErrNoWordsAvailable WordPairError = "no word pairs available"

	// ErrGenerationFailed is returned when the model produced no usable word pairs
	ErrGenerationFailed WordPairError = "word pair generation failed"
)

var (
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilRepository = errors.New("word pair repository cannot be nil")
	ErrNilGenerator  = errors.New("generator cannot be nil")
	ErrNilComposer   = errors.New("composer cannot be nil")
	ErrNilRandom     = errors.New("random source cannot be nil")
	ErrNilUUID       = errors.New("uuid generator cannot be nil")
	ErrNilClock      = errors.New("clock cannot be nil")
)
