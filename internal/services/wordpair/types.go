package wordpair

import (
	"github.com/KirkDiggler/undercover/internal/common/clock"
	"github.com/KirkDiggler/undercover/internal/common/random"
	"github.com/KirkDiggler/undercover/internal/common/uuid"
	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/KirkDiggler/undercover/internal/models"
	"github.com/KirkDiggler/undercover/internal/prompts"
	wordPairRepo "github.com/KirkDiggler/undercover/internal/repositories/word_pair"
)

const (
	// DefaultGenerateCount is used when no count is requested
	DefaultGenerateCount = 5

	// MaxGenerateCount caps a single generation request
	MaxGenerateCount = 20

	// DefaultTheme is used when no theme is requested
	DefaultTheme = "日常物品"
)

// Config holds configuration for the word pair service
type Config struct {
	Repository wordPairRepo.Repository
	Generator  llm.Generator
	Composer   *prompts.Composer
	Random     random.Source
	UUID       uuid.UUID
	Clock      clock.Clock
}

// CustomPair is a caller supplied pair that bypasses the library
type CustomPair struct {
	PublicWord     string
	UndercoverWord string
}

// SelectWordPairInput contains parameters for choosing a game's words
type SelectWordPairInput struct {
	Difficulty models.Difficulty

	// Custom is optional
	Custom *CustomPair
}

// SelectWordPairOutput contains the chosen words
type SelectWordPairOutput struct {
	PublicWord     string
	UndercoverWord string

	// WordPairID is empty for a custom pair
	WordPairID string

	// FullLibrary is set when the difficulty bucket was empty and the draw used the whole library
	FullLibrary bool
}

// ListWordPairsInput filters the library
type ListWordPairsInput struct {
	Difficulty models.Difficulty
}

// ListWordPairsOutput contains the library entries
type ListWordPairsOutput struct {
	WordPairs []*models.WordPair
}

// AddWordPairInput contains a pair to add
type AddWordPairInput struct {
	PublicWord     string
	UndercoverWord string

	// Difficulty defaults to medium
	Difficulty models.Difficulty
}

// AddWordPairOutput contains the stored pair
type AddWordPairOutput struct {
	WordPair *models.WordPair
}

// BatchAddWordPairsInput contains pairs to add
type BatchAddWordPairsInput struct {
	WordPairs []*AddWordPairInput
}

// RowError describes why one batch row was rejected
type RowError struct {
	Row     int
	Message string
}

// BatchAddWordPairsOutput contains per-row outcomes
type BatchAddWordPairsOutput struct {
	Added   []*models.WordPair
	Skipped int
	Errors  []RowError
}

// DeleteWordPairInput identifies a pair to remove
type DeleteWordPairInput struct {
	WordPairID string
}

// DeleteWordPairOutput is empty on success
type DeleteWordPairOutput struct {
}

// GenerateWordPairsInput contains parameters for model generated pairs
type GenerateWordPairsInput struct {
	Theme      string
	Difficulty models.Difficulty
	Count      int
}

// GeneratedWordPair is an unsaved candidate pair
type GeneratedWordPair struct {
	PublicWord     string
	UndercoverWord string
	Difficulty     models.Difficulty
}

// GenerateWordPairsOutput contains the candidates
type GenerateWordPairsOutput struct {
	WordPairs []*GeneratedWordPair
}

type SeedDefaultsInput struct {
}

// SeedDefaultsOutput reports how many default pairs were stored
type SeedDefaultsOutput struct {
	Added int
}
