package wordpair

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/undercover/internal/services/wordpair Service

// Service is the word pair provider and word library manager
type Service interface {
	// SelectWordPair validates a custom pair or draws one from the library
	SelectWordPair(ctx context.Context, input *SelectWordPairInput) (*SelectWordPairOutput, error)

	// ListWordPairs lists the library, optionally for one difficulty
	ListWordPairs(ctx context.Context, input *ListWordPairsInput) (*ListWordPairsOutput, error)

	// AddWordPair validates and stores one pair
	AddWordPair(ctx context.Context, input *AddWordPairInput) (*AddWordPairOutput, error)

	// BatchAddWordPairs stores many pairs, reporting per-row outcomes
	BatchAddWordPairs(ctx context.Context, input *BatchAddWordPairsInput) (*BatchAddWordPairsOutput, error)

	// DeleteWordPair removes a pair
	DeleteWordPair(ctx context.Context, input *DeleteWordPairInput) (*DeleteWordPairOutput, error)

	// GenerateWordPairs asks the model for new pairs without storing them
	GenerateWordPairs(ctx context.Context, input *GenerateWordPairsInput) (*GenerateWordPairsOutput, error)

	// SeedDefaults installs the default pairs into an empty library
	SeedDefaults(ctx context.Context, input *SeedDefaultsInput) (*SeedDefaultsOutput, error)
}
