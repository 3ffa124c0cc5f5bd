package word_pair

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/undercover/internal/repositories/word_pair Repository

import (
	"context"

	"github.com/KirkDiggler/undercover/internal/models"
)

// Repository defines the interface for the word library
type Repository interface {
	// AddWordPair stores a pair. Returns ErrWordPairExists for a duplicate (public, undercover) pair.
	AddWordPair(ctx context.Context, input *AddWordPairInput) error

	// GetWordPair retrieves a pair by ID
	GetWordPair(ctx context.Context, input *GetWordPairInput) (*models.WordPair, error)

	// ListWordPairs lists the library, optionally restricted to one difficulty
	ListWordPairs(ctx context.Context, input *ListWordPairsInput) (*ListWordPairsOutput, error)

	// DeleteWordPair removes a pair
	DeleteWordPair(ctx context.Context, input *DeleteWordPairInput) error
}
