package word_pair

import "github.com/KirkDiggler/undercover/internal/models"

// AddWordPairInput contains the pair to store
type AddWordPairInput struct {
	WordPair *models.WordPair
}

// GetWordPairInput contains parameters for retrieving a pair
type GetWordPairInput struct {
	WordPairID string
}

// ListWordPairsInput filters the library listing
type ListWordPairsInput struct {
	// Difficulty restricts the listing; empty lists everything
	Difficulty models.Difficulty
}

// ListWordPairsOutput contains the matching pairs ordered by difficulty then creation time
type ListWordPairsOutput struct {
	WordPairs []*models.WordPair
}

// DeleteWordPairInput contains parameters for removing a pair
type DeleteWordPairInput struct {
	WordPairID string
}
