package wordpair

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/undercover/internal/common/clock"
	"github.com/KirkDiggler/undercover/internal/common/random"
	"github.com/KirkDiggler/undercover/internal/common/uuid"
	"github.com/KirkDiggler/undercover/internal/interpreter"
	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/KirkDiggler/undercover/internal/models"
	"github.com/KirkDiggler/undercover/internal/prompts"
	wordPairRepo "github.com/KirkDiggler/undercover/internal/repositories/word_pair"
)

// service implements the Service interface
type service struct {
	repo      wordPairRepo.Repository
	generator llm.Generator
	composer  *prompts.Composer
	random    random.Source
	uuid      uuid.UUID
	clock     clock.Clock
}

// New creates a new word pair service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}
	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}
	if cfg.Composer == nil {
		return nil, ErrNilComposer
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		repo:      cfg.Repository,
		generator: cfg.Generator,
		composer:  cfg.Composer,
		random:    cfg.Random,
		uuid:      cfg.UUID,
		clock:     cfg.Clock,
	}, nil
}

// SelectWordPair validates a custom pair, or draws uniformly from the
// difficulty bucket and then from the whole library when the bucket is empty
func (s *service) SelectWordPair(ctx context.Context, input *SelectWordPairInput) (*SelectWordPairOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Custom != nil {
		public, undercover, err := normalizePair(input.Custom.PublicWord, input.Custom.UndercoverWord)
		if err != nil {
			return nil, err
		}
		return &SelectWordPairOutput{
			PublicWord:     public,
			UndercoverWord: undercover,
		}, nil
	}

	bucket, err := s.repo.ListWordPairs(ctx, &wordPairRepo.ListWordPairsInput{
		Difficulty: input.Difficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list word pairs: %w", err)
	}

	pairs := bucket.WordPairs
	fullLibrary := false
	if len(pairs) == 0 && input.Difficulty != "" {
		all, err := s.repo.ListWordPairs(ctx, &wordPairRepo.ListWordPairsInput{})
		if err != nil {
			return nil, fmt.Errorf("failed to list word pairs: %w", err)
		}
		pairs = all.WordPairs
		fullLibrary = true
		log.Printf("No %s word pairs, drawing from the full library", input.Difficulty)
	}
	if len(pairs) == 0 {
		return nil, ErrNoWordsAvailable
	}

	pair := random.Pick(s.random, pairs)

	return &SelectWordPairOutput{
		PublicWord:     pair.PublicWord,
		UndercoverWord: pair.UndercoverWord,
		WordPairID:     pair.ID,
		FullLibrary:    fullLibrary,
	}, nil
}

// ListWordPairs lists the library
func (s *service) ListWordPairs(ctx context.Context, input *ListWordPairsInput) (*ListWordPairsOutput, error) {
	var difficulty models.Difficulty
	if input != nil {
		difficulty = input.Difficulty
	}
	if difficulty != "" && !difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}

	out, err := s.repo.ListWordPairs(ctx, &wordPairRepo.ListWordPairsInput{
		Difficulty: difficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list word pairs: %w", err)
	}

	return &ListWordPairsOutput{
		WordPairs: out.WordPairs,
	}, nil
}

// AddWordPair validates and stores one pair
func (s *service) AddWordPair(ctx context.Context, input *AddWordPairInput) (*AddWordPairOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	public, undercover, err := normalizePair(input.PublicWord, input.UndercoverWord)
	if err != nil {
		return nil, err
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if !difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}

	pair := &models.WordPair{
		ID:             s.uuid.NewUUID(),
		PublicWord:     public,
		UndercoverWord: undercover,
		Difficulty:     difficulty,
		CreatedAt:      s.clock.Now(),
	}

	if err := s.repo.AddWordPair(ctx, &wordPairRepo.AddWordPairInput{WordPair: pair}); err != nil {
		if errors.Is(err, wordPairRepo.ErrWordPairExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add word pair: %w", err)
	}

	return &AddWordPairOutput{
		WordPair: pair,
	}, nil
}

// BatchAddWordPairs adds every valid row; one bad row never fails the batch
func (s *service) BatchAddWordPairs(ctx context.Context, input *BatchAddWordPairsInput) (*BatchAddWordPairsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out := &BatchAddWordPairsOutput{}
	for i, row := range input.WordPairs {
		if row == nil {
			out.Errors = append(out.Errors, RowError{Row: i + 1, Message: "empty row"})
			continue
		}

		added, err := s.AddWordPair(ctx, row)
		switch {
		case err == nil:
			out.Added = append(out.Added, added.WordPair)
		case errors.Is(err, wordPairRepo.ErrWordPairExists):
			out.Skipped++
		case errors.Is(err, ErrInvalidWordPair), errors.Is(err, ErrInvalidDifficulty):
			out.Errors = append(out.Errors, RowError{Row: i + 1, Message: err.Error()})
		default:
			log.Printf("Error adding word pair row %d: %v", i+1, err)
			out.Errors = append(out.Errors, RowError{Row: i + 1, Message: err.Error()})
		}
	}

	return out, nil
}

// DeleteWordPair removes a pair
func (s *service) DeleteWordPair(ctx context.Context, input *DeleteWordPairInput) (*DeleteWordPairOutput, error) {
	if input == nil || input.WordPairID == "" {
		return nil, errors.New("word pair ID cannot be empty")
	}

	if err := s.repo.DeleteWordPair(ctx, &wordPairRepo.DeleteWordPairInput{WordPairID: input.WordPairID}); err != nil {
		if errors.Is(err, wordPairRepo.ErrWordPairNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete word pair: %w", err)
	}

	return &DeleteWordPairOutput{}, nil
}

// GenerateWordPairs asks the model for candidate pairs. Nothing is stored.
func (s *service) GenerateWordPairs(ctx context.Context, input *GenerateWordPairsInput) (*GenerateWordPairsOutput, error) {
	if input == nil {
		input = &GenerateWordPairsInput{}
	}

	theme := strings.TrimSpace(input.Theme)
	if theme == "" {
		theme = DefaultTheme
	}
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if !difficulty.Valid() {
		return nil, ErrInvalidDifficulty
	}
	count := input.Count
	if count <= 0 {
		count = DefaultGenerateCount
	}
	if count > MaxGenerateCount {
		count = MaxGenerateCount
	}

	messages := s.composer.WordPairPrompt(&prompts.WordPairPromptInput{
		Theme:      theme,
		Difficulty: difficulty,
		Count:      count,
	})

	gen, err := s.generator.Generate(ctx, &llm.GenerateInput{Messages: messages})
	if err != nil {
		log.Printf("Error generating word pairs: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	parsed, err := interpreter.ParseWordPairs(gen.Text)
	if err != nil {
		log.Printf("Error parsing generated word pairs: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	out := &GenerateWordPairsOutput{
		WordPairs: make([]*GeneratedWordPair, 0, len(parsed)),
	}
	for _, p := range parsed {
		out.WordPairs = append(out.WordPairs, &GeneratedWordPair{
			PublicWord:     p.PublicWord,
			UndercoverWord: p.UndercoverWord,
			Difficulty:     difficulty,
		})
	}

	return out, nil
}

// SeedDefaults installs the default pairs when the library is empty
func (s *service) SeedDefaults(ctx context.Context, input *SeedDefaultsInput) (*SeedDefaultsOutput, error) {
	existing, err := s.repo.ListWordPairs(ctx, &wordPairRepo.ListWordPairsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list word pairs: %w", err)
	}
	if len(existing.WordPairs) > 0 {
		return &SeedDefaultsOutput{}, nil
	}

	batch, err := s.BatchAddWordPairs(ctx, &BatchAddWordPairsInput{WordPairs: defaultWordPairs})
	if err != nil {
		return nil, err
	}

	return &SeedDefaultsOutput{
		Added: len(batch.Added),
	}, nil
}

// normalizePair trims both words and rejects empty or identical ones
func normalizePair(public, undercover string) (string, string, error) {
	public = strings.TrimSpace(public)
	undercover = strings.TrimSpace(undercover)
	if public == "" || undercover == "" {
		return "", "", fmt.Errorf("%w: both words are required", ErrInvalidWordPair)
	}
	if public == undercover {
		return "", "", fmt.Errorf("%w: words must differ", ErrInvalidWordPair)
	}
	return public, undercover, nil
}
