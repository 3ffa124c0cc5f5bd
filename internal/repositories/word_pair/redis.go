package word_pair

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/undercover/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	wordPairKeyPrefix    = "undercover:word_pair:"
	difficultyKeyPrefix  = "undercover:word_pairs:difficulty:"
	allWordPairsKey      = "undercover:word_pairs"
	wordPairLookupKey    = "undercover:word_pairs:lookup"
	lookupFieldSeparator = "\x1f"
)

var (
	// ErrWordPairNotFound is returned when a pair is not found
	ErrWordPairNotFound = errors.New("word pair not found")

	// ErrWordPairExists is returned when the same (public, undercover) pair is already stored
	ErrWordPairExists = errors.New("word pair already exists")
)

// Config holds configuration for the Redis word library
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed word library
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func wordPairKey(id string) string {
	return fmt.Sprintf("%s%s", wordPairKeyPrefix, id)
}

func difficultyKey(d models.Difficulty) string {
	return fmt.Sprintf("%s%s", difficultyKeyPrefix, d)
}

func lookupField(public, undercover string) string {
	return public + lookupFieldSeparator + undercover
}

// AddWordPair stores a pair and indexes it by difficulty
func (r *redisRepository) AddWordPair(ctx context.Context, input *AddWordPairInput) error {
	if input == nil || input.WordPair == nil {
		return errors.New("input and word pair cannot be nil")
	}

	pair := input.WordPair
	if pair.ID == "" {
		return errors.New("word pair ID cannot be empty")
	}

	// claim the (public, undercover) lookup first so duplicates never get a record
	claimed, err := r.client.HSetNX(ctx, wordPairLookupKey, lookupField(pair.PublicWord, pair.UndercoverWord), pair.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to check word pair: %w", err)
	}
	if !claimed {
		return ErrWordPairExists
	}

	pairJSON, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("failed to marshal word pair: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, wordPairKey(pair.ID), pairJSON, 0)
	pipe.SAdd(ctx, allWordPairsKey, pair.ID)
	pipe.SAdd(ctx, difficultyKey(pair.Difficulty), pair.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add word pair: %w", err)
	}

	return nil
}

// GetWordPair retrieves a pair by ID from Redis
func (r *redisRepository) GetWordPair(ctx context.Context, input *GetWordPairInput) (*models.WordPair, error) {
	if input == nil || input.WordPairID == "" {
		return nil, errors.New("input and word pair ID cannot be empty")
	}

	pairJSON, err := r.client.Get(ctx, wordPairKey(input.WordPairID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrWordPairNotFound
		}
		return nil, fmt.Errorf("failed to get word pair: %w", err)
	}

	var pair models.WordPair
	if err := json.Unmarshal([]byte(pairJSON), &pair); err != nil {
		return nil, fmt.Errorf("failed to unmarshal word pair: %w", err)
	}

	return &pair, nil
}

// ListWordPairs lists the whole library or one difficulty bucket
func (r *redisRepository) ListWordPairs(ctx context.Context, input *ListWordPairsInput) (*ListWordPairsOutput, error) {
	indexKey := allWordPairsKey
	if input != nil && input.Difficulty != "" {
		indexKey = difficultyKey(input.Difficulty)
	}

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list word pairs: %w", err)
	}

	pairs := make([]*models.WordPair, 0, len(ids))
	for _, id := range ids {
		pair, err := r.GetWordPair(ctx, &GetWordPairInput{WordPairID: id})
		if err != nil {
			if errors.Is(err, ErrWordPairNotFound) {
				continue
			}
			return nil, err
		}
		pairs = append(pairs, pair)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Difficulty != pairs[j].Difficulty {
			return pairs[i].Difficulty < pairs[j].Difficulty
		}
		if !pairs[i].CreatedAt.Equal(pairs[j].CreatedAt) {
			return pairs[i].CreatedAt.Before(pairs[j].CreatedAt)
		}
		return pairs[i].ID < pairs[j].ID
	})

	return &ListWordPairsOutput{
		WordPairs: pairs,
	}, nil
}

// DeleteWordPair removes a pair and its index entries
func (r *redisRepository) DeleteWordPair(ctx context.Context, input *DeleteWordPairInput) error {
	if input == nil || input.WordPairID == "" {
		return errors.New("input and word pair ID cannot be empty")
	}

	pair, err := r.GetWordPair(ctx, &GetWordPairInput{WordPairID: input.WordPairID})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, wordPairKey(pair.ID))
	pipe.SRem(ctx, allWordPairsKey, pair.ID)
	pipe.SRem(ctx, difficultyKey(pair.Difficulty), pair.ID)
	pipe.HDel(ctx, wordPairLookupKey, lookupField(pair.PublicWord, pair.UndercoverWord))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete word pair: %w", err)
	}

	return nil
}
