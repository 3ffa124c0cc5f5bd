package persona

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
	personaKeyPrefix = "undercover:persona:"
	personaIndexKey  = "undercover:personas"
)

// ErrPersonaNotFound is returned when a persona is not found
var ErrPersonaNotFound = errors.New("persona not found")

// Config holds configuration for the Redis persona repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed persona repository
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

// SavePersona persists a persona to Redis
func (r *redisRepository) SavePersona(ctx context.Context, input *SavePersonaInput) error {
	if input == nil || input.Persona == nil {
		return errors.New("input and persona cannot be nil")
	}

	persona := input.Persona
	if persona.ID == "" {
		return errors.New("persona ID cannot be empty")
	}
	if persona.Name == "" {
		return errors.New("persona name cannot be empty")
	}

	personaJSON, err := json.Marshal(persona)
	if err != nil {
		return fmt.Errorf("failed to marshal persona: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("%s%s", personaKeyPrefix, persona.ID), personaJSON, 0)
	pipe.SAdd(ctx, personaIndexKey, persona.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save persona: %w", err)
	}

	return nil
}

// GetPersona retrieves a persona by ID from Redis
func (r *redisRepository) GetPersona(ctx context.Context, input *GetPersonaInput) (*models.Persona, error) {
	if input == nil || input.PersonaID == "" {
		return nil, errors.New("input and persona ID cannot be empty")
	}

	personaJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", personaKeyPrefix, input.PersonaID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPersonaNotFound
		}
		return nil, fmt.Errorf("failed to get persona: %w", err)
	}

	var persona models.Persona
	if err := json.Unmarshal([]byte(personaJSON), &persona); err != nil {
		return nil, fmt.Errorf("failed to unmarshal persona: %w", err)
	}

	return &persona, nil
}

// ListPersonas retrieves all personas, ordered by creation time then ID
func (r *redisRepository) ListPersonas(ctx context.Context, input *ListPersonasInput) (*ListPersonasOutput, error) {
	ids, err := r.client.SMembers(ctx, personaIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list personas: %w", err)
	}

	personas := make([]*models.Persona, 0, len(ids))
	for _, id := range ids {
		persona, err := r.GetPersona(ctx, &GetPersonaInput{PersonaID: id})
		if err != nil {
			if errors.Is(err, ErrPersonaNotFound) {
				// index entry outlived its record
				continue
			}
			return nil, err
		}
		personas = append(personas, persona)
	}

	sort.Slice(personas, func(i, j int) bool {
		if personas[i].CreatedAt.Equal(personas[j].CreatedAt) {
			return personas[i].ID < personas[j].ID
		}
		return personas[i].CreatedAt.Before(personas[j].CreatedAt)
	})

	return &ListPersonasOutput{
		Personas: personas,
	}, nil
}
