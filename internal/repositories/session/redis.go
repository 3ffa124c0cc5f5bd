package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/undercover/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix  = "undercover:session:"
	activeSessionsKey = "undercover:active_sessions"
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned when creating a session whose ID is taken
	ErrSessionExists = errors.New("session already exists")

	// ErrVersionConflict is returned when the stored session moved on since it was read
	ErrVersionConflict = errors.New("session version conflict")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL applied to finished sessions; zero keeps them forever
	FinishedTTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client      *redis.Client
	finishedTTL time.Duration
}

// NewRedis creates a new Redis-backed session repository
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
		client:      cfg.RedisClient,
		finishedTTL: cfg.FinishedTTL,
	}, nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, id)
}

// CreateSession stores a new session, refusing to overwrite an existing one
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	input.Session.Version = 1
	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ok, err := r.client.SetNX(ctx, sessionKey(input.Session.ID), sessionJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if !ok {
		return ErrSessionExists
	}

	if err := r.client.SAdd(ctx, activeSessionsKey, input.Session.ID).Err(); err != nil {
		return fmt.Errorf("failed to index session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.GameSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// UpdateSession writes the session inside a WATCH transaction so a concurrent
// writer holding a stale copy gets ErrVersionConflict instead of a lost update
func (r *redisRepository) UpdateSession(ctx context.Context, input *UpdateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	session := input.Session
	key := sessionKey(session.ID)

	txf := func(tx *redis.Tx) error {
		storedJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to read session: %w", err)
		}

		var stored models.GameSession
		if err := json.Unmarshal([]byte(storedJSON), &stored); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}
		if stored.Version != session.Version {
			return ErrVersionConflict
		}

		next := *session
		next.Version = session.Version + 1
		nextJSON, err := json.Marshal(&next)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			ttl := time.Duration(0)
			if next.IsFinished() {
				ttl = r.finishedTTL
				pipe.SRem(ctx, activeSessionsKey, next.ID)
			} else {
				pipe.SAdd(ctx, activeSessionsKey, next.ID)
			}
			pipe.Set(ctx, key, nextJSON, ttl)
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txf, key)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return ErrVersionConflict
		}
		if errors.Is(err, ErrVersionConflict) || errors.Is(err, ErrSessionNotFound) {
			return err
		}
		return fmt.Errorf("failed to update session: %w", err)
	}

	session.Version++
	return nil
}

// ListActiveSessions retrieves the IDs of all in-progress sessions
func (r *redisRepository) ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error) {
	ids, err := r.client.SMembers(ctx, activeSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}

	return &ListActiveSessionsOutput{
		SessionIDs: ids,
	}, nil
}
