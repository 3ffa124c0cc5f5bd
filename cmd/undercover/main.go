package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/undercover/internal/common/clock"
	"github.com/KirkDiggler/undercover/internal/common/random"
	"github.com/KirkDiggler/undercover/internal/common/uuid"
	"github.com/KirkDiggler/undercover/internal/config"
	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/KirkDiggler/undercover/internal/prompts"
	personaRepo "github.com/KirkDiggler/undercover/internal/repositories/persona"
	sessionRepo "github.com/KirkDiggler/undercover/internal/repositories/session"
	wordPairRepo "github.com/KirkDiggler/undercover/internal/repositories/word_pair"
	"github.com/KirkDiggler/undercover/internal/services/fallback"
	gameService "github.com/KirkDiggler/undercover/internal/services/game"
	"github.com/KirkDiggler/undercover/internal/services/wordpair"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// app holds the wired services shared by every command
type app struct {
	redisClient *redis.Client
	personaRepo personaRepo.Repository
	wordPairs   wordpair.Service
	game        gameService.Service
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "undercover",
		Short:         "Run Undercover games between AI personas",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newPlayCommand(),
		newSessionCommand(),
		newEliminateCommand(),
		newWordsCommand(),
		newPersonasCommand(),
		newSeedCommand(),
	)
	return root
}

// wire builds the application in dependency order
func wire(ctx context.Context) (*app, error) {
	cfg := config.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	personas, err := personaRepo.NewRedis(&personaRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create persona repository: %w", err)
	}

	library, err := wordPairRepo.NewRedis(&wordPairRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create word pair repository: %w", err)
	}

	rng := random.New(&random.Config{Seed: cfg.RandomSeed})
	realClock := &clock.DefaultClock{}

	generator, err := newGenerator(cfg)
	if err != nil {
		return nil, err
	}

	composer, err := prompts.New(&prompts.Config{Random: rng})
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt composer: %w", err)
	}

	fallbacks, err := fallback.NewService(&fallback.ServiceConfig{Random: rng})
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback service: %w", err)
	}

	words, err := wordpair.New(&wordpair.Config{
		Repository: library,
		Generator:  generator,
		Composer:   composer,
		Random:     rng,
		UUID:       uuid.New(),
		Clock:      realClock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create word pair service: %w", err)
	}

	game, err := gameService.New(&gameService.Config{
		SessionRepo:           sessions,
		PersonaRepo:           personas,
		WordPairs:             words,
		Generator:             generator,
		Composer:              composer,
		Fallback:              fallbacks,
		Random:                rng,
		Clock:                 realClock,
		UUIDGenerator:         uuid.New(),
		GenerationAttempts:    generationAttempts(cfg, generator),
		DescriptionRetryDelay: cfg.GenerationRetryDelay,
		VoteRetryDelay:        cfg.VoteRetryDelay,
		SpeechRetryDelay:      cfg.GenerationRetryDelay,
		TieBreakPolicy:        gameService.TieBreakPolicy(cfg.TieBreakPolicy),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	return &app{
		redisClient: redisClient,
		personaRepo: personas,
		wordPairs:   words,
		game:        game,
	}, nil
}

func newGenerator(cfg *config.Config) (llm.Generator, error) {
	if cfg.LLMAPIKey == "" {
		log.Printf("LLM_API_KEY is not set, every game text will come from the curated banks")
		return offlineGenerator{}, nil
	}

	provider, err := llm.NewProvider(&llm.ProviderConfig{
		Name:    cfg.LLMProvider,
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	gateway, err := llm.New(&llm.Config{
		Provider:    provider,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
		Timeout:     cfg.LLMTimeout,
		Cache: &llm.CacheConfig{
			Size: cfg.CacheSize,
			TTLs: map[llm.Category]time.Duration{
				llm.CategoryGame:    cfg.CacheTTLGame,
				llm.CategoryDefault: cfg.CacheTTLDefault,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM gateway: %w", err)
	}
	return gateway, nil
}

// generationAttempts is 1 when every call is known to fail
func generationAttempts(cfg *config.Config, generator llm.Generator) int {
	if _, offline := generator.(offlineGenerator); offline {
		return 1
	}
	return cfg.GenerationAttempts
}

// offlineGenerator fails every call so the services use their fallbacks
type offlineGenerator struct{}

func (offlineGenerator) Generate(ctx context.Context, input *llm.GenerateInput) (*llm.GenerateOutput, error) {
	return nil, fmt.Errorf("%w: no API key configured", llm.ErrGenerationFailed)
}

// withApp wires the application around a command body
func withApp(run func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := wire(cmd.Context())
		if err != nil {
			return err
		}
		defer a.redisClient.Close()

		return run(cmd, args, a)
	}
}
