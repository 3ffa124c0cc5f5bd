package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/undercover/internal/llm Generator

// Generator is the single capability the game engine consumes
type Generator interface {
	// Generate returns model text for the messages. Any failure is reported as
	// an error wrapping ErrGenerationFailed; the caller decides whether to retry.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds configuration for the gateway
type Config struct {
	Provider Provider

	// Model is sent when the input does not name one
	Model       string
	Temperature float64
	MaxTokens   int

	// Timeout bounds each remote call
	Timeout time.Duration

	Cache *CacheConfig
}

// leadInPrefixes are boilerplate openers models put before the actual answer
var leadInPrefixes = []string{"我的描述是：", "我想说：", "描述：", "我觉得：", "我认为：", "答：", "回答："}

// Gateway implements Generator with caching in front of a Provider
type Gateway struct {
	provider    Provider
	model       string
	temperature float64
	maxTokens   int
	timeout     time.Duration
	cache       *responseCache
}

// New creates a new gateway
func New(cfg *Config) (*Gateway, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Provider == nil {
		return nil, ErrNilProvider
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 300
	}

	return &Gateway{
		provider:    cfg.Provider,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
		cache:       newResponseCache(cfg.Cache),
	}, nil
}

// Generate serves from cache when possible, otherwise makes exactly one remote call
func (g *Gateway) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil || len(input.Messages) == 0 {
		return nil, fmt.Errorf("%w: no messages", ErrGenerationFailed)
	}

	model := input.Model
	if model == "" {
		model = g.model
	}

	category := inferCategory(input.Messages)
	key := cacheKey(input.Messages, model, g.temperature)

	if text, ok := g.cache.get(category, key); ok && !input.SkipCache {
		return &GenerateOutput{
			Text:     text,
			Category: category,
			Cached:   true,
		}, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.provider.Complete(callCtx, &CompletionRequest{
		Messages:    input.Messages,
		Model:       model,
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	})
	if err != nil {
		log.Printf("LLM call failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	text := StripLeadIn(raw)
	if text == "" {
		log.Printf("LLM returned empty content after cleanup")
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, ErrEmptyResponse)
	}

	g.cache.add(category, key, text)

	return &GenerateOutput{
		Text:     text,
		Category: category,
	}, nil
}

// StripLeadIn trims and removes at most one boilerplate opener
func StripLeadIn(text string) string {
	text = strings.TrimSpace(text)
	for _, prefix := range leadInPrefixes {
		if strings.HasPrefix(text, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(text, prefix))
		}
	}
	return text
}
