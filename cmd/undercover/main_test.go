package main

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/undercover/internal/config"
	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfflineGeneratorUsesSingleAttempt(t *testing.T) {
	cfg := &config.Config{GenerationAttempts: 3}

	generator, err := newGenerator(cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, generationAttempts(cfg, generator))

	_, err = generator.Generate(context.Background(), &llm.GenerateInput{})
	assert.True(t, errors.Is(err, llm.ErrGenerationFailed))
}

func TestConfiguredAttemptsWithProvider(t *testing.T) {
	cfg := &config.Config{
		LLMProvider:        "openai",
		LLMAPIKey:          "sk-test",
		LLMModel:           "qwen-plus",
		GenerationAttempts: 3,
	}

	generator, err := newGenerator(cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, generationAttempts(cfg, generator))
}
