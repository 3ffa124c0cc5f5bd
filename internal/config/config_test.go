package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"REDIS_ADDR", "LLM_MODEL", "LLM_TIMEOUT", "TIE_BREAK_POLICY", "RANDOM_SEED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "qwen-plus", cfg.LLMModel)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 0.7, cfg.LLMTemperature)
	assert.Equal(t, 3, cfg.GenerationAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.VoteRetryDelay)
	assert.Empty(t, cfg.TieBreakPolicy)
	assert.Zero(t, cfg.RandomSeed)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "dashscope")
	t.Setenv("LLM_MAX_TOKENS", "120")
	t.Setenv("CACHE_TTL_GAME", "90s")
	t.Setenv("TIE_BREAK_POLICY", "weighted_random")
	t.Setenv("RANDOM_SEED", "42")

	cfg := Load()

	assert.Equal(t, "dashscope", cfg.LLMProvider)
	assert.Equal(t, 120, cfg.LLMMaxTokens)
	assert.Equal(t, 90*time.Second, cfg.CacheTTLGame)
	assert.Equal(t, "weighted_random", cfg.TieBreakPolicy)
	assert.Equal(t, int64(42), cfg.RandomSeed)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CACHE_SIZE", "lots")
	t.Setenv("LLM_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 100, cfg.CacheSize)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
}
