package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the binary reads from the environment
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// LLMProvider is openai or dashscope
	LLMProvider    string
	LLMAPIKey      string
	LLMBaseURL     string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int
	LLMTimeout     time.Duration

	CacheSize       int
	CacheTTLGame    time.Duration
	CacheTTLDefault time.Duration

	GenerationAttempts   int
	GenerationRetryDelay time.Duration
	VoteRetryDelay       time.Duration

	// TieBreakPolicy pins one policy; empty draws one per tie
	TieBreakPolicy string

	// RandomSeed of 0 seeds from the clock
	RandomSeed int64
}

// Load reads .env if present, then the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

	return &Config{
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		LLMProvider:    getEnv("LLM_PROVIDER", "openai"),
		LLMAPIKey:      getEnv("LLM_API_KEY", ""),
		LLMBaseURL:     getEnv("LLM_BASE_URL", ""),
		LLMModel:       getEnv("LLM_MODEL", "qwen-plus"),
		LLMTemperature: getEnvFloat("LLM_TEMPERATURE", 0.7),
		LLMMaxTokens:   getEnvInt("LLM_MAX_TOKENS", 300),
		LLMTimeout:     getEnvDuration("LLM_TIMEOUT", 60*time.Second),

		CacheSize:       getEnvInt("CACHE_SIZE", 100),
		CacheTTLGame:    getEnvDuration("CACHE_TTL_GAME", 5*time.Minute),
		CacheTTLDefault: getEnvDuration("CACHE_TTL_DEFAULT", 5*time.Minute),

		GenerationAttempts:   getEnvInt("GENERATION_ATTEMPTS", 3),
		GenerationRetryDelay: getEnvDuration("GENERATION_RETRY_DELAY", time.Second),
		VoteRetryDelay:       getEnvDuration("VOTE_RETRY_DELAY", 500*time.Millisecond),

		TieBreakPolicy: getEnv("TIE_BREAK_POLICY", ""),
		RandomSeed:     int64(getEnvInt("RANDOM_SEED", 0)),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid %s %q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return f
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
