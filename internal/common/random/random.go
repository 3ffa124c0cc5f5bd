package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/undercover/internal/common/random Source

// Source is the only way the engine draws randomness. Saboteur placement,
// tie-break policy, strategy hints and fallback picks all go through it so
// tests can pin a branch.
type Source interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int

	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

// Config for the random source
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// Rand is a goroutine safe Source backed by math/rand
type Rand struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Rand{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform value in [0, n)
func (r *Rand) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Float64 returns a uniform value in [0.0, 1.0)
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Pick returns a uniformly chosen element of items. It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// Uniform returns a value in [min, max)
func Uniform(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// Weighted picks an index with probability proportional to weights.
// Non-positive weights are never picked unless every weight is non-positive,
// in which case the pick is uniform.
func Weighted(src Source, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return src.Intn(len(weights))
	}

	target := src.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if target < w {
			return i
		}
		target -= w
	}

	// float rounding, fall back to the last positive weight
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return 0
}
