package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheConfig sizes the response cache
type CacheConfig struct {
	// Size bounds the number of entries per category
	Size int

	// TTLs per category; CategoryDefault's TTL is used for anything missing
	TTLs map[Category]time.Duration
}

// responseCache memoizes model output per prompt content. Each category gets
// its own LRU because TTL is fixed per LRU.
type responseCache struct {
	caches   map[Category]*expirable.LRU[string, string]
	fallback *expirable.LRU[string, string]
}

func newResponseCache(cfg *CacheConfig) *responseCache {
	size := 100
	if cfg != nil && cfg.Size > 0 {
		size = cfg.Size
	}

	ttls := map[Category]time.Duration{}
	if cfg != nil {
		for k, v := range cfg.TTLs {
			ttls[k] = v
		}
	}
	if _, ok := ttls[CategoryDefault]; !ok {
		ttls[CategoryDefault] = 5 * time.Minute
	}

	c := &responseCache{
		caches: make(map[Category]*expirable.LRU[string, string], len(ttls)),
	}
	for category, ttl := range ttls {
		c.caches[category] = expirable.NewLRU[string, string](size, nil, ttl)
	}
	c.fallback = c.caches[CategoryDefault]

	return c
}

func (c *responseCache) lru(category Category) *expirable.LRU[string, string] {
	if l, ok := c.caches[category]; ok {
		return l
	}
	return c.fallback
}

func (c *responseCache) get(category Category, key string) (string, bool) {
	return c.lru(category).Get(key)
}

func (c *responseCache) add(category Category, key, text string) {
	c.lru(category).Add(key, text)
}

// cacheKey hashes the semantic content of a request. Nothing time dependent goes in.
func cacheKey(messages []Message, model string, temperature float64) string {
	h := sha256.New()
	encoded, _ := json.Marshal(messages)
	h.Write(encoded)
	h.Write([]byte{0})
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(temperature, 'f', -1, 64)))
	return hex.EncodeToString(h.Sum(nil))
}

var (
	gameMarkers  = []string{"卧底", "平民", "投票", "淘汰"}
	wordsMarkers = []string{"词汇对", "word pair"}
)

// inferCategory tags a prompt by what it talks about
func inferCategory(messages []Message) Category {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(m.Content)
		b.WriteByte('\n')
	}
	content := b.String()

	for _, marker := range wordsMarkers {
		if strings.Contains(content, marker) {
			return CategoryWords
		}
	}
	for _, marker := range gameMarkers {
		if strings.Contains(content, marker) {
			return CategoryGame
		}
	}
	return CategoryDefault
}
