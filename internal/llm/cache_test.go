package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyIsContentAddressed(t *testing.T) {
	msgs := []Message{{Role: RoleUser, Content: "a"}}

	assert.Equal(t, cacheKey(msgs, "m", 0.7), cacheKey([]Message{{Role: RoleUser, Content: "a"}}, "m", 0.7))
	assert.NotEqual(t, cacheKey(msgs, "m", 0.7), cacheKey(msgs, "m", 0.8))
	assert.NotEqual(t, cacheKey(msgs, "m", 0.7), cacheKey(msgs, "n", 0.7))
	assert.NotEqual(t, cacheKey(msgs, "m", 0.7), cacheKey([]Message{{Role: RoleSystem, Content: "a"}}, "m", 0.7))
}

func TestInferCategory(t *testing.T) {
	assert.Equal(t, CategoryGame, inferCategory([]Message{{Content: "现在是投票环节"}}))
	assert.Equal(t, CategoryWords, inferCategory([]Message{{Content: "请为\"谁是卧底\"游戏生成5对词汇对"}}))
	assert.Equal(t, CategoryDefault, inferCategory([]Message{{Content: "你好"}}))
}

func TestCacheFallsBackToDefaultCategory(t *testing.T) {
	c := newResponseCache(&CacheConfig{Size: 2})

	c.add(CategoryGame, "k", "v")
	got, ok := c.get(CategoryDefault, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestCacheIsBounded(t *testing.T) {
	c := newResponseCache(&CacheConfig{Size: 2})

	c.add(CategoryDefault, "a", "1")
	c.add(CategoryDefault, "b", "2")
	c.add(CategoryDefault, "c", "3")

	_, ok := c.get(CategoryDefault, "a")
	assert.False(t, ok)
	_, ok = c.get(CategoryDefault, "c")
	assert.True(t, ok)
}
