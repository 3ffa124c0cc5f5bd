package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestIntnSingleChoice(t *testing.T) {
	src := New(nil)
	assert.Equal(t, 0, src.Intn(1))
	assert.Equal(t, 0, src.Intn(0))
}

func TestUniformStaysInRange(t *testing.T) {
	src := New(&Config{Seed: 7})
	for i := 0; i < 200; i++ {
		v := Uniform(src, 0.7, 1.3)
		require.GreaterOrEqual(t, v, 0.7)
		require.Less(t, v, 1.3)
	}
}

func TestWeightedSkipsZeroWeights(t *testing.T) {
	src := New(&Config{Seed: 3})
	for i := 0; i < 200; i++ {
		idx := Weighted(src, []float64{0, 1, 0})
		require.Equal(t, 1, idx)
	}
}

func TestWeightedAllZeroIsUniform(t *testing.T) {
	src := New(&Config{Seed: 9})
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		seen[Weighted(src, []float64{0, 0, 0})] = true
	}
	assert.Len(t, seen, 3)
}

func TestWeightedFavoursHeavierWeight(t *testing.T) {
	src := New(&Config{Seed: 11})
	counts := make([]int, 2)
	for i := 0; i < 2000; i++ {
		counts[Weighted(src, []float64{1, 9})]++
	}
	assert.Greater(t, counts[1], counts[0]*4)
}

func TestPick(t *testing.T) {
	src := New(&Config{Seed: 5})
	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, items, Pick(src, items))
	}
}
