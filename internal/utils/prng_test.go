package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestIntRangeInclusive(t *testing.T) {
	r := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.IntRange(0, 3)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 5, r.IntRange(5, 5))
}

func TestChooseWeighted(t *testing.T) {
	r := NewPRNGService(1)

	assert.Equal(t, -1, r.ChooseWeighted(nil))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, r.ChooseWeighted([]int{0, 5, 0}))
	}
	idx := r.ChooseWeighted([]int{0, 0})
	assert.Contains(t, []int{0, 1}, idx)
}

func TestRotatedBounds(t *testing.T) {
	w, h := RotatedBounds(12, 20, 0)
	assert.InDelta(t, 12, w, 1e-9)
	assert.InDelta(t, 20, h, 1e-9)

	w, h = RotatedBounds(12, 20, math.Pi/2)
	assert.InDelta(t, 20, w, 1e-9)
	assert.InDelta(t, 12, h, 1e-9)
}
