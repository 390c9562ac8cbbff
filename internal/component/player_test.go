package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressionSingleLevelUp(t *testing.T) {
	p := NewProgression(100, 1.1)
	require.InDelta(t, 100.0, p.Required(), 1e-9)

	leveled := p.Add(150)

	assert.True(t, leveled)
	assert.Equal(t, 2, p.Level)
	assert.Zero(t, p.Score)
	assert.Equal(t, 1, p.Pending())

	assert.True(t, p.Consume())
	assert.False(t, p.Consume(), "флаг повышения уровня срабатывает ровно один раз")
}

func TestProgressionThresholdIsStrict(t *testing.T) {
	p := NewProgression(100, 1.1)

	assert.False(t, p.Add(100), "ровно порог ещё не повышает уровень")
	assert.Equal(t, 1, p.Level)
	assert.True(t, p.Add(0.5))
}

func TestProgressionQueuesSeveralLevels(t *testing.T) {
	p := NewProgression(100, 1.1)

	p.Add(101)
	p.Add(1000)
	p.Add(1000)

	assert.Equal(t, 4, p.Level)
	assert.Equal(t, 3, p.Pending())
	for i := 0; i < 3; i++ {
		assert.True(t, p.Consume())
	}
	assert.Zero(t, p.Pending())
}

func TestProgressionProgress(t *testing.T) {
	p := NewProgression(100, 1.1)
	p.Add(25)
	assert.InDelta(t, 0.25, p.Progress(), 1e-12)
}
