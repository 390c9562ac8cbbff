package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-survivors/pkg/utils"
)

func TestRectOverlaps(t *testing.T) {
	a := RectAround(utils.V(0, 0), 10, 10)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", a, true},
		{"inside", RectAround(utils.V(1, 1), 2, 2), true},
		{"partial", RectAround(utils.V(8, 0), 10, 10), true},
		{"touching edge", RectAround(utils.V(10, 0), 10, 10), false},
		{"far", RectAround(utils.V(100, 100), 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestRectOffsetKeepsOverlap(t *testing.T) {
	a := RectAround(utils.V(5, 5), 10, 10)
	b := RectAround(utils.V(12, 5), 10, 10)
	cam := utils.V(-300, 42)

	assert.Equal(t, a.Overlaps(b), a.Offset(cam).Overlaps(b.Offset(cam)))
	assert.Equal(t, utils.V(-295, 47), a.Offset(cam).Center())
}

func TestPositionDisplayTruncates(t *testing.T) {
	p := Position{X: 10.9, Y: -3.7}
	x, y := p.Display()
	assert.Equal(t, 10, x)
	assert.Equal(t, -3, y)

	p.Move(utils.V(1, 0), 5)
	assert.InDelta(t, 15.9, p.X, 1e-12)
}
