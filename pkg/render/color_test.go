package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{25, 50, 25, 255}, DarkenColor(color.RGBA{50, 100, 50, 255}))
}

func TestLightenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{152, 177, 152, 200}, LightenColor(color.RGBA{50, 100, 50, 200}))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, LightenColor(color.RGBA{255, 255, 255, 255}))
}
