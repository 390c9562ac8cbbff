// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
)

const (
	healthBarWidth  = 200
	healthBarHeight = 8
)

// PlayerHealthIndicator отображает здоровье игрока: текст и полосу под ним.
type PlayerHealthIndicator struct {
	X, Y  float64
	Fonts *Fonts
}

func NewPlayerHealthIndicator(x, y float64, fonts *Fonts) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Fonts: fonts}
}

// Label — подпись вида "Health: 90/100".
func (i *PlayerHealthIndicator) Label(h component.Health) string {
	return fmt.Sprintf("Health: %d/%d", h.Current, h.Max)
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, h component.Health) {
	DrawText(screen, i.Label(h), i.Fonts.Text, i.X, i.Y, config.TextLightColor)

	y := float32(i.Y) + TextSize + 6
	ratio := 0.0
	if h.Max > 0 {
		ratio = float64(h.Current) / float64(h.Max)
	}
	vector.DrawFilledRect(screen, float32(i.X), y, healthBarWidth, healthBarHeight, config.ScoreBarBackground, false)
	if ratio > 0 {
		vector.DrawFilledRect(screen, float32(i.X), y, float32(healthBarWidth*ratio), healthBarHeight, config.HealthBarFill, false)
	}
	vector.StrokeRect(screen, float32(i.X), y, healthBarWidth, healthBarHeight, 1, config.BorderColor, false)
}

// Height — высота индикатора вместе с полосой.
func (i *PlayerHealthIndicator) Height() float64 {
	return TextSize + 6 + healthBarHeight
}
