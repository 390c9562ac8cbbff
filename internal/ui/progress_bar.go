// internal/ui/progress_bar.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/pkg/utils"
)

// ProgressBar — полоса от 0 до 1. Если Draggable, значение
// задаётся перетаскиванием мышью.
type ProgressBar struct {
	Rect        component.Rect
	Background  color.RGBA
	Fill        color.RGBA
	Border      color.RGBA
	BorderWidth float32
	Face        text.Face // nil — без процентов
	Draggable   bool

	value    float64
	dragging bool
}

func NewProgressBar(rect component.Rect, value float64) *ProgressBar {
	return &ProgressBar{
		Rect:        rect,
		Background:  config.ScoreBarBackground,
		Fill:        config.ScoreBarFill,
		Border:      config.BorderColor,
		BorderWidth: 2,
		value:       utils.Clamp(value, 0, 1),
	}
}

func (b *ProgressBar) Value() float64 { return b.value }

// SetValue ограничивает значение отрезком [0, 1].
func (b *ProgressBar) SetValue(v float64) {
	b.value = utils.Clamp(v, 0, 1)
}

func (b *ProgressBar) Dragging() bool { return b.dragging }

// Update ведёт перетаскивание; true — значение изменилось.
func (b *ProgressBar) Update(p Pointer) bool {
	if !b.Draggable {
		return false
	}
	if p.Pressed && b.Rect.Contains(p.Pos) {
		b.dragging = true
	}
	if !b.dragging {
		return false
	}
	before := b.value
	if b.Rect.W > 0 {
		b.SetValue((p.Pos.X - b.Rect.X) / b.Rect.W)
	}
	if p.Released {
		b.dragging = false
	}
	return b.value != before
}

func (b *ProgressBar) Draw(screen *ebiten.Image) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), b.Background, false)
	if b.value > 0 {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W*b.value), float32(r.H), b.Fill, false)
	}
	if b.BorderWidth > 0 {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), b.BorderWidth, b.Border, false)
	}
	if b.Face != nil {
		DrawCentered(screen, fmt.Sprintf("%d%%", int(b.value*100)), b.Face, r.Center(), config.TextLightColor)
	}
}
