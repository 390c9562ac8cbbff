// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/event"
	"go-survivors/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
// Клик засчитывается, если кнопку нажали и отпустили над ней.
type Button struct {
	Rect       component.Rect
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Face       text.Face
	OnClick    func()

	events  *event.Dispatcher
	hovered bool
	pressed bool
}

// NewButton создает новую кнопку. Клик уходит в диспетчер как ButtonClicked.
func NewButton(rect component.Rect, label string, bg color.RGBA, face text.Face, events *event.Dispatcher, onClick func()) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    bg,
		HoverColor: render.LightenColor(bg),
		Face:       face,
		OnClick:    onClick,
		events:     events,
	}
}

// Update обрабатывает мышь; true — кнопка нажата.
func (b *Button) Update(p Pointer) bool {
	b.hovered = b.Rect.Contains(p.Pos)
	if p.Pressed && b.hovered {
		b.pressed = true
	}
	if !p.Released {
		return false
	}
	clicked := b.pressed && b.hovered
	b.pressed = false
	if !clicked {
		return false
	}
	b.events.Emit(event.ButtonClicked, nil)
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

func (b *Button) Hovered() bool { return b.hovered }
func (b *Button) Pressed() bool { return b.pressed }

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	switch {
	case b.pressed:
		bg = render.DarkenColor(b.BgColor)
	case b.hovered:
		bg = b.HoverColor
	}
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, config.BorderColor, false)
	if b.Face != nil {
		DrawCentered(screen, b.Text, b.Face, r.Center(), b.TextColor)
	}
}

// Column раскладывает кнопки столбиком с центром по x.
func Column(cx, top, w, h, spacing float64, n int) []component.Rect {
	out := make([]component.Rect, n)
	for i := range out {
		out[i] = component.Rect{X: cx - w/2, Y: top + float64(i)*spacing, W: w, H: h}
	}
	return out
}
