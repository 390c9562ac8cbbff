// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivors/internal/config"
	"go-survivors/internal/ui"
	"go-survivors/pkg/utils"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — пауза поверх забега.
type PauseState struct {
	ctx     *Context
	buttons []*ui.Button
}

func NewPauseState(ctx *Context) *PauseState {
	s := &PauseState{ctx: ctx}
	rects := ui.Column(ctx.Width/2, ctx.Height/2-config.ButtonSpacing, config.ButtonWidth, config.ButtonHeight, config.ButtonSpacing, 3)
	s.buttons = []*ui.Button{
		ui.NewButton(rects[0], "Resume", config.ButtonGreen, ctx.Fonts.Text, ctx.Events, func() { ctx.Stack.Pop() }),
		ui.NewButton(rects[1], "Options", config.ButtonBlue, ctx.Fonts.Text, ctx.Events, func() {
			ctx.Stack.Push(NewOptionsState(ctx))
		}),
		ui.NewButton(rects[2], "Main menu", config.ButtonRed, ctx.Fonts.Text, ctx.Events, ctx.Stack.PopToRoot),
	}
	return s
}

func (s *PauseState) Enter() {}

func (s *PauseState) Overlay() bool { return true }

func (s *PauseState) Update(deltaTime float64, in Input) {
	if in.Escape {
		s.ctx.Stack.Pop()
		return
	}
	for _, b := range s.buttons {
		if b.Update(in.Pointer) {
			return
		}
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	drawShade(screen, s.ctx)
	ui.DrawCentered(screen, "Paused", s.ctx.Fonts.Title, utils.V(s.ctx.Width/2, s.ctx.Height/4), config.TextLightColor)
	for _, b := range s.buttons {
		b.Draw(screen)
	}
}

func (s *PauseState) Exit() {}

// drawShade затемняет всё, что нарисовано ниже.
func drawShade(screen *ebiten.Image, ctx *Context) {
	vector.DrawFilledRect(screen, 0, 0, float32(ctx.Width), float32(ctx.Height), config.OverlayColor, false)
}
