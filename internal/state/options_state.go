// internal/state/options_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/ui"
	"go-survivors/pkg/utils"
)

const (
	sliderWidth  = 400
	sliderHeight = 30
)

// OptionsState — громкость музыки и эффектов.
type OptionsState struct {
	ctx   *Context
	music *ui.ProgressBar
	sfx   *ui.ProgressBar
	back  *ui.Button
}

func NewOptionsState(ctx *Context) *OptionsState {
	x := (ctx.Width - sliderWidth) / 2
	s := &OptionsState{
		ctx:   ctx,
		music: newSlider(component.Rect{X: x, Y: ctx.Height/2 - 100, W: sliderWidth, H: sliderHeight}, ctx.Settings.MusicVolume, ctx.Fonts),
		sfx:   newSlider(component.Rect{X: x, Y: ctx.Height / 2, W: sliderWidth, H: sliderHeight}, ctx.Settings.SFXVolume, ctx.Fonts),
	}
	back := component.Rect{X: (ctx.Width - config.ButtonWidth) / 2, Y: ctx.Height/2 + 100, W: config.ButtonWidth, H: config.ButtonHeight}
	s.back = ui.NewButton(back, "Back", config.ButtonGray, ctx.Fonts.Text, ctx.Events, func() { ctx.Stack.Pop() })
	return s
}

func newSlider(r component.Rect, value float64, fonts *ui.Fonts) *ui.ProgressBar {
	b := ui.NewProgressBar(r, value)
	b.Draggable = true
	b.Face = fonts.Small
	return b
}

func (s *OptionsState) Enter() {}

func (s *OptionsState) Update(deltaTime float64, in Input) {
	if in.Escape {
		s.ctx.Stack.Pop()
		return
	}
	if s.music.Update(in.Pointer) {
		s.setMusic(s.music.Value())
	}
	if s.sfx.Update(in.Pointer) {
		s.setSFX(s.sfx.Value())
	}
	s.back.Update(in.Pointer)
}

func (s *OptionsState) setMusic(v float64) {
	if s.ctx.Volume != nil {
		s.ctx.Volume.SetMusicVolume(v)
		return
	}
	s.ctx.Settings.SetMusicVolume(v)
}

func (s *OptionsState) setSFX(v float64) {
	if s.ctx.Volume != nil {
		s.ctx.Volume.SetSFXVolume(v)
		return
	}
	s.ctx.Settings.SetSFXVolume(v)
}

func (s *OptionsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuBackground)
	ui.DrawCentered(screen, "Options", s.ctx.Fonts.Title, utils.V(s.ctx.Width/2, s.ctx.Height/4-40), config.TextLightColor)
	ui.DrawCentered(screen, "Music volume", s.ctx.Fonts.Text, utils.V(s.ctx.Width/2, s.music.Rect.Y-25), config.TextLightColor)
	ui.DrawCentered(screen, "Effects volume", s.ctx.Fonts.Text, utils.V(s.ctx.Width/2, s.sfx.Rect.Y-25), config.TextLightColor)
	s.music.Draw(screen)
	s.sfx.Draw(screen)
	s.back.Draw(screen)
}

func (s *OptionsState) Exit() {}
