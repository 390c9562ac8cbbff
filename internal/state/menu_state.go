// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/ui"
	"go-survivors/pkg/logger"
	"go-survivors/pkg/utils"
)

const (
	loadingBarWidth  = 400
	loadingBarHeight = 30
)

// MenuState — главное меню. Перед выбором персонажа показывает
// короткую полосу загрузки.
type MenuState struct {
	ctx     *Context
	buttons []*ui.Button
	bar     *ui.ProgressBar
	loading bool
	elapsed float64
}

func NewMenuState(ctx *Context) *MenuState {
	m := &MenuState{ctx: ctx}
	rects := ui.Column(ctx.Width/2, ctx.Height/2-config.ButtonSpacing, config.ButtonWidth, config.ButtonHeight, config.ButtonSpacing, 3)
	m.buttons = []*ui.Button{
		ui.NewButton(rects[0], "Start game", config.ButtonGreen, ctx.Fonts.Text, ctx.Events, m.startLoading),
		ui.NewButton(rects[1], "Options", config.ButtonBlue, ctx.Fonts.Text, ctx.Events, func() {
			ctx.Stack.Push(NewOptionsState(ctx))
		}),
		ui.NewButton(rects[2], "Quit", config.ButtonRed, ctx.Fonts.Text, ctx.Events, ctx.Stack.Quit),
	}
	m.bar = ui.NewProgressBar(component.Rect{
		X: (ctx.Width - loadingBarWidth) / 2,
		Y: ctx.Height - 100,
		W: loadingBarWidth,
		H: loadingBarHeight,
	}, 0)
	m.bar.Face = ctx.Fonts.Small
	return m
}

func (m *MenuState) Enter() {
	m.loading = false
	m.elapsed = 0
	m.bar.SetValue(0)
	m.ctx.requestMusic("menu")
}

// Resume — возврат в меню из игры.
func (m *MenuState) Resume() {
	m.Enter()
}

func (m *MenuState) startLoading() {
	if m.loading {
		return
	}
	m.loading = true
	m.elapsed = 0
	m.bar.SetValue(0)
	logger.Log.Debug("Загрузка начата")
}

func (m *MenuState) Update(deltaTime float64, in Input) {
	if m.loading {
		m.elapsed += deltaTime
		m.bar.SetValue(m.elapsed / config.MenuLoadingDuration)
		if m.elapsed >= config.MenuLoadingDuration {
			m.loading = false
			m.ctx.Stack.Push(NewSelectCharacterState(m.ctx))
		}
		return
	}
	for _, b := range m.buttons {
		if b.Update(in.Pointer) {
			return
		}
	}
}

func (m *MenuState) Loading() bool { return m.loading }

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuBackground)
	ui.DrawCentered(screen, config.WindowTitle, m.ctx.Fonts.Title, utils.V(m.ctx.Width/2, m.ctx.Height/4), config.TextLightColor)
	for _, b := range m.buttons {
		b.Draw(screen)
	}
	if m.loading || m.bar.Value() > 0 {
		m.bar.Draw(screen)
	}
}

func (m *MenuState) Exit() {}
