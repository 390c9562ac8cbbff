// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-survivors/internal/config"
	"go-survivors/internal/ui"
	"go-survivors/pkg/utils"
)

// GameOverState — конец забега поверх замершего мира.
type GameOverState struct {
	ctx   *Context
	level int
}

func NewGameOverState(ctx *Context, level int) *GameOverState {
	return &GameOverState{ctx: ctx, level: level}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Overlay() bool { return true }

// Update ждёт ESC и возвращает в главное меню.
func (s *GameOverState) Update(deltaTime float64, in Input) {
	if in.Escape {
		s.ctx.Stack.PopToRoot()
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	drawShade(screen, s.ctx)
	c := utils.V(s.ctx.Width/2, s.ctx.Height/2)
	ui.DrawCentered(screen, "GAME OVER", s.ctx.Fonts.Title, c.Add(utils.V(0, -50)), config.TextLightColor)
	msg := fmt.Sprintf("Your level was %d. Press ESC to return to the main menu", s.level)
	ui.DrawCentered(screen, msg, s.ctx.Fonts.Text, c.Add(utils.V(0, 50)), config.TextLightColor)
}

func (s *GameOverState) Exit() {}
