// internal/state/select_character_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/ui"
	"go-survivors/pkg/logger"
	"go-survivors/pkg/utils"
)

const (
	characterButtonWidth   = 380
	characterButtonHeight  = 80
	characterButtonSpacing = 100
)

// SelectCharacterState — выбор персонажа перед забегом.
type SelectCharacterState struct {
	ctx     *Context
	buttons []*ui.Button
}

func NewSelectCharacterState(ctx *Context) *SelectCharacterState {
	s := &SelectCharacterState{ctx: ctx}
	chars := ctx.Balance.Characters
	rects := ui.Column(ctx.Width/2, ctx.Height/2-characterButtonSpacing-characterButtonHeight/2,
		characterButtonWidth, characterButtonHeight, characterButtonSpacing, len(chars))
	for i, c := range chars {
		label := fmt.Sprintf("%s (%s)", c.Name, c.Description)
		s.buttons = append(s.buttons, ui.NewButton(rects[i], label, config.ButtonGreen, ctx.Fonts.Small, ctx.Events, func() {
			s.start(c)
		}))
	}
	return s
}

func (s *SelectCharacterState) Enter() {}

func (s *SelectCharacterState) start(c defs.CharacterDef) {
	sim, err := app.NewSimulation(s.ctx.Balance, c, s.ctx.NewRng(), s.ctx.Events, s.ctx.Width, s.ctx.Height)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"character": c.ID, "error": err}).Error("Не удалось начать забег")
		return
	}
	s.ctx.Stack.Replace(NewGameState(s.ctx, sim))
}

func (s *SelectCharacterState) Update(deltaTime float64, in Input) {
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

func (s *SelectCharacterState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuBackground)
	ui.DrawCentered(screen, "Choose your character", s.ctx.Fonts.Title, utils.V(s.ctx.Width/2, s.ctx.Height/4-60), config.TextLightColor)
	for _, b := range s.buttons {
		b.Draw(screen)
	}
}

func (s *SelectCharacterState) Exit() {}
