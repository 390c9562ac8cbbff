// internal/state/level_up_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/ui"
	"go-survivors/pkg/logger"
	"go-survivors/pkg/utils"
)

const (
	upgradeButtonWidth   = 250
	upgradeButtonHeight  = 25
	upgradeButtonTop     = 160
	upgradeButtonSpacing = 30
)

// LevelUpState — выбор улучшения после нового уровня.
type LevelUpState struct {
	ctx     *Context
	sim     *app.Simulation
	options []app.UpgradeOption
	buttons []*ui.Button
}

func NewLevelUpState(ctx *Context, sim *app.Simulation) *LevelUpState {
	return &LevelUpState{ctx: ctx, sim: sim}
}

// Enter собирает варианты под текущий уровень игрока.
func (s *LevelUpState) Enter() {
	s.options = s.sim.UpgradeOptions()
	rects := ui.Column(s.ctx.Width/2, upgradeButtonTop, upgradeButtonWidth, upgradeButtonHeight, upgradeButtonSpacing, len(s.options))
	s.buttons = s.buttons[:0]
	for i, opt := range s.options {
		s.buttons = append(s.buttons, ui.NewButton(rects[i], opt.Label, upgradeColor(opt.Kind), s.ctx.Fonts.Small, s.ctx.Events, func() {
			s.choose(opt)
		}))
	}
}

func upgradeColor(k app.UpgradeKind) color.RGBA {
	switch k {
	case app.UpgradeRandomWeapon:
		return config.ButtonPurple
	case app.UpgradeSpeed:
		return config.ButtonBlue
	case app.UpgradeHealth:
		return config.ButtonRed
	default:
		return config.ButtonGreen
	}
}

func (s *LevelUpState) Options() []app.UpgradeOption { return s.options }

// choose применяет улучшение и возвращает в забег.
func (s *LevelUpState) choose(opt app.UpgradeOption) {
	if err := s.sim.ApplyUpgrade(opt); err != nil {
		logger.Log.WithFields(logrus.Fields{"option": opt.Label, "error": err}).Warn("Улучшение не применено")
	}
	s.ctx.Stack.Pop()
}

func (s *LevelUpState) Overlay() bool { return true }

func (s *LevelUpState) Update(deltaTime float64, in Input) {
	for _, b := range s.buttons {
		if b.Update(in.Pointer) {
			return
		}
	}
}

func (s *LevelUpState) Draw(screen *ebiten.Image) {
	drawShade(screen, s.ctx)
	ui.DrawCentered(screen, "Level Up!", s.ctx.Fonts.Title, utils.V(s.ctx.Width/2, 40), config.TextLightColor)
	ui.DrawCentered(screen, "Choose an upgrade:", s.ctx.Fonts.Text, utils.V(s.ctx.Width/2, 100), config.TextLightColor)
	for _, b := range s.buttons {
		b.Draw(screen)
	}
}

func (s *LevelUpState) Exit() {}
