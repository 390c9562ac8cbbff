// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/pkg/utils"
)

// Отступ полосы опыта над верхним краем игрока
const scoreBarGap = 20

// PlayerLevelIndicator рисует полосу опыта над игроком и номер уровня под ней.
type PlayerLevelIndicator struct {
	Fonts *Fonts
	bar   *ProgressBar
}

func NewPlayerLevelIndicator(fonts *Fonts) *PlayerLevelIndicator {
	bar := NewProgressBar(component.Rect{W: config.ScoreBarWidth, H: config.ScoreBarHeight}, 0)
	bar.BorderWidth = 1
	return &PlayerLevelIndicator{Fonts: fonts, bar: bar}
}

// Place ставит полосу над игроком размера size с центром в center.
func (i *PlayerLevelIndicator) Place(center utils.Vec2, size float64) component.Rect {
	i.bar.Rect.X = center.X - config.ScoreBarWidth/2
	i.bar.Rect.Y = center.Y - size/2 - scoreBarGap
	return i.bar.Rect
}

func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, p component.Progression, center utils.Vec2, size float64) {
	i.Place(center, size)
	i.bar.SetValue(p.Progress())
	i.bar.Draw(screen)

	label := fmt.Sprintf("Lvl %d", p.Level)
	DrawCentered(screen, label, i.Fonts.Small, utils.V(center.X, i.bar.Rect.Y-SmallSize/2-2), config.TextLightColor)
}
