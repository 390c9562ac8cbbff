// internal/ui/weapon_slots.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"
)

const slotLineHeight = 30

// WeaponSlots — список слотов оружия с подсветкой активного.
type WeaponSlots struct {
	X, Y  float64
	Fonts *Fonts
}

func NewWeaponSlots(x, y float64, fonts *Fonts) *WeaponSlots {
	return &WeaponSlots{X: x, Y: y, Fonts: fonts}
}

// Lines — подписи слотов по порядку.
func (w *WeaponSlots) Lines(p *entity.Player) []string {
	lines := make([]string, 0, p.SlotCount())
	for slot := 1; slot <= p.SlotCount(); slot++ {
		name := "Empty"
		if wp := p.Slot(slot); wp != nil {
			name = fmt.Sprintf("%s (lvl %d)", wp.Name(), wp.Level())
		}
		lines = append(lines, fmt.Sprintf("%d: %s", slot, name))
	}
	return lines
}

func (w *WeaponSlots) Draw(screen *ebiten.Image, p *entity.Player) {
	DrawText(screen, "Weapons:", w.Fonts.Text, w.X, w.Y, config.TextLightColor)
	for i, line := range w.Lines(p) {
		clr := config.TextDimColor
		if i+1 == p.ActiveSlot {
			clr = config.ActiveSlotColor
		}
		DrawText(screen, line, w.Fonts.Text, w.X, w.Y+float64(i+1)*slotLineHeight, clr)
	}
}
