// internal/system/render.go
package system

import (
	"math"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует мир: сетку пола, врагов, снаряды и игрока.
type RenderSystem struct {
	enemies *entity.EnemyGroup
	player  *entity.Player
}

func NewRenderSystem(enemies *entity.EnemyGroup, player *entity.Player) *RenderSystem {
	return &RenderSystem{enemies: enemies, player: player}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, view entity.View) {
	screen.Fill(config.BackgroundColor)
	s.drawGrid(screen, view)

	for _, e := range s.enemies.All() {
		e.Draw(screen, view.Camera)
	}
	for _, w := range s.player.Weapons() {
		if w != nil {
			w.Draw(screen, view)
		}
	}
	s.player.Draw(screen, view.PlayerScreen)
}

// drawGrid рисует сетку пола, сдвинутую вместе с камерой.
func (s *RenderSystem) drawGrid(screen *ebiten.Image, view entity.View) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	step := float64(config.GridStep)

	ox := math.Mod(view.Camera.X, step)
	if ox < 0 {
		ox += step
	}
	oy := math.Mod(view.Camera.Y, step)
	if oy < 0 {
		oy += step
	}
	for x := ox; x < w; x += step {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, config.GridColor, false)
	}
	for y := oy; y < h; y += step {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, config.GridColor, false)
	}
}
