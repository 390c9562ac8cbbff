package projectile

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/types"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BulletRadius — радиус пули в пикселях.
const BulletRadius = 5

// Bullet — пуля пистолета.
type Bullet struct {
	straight
}

func NewBullet(id types.EntityID, pos, dir utils.Vec2, speed float64, damage int, lifetime float64) *Bullet {
	return &Bullet{straight{
		id:     id,
		pos:    component.At(pos),
		dir:    dir,
		speed:  speed,
		damage: damage,
		life:   component.Lifetime{Max: lifetime},
		w:      BulletRadius * 2,
		h:      BulletRadius * 2,
	}}
}

func (b *Bullet) Draw(screen *ebiten.Image, camera utils.Vec2) {
	p := b.pos.Vec().Add(camera)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), BulletRadius, config.BulletColor, true)
}
