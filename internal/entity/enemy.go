// internal/entity/enemy.go
package entity

import (
	"image/color"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/types"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Enemy — враг, который идёт к игроку и бьёт его при касании.
// Pos — центр врага в мировых координатах.
type Enemy struct {
	ID     types.EntityID
	Pos    component.Position
	Speed  float64
	Health component.Health
	Damage int
	Look   component.Renderable
	Flash  component.DamageFlash

	// RecentlyTargeted — пистолет уже выбирал этого врага в текущем цикле слотов.
	RecentlyTargeted bool

	rates defs.EnemyScaling
}

// NewEnemy создаёт врага с заданными характеристиками.
func NewEnemy(id types.EntityID, pos utils.Vec2, st defs.EnemyStats, scaling defs.EnemyScaling, clr color.RGBA) *Enemy {
	return &Enemy{
		ID:     id,
		Pos:    component.At(pos),
		Speed:  st.Speed,
		Health: component.NewHealth(st.MaxHealth),
		Damage: st.Damage,
		Look:   component.Renderable{Color: clr, Width: scaling.Size, Height: scaling.Size},
		Flash:  component.DamageFlash{Duration: config.DamageFlashDuration},
		rates:  scaling,
	}
}

// Reward — очки, которые получит игрок за убийство.
func (e *Enemy) Reward() float64 {
	return e.rates.Reward(defs.EnemyStats{
		Speed:     e.Speed,
		MaxHealth: e.Health.Max,
		Damage:    e.Damage,
	})
}

// TakeDamage наносит урон; true — здоровье закончилось.
func (e *Enemy) TakeDamage(amount int) bool {
	e.Flash.Trigger()
	return e.Health.TakeDamage(amount)
}

func (e *Enemy) Alive() bool {
	return !e.Health.Dead()
}

func (e *Enemy) Center() utils.Vec2 {
	return e.Pos.Vec()
}

// Width — ширина хитбокса (для радиусных проверок).
func (e *Enemy) Width() float64 {
	return e.Look.Width
}

// Rect — хитбокс в мировых координатах.
func (e *Enemy) Rect() component.Rect {
	return component.RectAround(e.Pos.Vec(), e.Look.Width, e.Look.Height)
}

// Update двигает врага к цели (мировые координаты игрока) на Speed пикселей.
func (e *Enemy) Update(dt float64, target utils.Vec2) {
	dir := target.Sub(e.Pos.Vec()).Normalize()
	e.Pos.Move(dir, e.Speed)
	e.Flash.Tick(dt)
}

// Draw рисует врага со смещением камеры.
func (e *Enemy) Draw(screen *ebiten.Image, camera utils.Vec2) {
	r := e.Rect().Offset(camera)
	clr := e.Look.Color
	if e.Flash.Active() {
		clr = config.DamageFlashColor
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)

	// полоска здоровья над врагом
	if e.Health.Current < e.Health.Max {
		w := float32(r.W * e.Health.Ratio())
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y-6), float32(r.W), 3, config.ScoreBarBackground, false)
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y-6), w, 3, config.HealthBarFill, false)
	}
}
