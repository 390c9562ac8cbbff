// internal/entity/weapon.go
package entity

import (
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	prng "go-survivors/internal/utils"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// Weapon — оружие в слоте игрока.
//
// Update продвигает кулдаун и живые снаряды и разрешает их столкновения.
// AttemptFire только создаёт новый снаряд (или начинает удар) и сообщает,
// был ли выстрел; кулдаун сбрасывается только при успешном выстреле.
type Weapon interface {
	Kind() defs.WeaponKind
	Name() string
	Level() int
	Update(dt float64, arena *Arena)
	AttemptFire(arena *Arena) bool
	Draw(screen *ebiten.Image, view View)
	LevelUp()
}

// View — всё, что нужно для перевода координат между миром и экраном.
// Игрок всегда нарисован в PlayerScreen; Camera — смещение мира.
type View struct {
	Camera       utils.Vec2
	PlayerScreen utils.Vec2
	Cursor       utils.Vec2
}

// ToScreen переводит мировую точку в экранную.
func (v View) ToScreen(world utils.Vec2) utils.Vec2 {
	return world.Add(v.Camera)
}

// PlayerWorld — позиция игрока в мировых координатах.
func (v View) PlayerWorld() utils.Vec2 {
	return v.PlayerScreen.Sub(v.Camera)
}

// Aim — единичное направление от игрока к курсору (или ноль).
func (v View) Aim() utils.Vec2 {
	return v.Cursor.Sub(v.PlayerScreen).Normalize()
}

// AimAt — направление от игрока к мировой точке, посчитанное в экранных
// координатах.
func (v View) AimAt(world utils.Vec2) utils.Vec2 {
	return v.ToScreen(world).Sub(v.PlayerScreen).Normalize()
}

// Arena — контекст одного тика для оружия.
type Arena struct {
	View
	Enemies *EnemyGroup
	Rng     *prng.PRNGService
	IDs     *IDSource
	Events  *event.Dispatcher
}

// Emit отправляет событие, если у арены есть диспетчер.
func (a *Arena) Emit(t event.EventType, data interface{}) {
	a.Events.Emit(t, data)
}
