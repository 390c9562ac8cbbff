// internal/system/movement.go
package system

import (
	"go-survivors/internal/entity"
	"go-survivors/pkg/utils"
)

// MovementSystem ведёт врагов к игроку.
type MovementSystem struct {
	enemies *entity.EnemyGroup
}

func NewMovementSystem(enemies *entity.EnemyGroup) *MovementSystem {
	return &MovementSystem{enemies: enemies}
}

// Update сдвигает каждого врага к мировой позиции игрока.
func (s *MovementSystem) Update(deltaTime float64, playerWorld utils.Vec2) {
	for _, e := range s.enemies.All() {
		e.Update(deltaTime, playerWorld)
	}
}
