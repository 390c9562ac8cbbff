package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
)

// CombatSystem наносит игроку урон при касании врагов. После удара
// игрок неуязвим, пока не пройдёт интервал; каждый тик проверяются
// все враги.
type CombatSystem struct {
	enemies         *entity.EnemyGroup
	eventDispatcher *event.Dispatcher
	interval        float64
	sinceLastDamage float64
}

func NewCombatSystem(enemies *entity.EnemyGroup, eventDispatcher *event.Dispatcher, interval float64) *CombatSystem {
	return &CombatSystem{
		enemies:         enemies,
		eventDispatcher: eventDispatcher,
		interval:        interval,
	}
}

// SinceLastDamage — время с последнего полученного урона.
func (s *CombatSystem) SinceLastDamage() float64 {
	return s.sinceLastDamage
}

// Update проверяет касания с хитбоксом игрока (мировые координаты) и
// возвращает true, если здоровье игрока закончилось.
func (s *CombatSystem) Update(deltaTime float64, player *entity.Player, hitbox component.Rect) bool {
	for _, e := range s.enemies.All() {
		if !hitbox.Overlaps(e.Rect()) || s.sinceLastDamage <= s.interval {
			continue
		}
		player.TakeDamage(e.Damage)
		s.sinceLastDamage = 0
		s.eventDispatcher.Emit(event.PlayerDamaged, event.PlayerDamagedData{
			Amount: e.Damage,
			Health: player.Health.Current,
		})
	}
	s.sinceLastDamage += deltaTime
	return player.Health.Dead()
}
