// internal/system/player_system.go
package system

import (
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PlayerSystem начисляет игроку очки за убитых врагов и сообщает
// о повышении уровня.
type PlayerSystem struct {
	player          *entity.Player
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(player *entity.Player, eventDispatcher *event.Dispatcher) *PlayerSystem {
	ps := &PlayerSystem{player: player, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(ps, event.EnemyKilled)
	return ps
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.EnemyKilledData)
	if !ok {
		return
	}

	if s.player.AddScore(data.Reward) {
		logger.Log.WithFields(logrus.Fields{
			"level":    s.player.Level(),
			"required": s.player.RequiredForLevelUp(),
		}).Info("Новый уровень")
		s.eventDispatcher.Emit(event.PlayerLeveledUp, event.PlayerLeveledUpData{Level: s.player.Level()})
	}
}

// Detach отписывает систему от диспетчера, когда забег закончен.
func (s *PlayerSystem) Detach() {
	s.eventDispatcher.Unsubscribe(event.EnemyKilled, s)
}
