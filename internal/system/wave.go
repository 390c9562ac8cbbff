// internal/system/wave.go
package system

import (
	"image/color"

	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/utils"
	"go-survivors/pkg/logger"
	vec "go-survivors/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Стороны экрана, за которыми появляются враги.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// WaveSystem создаёт врагов за краями видимой области: стартовую пачку
// и случайный поток, который густеет с уровнем игрока.
type WaveSystem struct {
	enemies *entity.EnemyGroup
	ids     *entity.IDSource
	rng     *utils.PRNGService
	scaling defs.EnemyScaling
	spawn   defs.SpawnDef
	width   float64
	height  float64
	spawned int
}

func NewWaveSystem(enemies *entity.EnemyGroup, ids *entity.IDSource, rng *utils.PRNGService,
	scaling defs.EnemyScaling, spawn defs.SpawnDef, width, height float64) *WaveSystem {
	return &WaveSystem{
		enemies: enemies,
		ids:     ids,
		rng:     rng,
		scaling: scaling,
		spawn:   spawn,
		width:   width,
		height:  height,
	}
}

// Spawned — сколько врагов создано за забег.
func (s *WaveSystem) Spawned() int {
	return s.spawned
}

// Start создаёт стартовую пачку врагов.
func (s *WaveSystem) Start(level int, camera vec.Vec2) {
	s.SpawnEnemies(s.spawn.InitialEnemies, level, camera)
}

// Update с вероятностью, зависящей от уровня, добавляет одного врага.
// Возвращает true, если враг появился.
func (s *WaveSystem) Update(level int, camera vec.Vec2) bool {
	if s.rng.Float64() < s.spawn.ChanceForLevel(level) {
		s.SpawnEnemies(1, level, camera)
		return true
	}
	return false
}

// SpawnEnemies создаёт count врагов на случайных краях экрана.
func (s *WaveSystem) SpawnEnemies(count, level int, camera vec.Vec2) {
	stats := s.scaling.StatsForLevel(level)
	for i := 0; i < count; i++ {
		pos := s.edgePoint(s.rng.IntRange(edgeTop, edgeLeft), camera)
		e := entity.NewEnemy(s.ids.Next(), pos, stats, s.scaling, s.colorFor(level))
		s.enemies.Add(e)
		s.spawned++

		logger.Log.WithFields(logrus.Fields{
			"enemy_id": e.ID,
			"level":    level,
			"x":        pos.X,
			"y":        pos.Y,
		}).Debug("Враг появился")
	}
}

// edgePoint — точка за краем экрана в мировых координатах.
func (s *WaveSystem) edgePoint(edge int, camera vec.Vec2) vec.Vec2 {
	off := s.spawn.EdgeOffset
	var screen vec.Vec2
	switch edge {
	case edgeTop:
		screen = vec.V(float64(s.rng.IntRange(0, int(s.width))), -off)
	case edgeRight:
		screen = vec.V(s.width+off, float64(s.rng.IntRange(0, int(s.height))))
	case edgeBottom:
		screen = vec.V(float64(s.rng.IntRange(0, int(s.width))), s.height+off)
	default:
		screen = vec.V(-off, float64(s.rng.IntRange(0, int(s.height))))
	}
	return screen.Sub(camera)
}

// colorFor — чем выше уровень, тем краснее враг.
func (s *WaveSystem) colorFor(level int) color.RGBA {
	r := vec.ClampInt(50*level, 0, 255)
	g := vec.ClampInt(255-20*level, 0, 255)
	b := s.rng.IntRange(0, 50)
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}
