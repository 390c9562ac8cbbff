package system

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
	vec "go-survivors/pkg/utils"
)

var red = color.RGBA{255, 0, 0, 255}

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.got = append(r.got, e)
}

func newWaves(spawn defs.SpawnDef) (*WaveSystem, *entity.EnemyGroup) {
	group := entity.NewEnemyGroup()
	b := defs.Default()
	return NewWaveSystem(group, entity.NewIDSource(), utils.NewPRNGService(11), b.Enemy, spawn, 1280, 720), group
}

func TestWaveStartSpawnsInitialPack(t *testing.T) {
	ws, group := newWaves(defs.Default().Spawn)
	ws.Start(1, vec.V(0, 0))

	assert.Equal(t, 5, group.Len())
	assert.Equal(t, 5, ws.Spawned())
}

func TestWaveEnemiesAppearBeyondScreenEdge(t *testing.T) {
	ws, group := newWaves(defs.Default().Spawn)
	camera := vec.V(-300, 120)
	ws.SpawnEnemies(200, 1, camera)

	for _, e := range group.All() {
		s := e.Center().Add(camera)
		onEdge := (s.Y == -50 && s.X >= 0 && s.X <= 1280) ||
			(s.X == 1330 && s.Y >= 0 && s.Y <= 720) ||
			(s.Y == 770 && s.X >= 0 && s.X <= 1280) ||
			(s.X == -50 && s.Y >= 0 && s.Y <= 720)
		assert.True(t, onEdge, "enemy at screen %v", s)
	}
}

func TestWaveEnemyStatsScaleWithLevel(t *testing.T) {
	ws, group := newWaves(defs.Default().Spawn)
	ws.SpawnEnemies(1, 3, vec.V(0, 0))

	e := group.All()[0]
	assert.InDelta(t, 2.6, e.Speed, 1e-9)
	assert.Equal(t, 80, e.Health.Max)
	assert.Equal(t, 16, e.Damage)
}

func TestWaveEnemyColor(t *testing.T) {
	tests := []struct {
		level int
		r, g  uint8
	}{
		{1, 50, 235},
		{5, 250, 155},
		{10, 255, 55},
		{13, 255, 0},
	}
	for _, tt := range tests {
		ws, group := newWaves(defs.Default().Spawn)
		ws.SpawnEnemies(1, tt.level, vec.V(0, 0))
		c := group.All()[0].Look.Color
		assert.Equal(t, tt.r, c.R, "level %d", tt.level)
		assert.Equal(t, tt.g, c.G, "level %d", tt.level)
		assert.LessOrEqual(t, c.B, uint8(50))
	}
}

func TestWaveUpdateChance(t *testing.T) {
	always, group := newWaves(defs.SpawnDef{BaseChance: 1, EdgeOffset: 50})
	assert.True(t, always.Update(1, vec.V(0, 0)))
	assert.Equal(t, 1, group.Len())

	never, group := newWaves(defs.SpawnDef{BaseChance: 0, EdgeOffset: 50})
	for i := 0; i < 100; i++ {
		never.Update(1, vec.V(0, 0))
	}
	assert.Equal(t, 0, group.Len())
}

func TestMovementSystemSeeksPlayer(t *testing.T) {
	group := entity.NewEnemyGroup()
	e := entity.NewEnemy(1, vec.V(100, 0), defs.EnemyStats{Speed: 2, MaxHealth: 50, Damage: 10},
		defs.Default().Enemy, red)
	group.Add(e)

	NewMovementSystem(group).Update(1.0/60, vec.V(0, 0))
	assert.InDelta(t, 98, e.Center().X, 1e-9)
}

func contactFixture(playerHealth, enemyDamage int) (*CombatSystem, *entity.Player, *recorder, component.Rect) {
	group := entity.NewEnemyGroup()
	group.Add(entity.NewEnemy(1, vec.V(10, 0),
		defs.EnemyStats{Speed: 2, MaxHealth: 50, Damage: enemyDamage},
		defs.Default().Enemy, red))

	pd := defs.Default().Player
	pd.MaxHealth = playerHealth
	player := entity.NewPlayer(pd)

	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(rec, event.PlayerDamaged)

	return NewCombatSystem(group, d, 0.5), player, rec, player.Rect(vec.V(0, 0))
}

func TestCombatRespectsDamageCooldown(t *testing.T) {
	cs, player, rec, hitbox := contactFixture(100, 10)

	// в начале забега таймер пуст: урона нет
	assert.False(t, cs.Update(0.5, player, hitbox))
	assert.Equal(t, 100, player.Health.Current)

	// ровно 0.5 с ещё не больше интервала
	cs.Update(0.1, player, hitbox)
	assert.Equal(t, 100, player.Health.Current)

	cs.Update(0.1, player, hitbox)
	assert.Equal(t, 90, player.Health.Current)
	assert.InDelta(t, 0.1, cs.SinceLastDamage(), 1e-9)

	cs.Update(0.1, player, hitbox)
	assert.Equal(t, 90, player.Health.Current)

	require.Len(t, rec.got, 1)
	assert.Equal(t, event.PlayerDamagedData{Amount: 10, Health: 90}, rec.got[0].Data)
}

func TestCombatReportsDeath(t *testing.T) {
	cs, player, _, hitbox := contactFixture(10, 20)
	cs.Update(0.6, player, hitbox)

	assert.True(t, cs.Update(0.1, player, hitbox))
	assert.Equal(t, 0, player.Health.Current)
}

func TestCombatIgnoresDistantEnemies(t *testing.T) {
	cs, player, _, _ := contactFixture(100, 10)
	far := player.Rect(vec.V(1000, 1000))

	cs.Update(1, player, far)
	cs.Update(1, player, far)
	assert.Equal(t, 100, player.Health.Current)
}

func TestPlayerSystemPaysReward(t *testing.T) {
	d := event.NewDispatcher()
	player := entity.NewPlayer(defs.Default().Player)
	NewPlayerSystem(player, d)
	rec := &recorder{}
	d.Subscribe(rec, event.PlayerLeveledUp)

	d.Emit(event.EnemyKilled, event.EnemyKilledData{EnemyID: 1, Reward: 15.6})
	assert.InDelta(t, 15.6, player.Score(), 1e-9)
	assert.Empty(t, rec.got)

	d.Emit(event.EnemyKilled, event.EnemyKilledData{EnemyID: 2, Reward: 150})
	assert.Equal(t, 2, player.Level())
	assert.Equal(t, 0.0, player.Score())
	assert.True(t, player.JustLeveledUp())
	require.Len(t, rec.got, 1)
	assert.Equal(t, event.PlayerLeveledUpData{Level: 2}, rec.got[0].Data)
}
