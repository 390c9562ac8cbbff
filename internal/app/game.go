// internal/app/game.go
package app

import (
	"fmt"

	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/system"
	"go-survivors/internal/utils"
	"go-survivors/internal/weapon"
	"go-survivors/pkg/logger"
	vec "go-survivors/pkg/utils"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// Simulation — один забег: игрок, враги, оружие и камера.
// Игрок всегда в центре экрана, мир сдвигается камерой
// (экран = мир + Camera).
type Simulation struct {
	RunID string

	MovementSystem *system.MovementSystem
	RenderSystem   *system.RenderSystem
	WaveSystem     *system.WaveSystem
	CombatSystem   *system.CombatSystem
	PlayerSystem   *system.PlayerSystem

	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	balance *defs.Balance
	player  *entity.Player
	enemies *entity.EnemyGroup
	ids     *entity.IDSource

	center     vec.Vec2
	camera     vec.Vec2
	cursor     vec.Vec2
	weaponTick int
	gameOver   bool
	kills      int
	elapsed    float64

	log *logrus.Entry
}

// NewSimulation начинает забег за выбранного персонажа.
func NewSimulation(balance *defs.Balance, character defs.CharacterDef, rng *utils.PRNGService,
	dispatcher *event.Dispatcher, width, height float64) (*Simulation, error) {
	player, err := NewPlayerFor(balance, character)
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	s := NewSimulationWithPlayer(balance, player, rng, dispatcher, width, height)
	s.log.WithField("character", character.ID).Info("Забег начат")
	return s, nil
}

// NewSimulationWithPlayer начинает забег с уже собранным игроком.
func NewSimulationWithPlayer(balance *defs.Balance, player *entity.Player, rng *utils.PRNGService,
	dispatcher *event.Dispatcher, width, height float64) *Simulation {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	runID := uuid.NewString()
	enemies := entity.NewEnemyGroup()
	ids := entity.NewIDSource()

	s := &Simulation{
		RunID:           runID,
		EventDispatcher: dispatcher,
		Rng:             rng,
		balance:         balance,
		player:          player,
		enemies:         enemies,
		ids:             ids,
		center:          vec.V(width/2, height/2),
		log: logger.Log.WithFields(logrus.Fields{
			"run_id": runID,
			"seed":   rng.Seed(),
		}),
	}
	s.cursor = s.center

	s.MovementSystem = system.NewMovementSystem(enemies)
	s.RenderSystem = system.NewRenderSystem(enemies, player)
	s.WaveSystem = system.NewWaveSystem(enemies, ids, rng, balance.Enemy, balance.Spawn, width, height)
	s.CombatSystem = system.NewCombatSystem(enemies, dispatcher, balance.Player.DamageCooldown)
	s.PlayerSystem = system.NewPlayerSystem(player, dispatcher)

	enemies.OnKill(s.onEnemyKilled)
	s.WaveSystem.Start(player.Level(), s.camera)
	return s
}

func (s *Simulation) onEnemyKilled(e *entity.Enemy) {
	s.kills++
	s.EventDispatcher.Emit(event.EnemyKilled, event.EnemyKilledData{EnemyID: e.ID, Reward: e.Reward()})
}

// Update продвигает забег на один тик.
//
// Порядок: ожидающее повышение уровня останавливает тик; затем игрок
// двигает камеру; обновляется и стреляет одно оружие по кругу; враги идут
// к игроку и бьют его при касании; возможно появляется новый враг; после
// полного круга слотов отметки пистолета снимаются.
func (s *Simulation) Update(dt float64, in Input) Status {
	if s.gameOver {
		return Over
	}
	if s.player.ConsumeLevelUp() {
		return LevelUp
	}
	s.elapsed += dt

	s.player.Steer(in.Up, in.Down, in.Left, in.Right)
	if in.Slot > 0 {
		s.player.SelectSlot(in.Slot)
	}
	s.camera = s.camera.Sub(s.player.Step())
	s.cursor = in.Cursor

	arena := s.arena()
	if n := s.player.SlotCount(); n > 0 {
		s.weaponTick = (s.weaponTick + 1) % n
		if w := s.player.Slot(s.weaponTick + 1); w != nil {
			w.Update(dt, arena)
			w.AttemptFire(arena)
		}
	}

	playerWorld := arena.PlayerWorld()
	s.MovementSystem.Update(dt, playerWorld)
	if s.CombatSystem.Update(dt, s.player, s.player.Rect(playerWorld)) {
		s.endRun()
		return Over
	}

	s.WaveSystem.Update(s.player.Level(), s.camera)

	if s.weaponTick == 0 {
		s.enemies.ClearTargeting()
	}
	return Running
}

// endRun переводит забег в состояние конца игры. PlayerDied отправляется
// ровно один раз.
func (s *Simulation) endRun() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.log.WithFields(logrus.Fields{
		"level":   s.player.Level(),
		"kills":   s.kills,
		"elapsed": s.elapsed,
		"spawned": s.WaveSystem.Spawned(),
	}).Info("Игрок погиб")
	s.EventDispatcher.Emit(event.PlayerDied, event.PlayerDiedData{Level: s.player.Level()})
}

// Close отключает забег от общего диспетчера. Вызывается при уходе
// с экрана игры.
func (s *Simulation) Close() {
	s.PlayerSystem.Detach()
	s.log.WithField("kills", s.kills).Debug("Забег закрыт")
}

// HealPlayer лечит игрока, не поднимая здоровье выше максимума.
func (s *Simulation) HealPlayer(amount int) {
	before := s.player.Health.Current
	s.player.Heal(amount)
	if healed := s.player.Health.Current - before; healed > 0 {
		s.EventDispatcher.Emit(event.PlayerHealed, event.PlayerHealedData{Amount: healed, Health: s.player.Health.Current})
	}
}

func (s *Simulation) arena() *entity.Arena {
	return &entity.Arena{
		View:    s.View(),
		Enemies: s.enemies,
		Rng:     s.Rng,
		IDs:     s.ids,
		Events:  s.EventDispatcher,
	}
}

// View — текущее преобразование мир↔экран.
func (s *Simulation) View() entity.View {
	return entity.View{Camera: s.camera, PlayerScreen: s.center, Cursor: s.cursor}
}

func (s *Simulation) Player() *entity.Player      { return s.player }
func (s *Simulation) Enemies() *entity.EnemyGroup { return s.enemies }
func (s *Simulation) Camera() vec.Vec2            { return s.camera }
func (s *Simulation) GameOver() bool              { return s.gameOver }
func (s *Simulation) WeaponTick() int             { return s.weaponTick }
func (s *Simulation) Kills() int                  { return s.kills }
func (s *Simulation) Elapsed() float64            { return s.elapsed }
func (s *Simulation) Balance() *defs.Balance      { return s.balance }

// Draw рисует мир. Интерфейс поверх рисует экран игры.
func (s *Simulation) Draw(screen *ebiten.Image) {
	s.RenderSystem.Draw(screen, s.View())
}

// NewPlayerFor собирает игрока выбранного персонажа со стартовым оружием.
func NewPlayerFor(balance *defs.Balance, character defs.CharacterDef) (*entity.Player, error) {
	def := balance.Player
	if character.Speed > 0 {
		def.Speed = character.Speed
	}
	if character.MaxHealth > 0 {
		def.MaxHealth = character.MaxHealth
	}
	player := entity.NewPlayer(def)

	loadout, err := weapon.Loadout(character, &balance.Weapons)
	if err != nil {
		return nil, err
	}
	for _, w := range loadout {
		player.Equip(w)
	}
	return player, nil
}
