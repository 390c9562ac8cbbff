// internal/entity/player.go
package entity

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Player — персонаж игрока. На экране он всегда в центре,
// движение выражается сдвигом камеры.
type Player struct {
	Speed      float64
	Direction  utils.Vec2 // нулевой или единичный
	Health     component.Health
	Progress   component.Progression
	Size       float64
	ActiveSlot int

	slots      []Weapon // slots[i] — слот i+1
	speedStep  float64
	healthStep int
}

// NewPlayer создаёт игрока с базовыми параметрами.
func NewPlayer(def defs.PlayerDef) *Player {
	return &Player{
		Speed:      def.Speed,
		Health:     component.NewHealth(def.MaxHealth),
		Progress:   component.NewProgression(def.ScoreMultiplier, def.ScorePower),
		Size:       def.Size,
		ActiveSlot: 1,
		speedStep:  def.SpeedStep,
		healthStep: def.HealthStep,
	}
}

// Steer пересчитывает направление по нажатым клавишам.
func (p *Player) Steer(up, down, left, right bool) {
	var d utils.Vec2
	if up {
		d.Y--
	}
	if down {
		d.Y++
	}
	if left {
		d.X--
	}
	if right {
		d.X++
	}
	p.Direction = d.Normalize()
}

// Step — смещение игрока за тик.
func (p *Player) Step() utils.Vec2 {
	return p.Direction.Scale(p.Speed)
}

// SelectSlot выбирает активный слот (только подсветка в HUD).
func (p *Player) SelectSlot(slot int) {
	if slot >= 1 {
		p.ActiveSlot = slot
	}
}

// TakeDamage наносит урон; true — здоровье закончилось.
func (p *Player) TakeDamage(amount int) bool {
	return p.Health.TakeDamage(amount)
}

func (p *Player) Heal(amount int) {
	p.Health.Heal(amount)
}

// AddScore начисляет очки; true — получен новый уровень.
func (p *Player) AddScore(amount float64) bool {
	return p.Progress.Add(amount)
}

func (p *Player) Level() int {
	return p.Progress.Level
}

func (p *Player) Score() float64 {
	return p.Progress.Score
}

func (p *Player) RequiredForLevelUp() float64 {
	return p.Progress.Required()
}

// JustLeveledUp — есть необработанное повышение уровня.
func (p *Player) JustLeveledUp() bool {
	return p.Progress.Pending() > 0
}

// ConsumeLevelUp снимает флаг одного повышения уровня.
func (p *Player) ConsumeLevelUp() bool {
	return p.Progress.Consume()
}

func (p *Player) IncreaseSpeed() {
	p.Speed += p.speedStep
}

// IncreaseHealth поднимает максимум и текущее здоровье.
func (p *Player) IncreaseHealth() {
	p.Health.Grow(p.healthStep)
}

// Equip кладёт оружие в следующий свободный слот и возвращает его номер.
func (p *Player) Equip(w Weapon) int {
	p.slots = append(p.slots, w)
	return len(p.slots)
}

// SetSlot заменяет оружие в слоте 1..N или добавляет слот N+1.
// Слоты остаются непрерывными: дальше N+1 ставить нельзя.
func (p *Player) SetSlot(slot int, w Weapon) bool {
	switch {
	case slot >= 1 && slot <= len(p.slots):
		p.slots[slot-1] = w
		return true
	case slot == len(p.slots)+1:
		p.Equip(w)
		return true
	default:
		return false
	}
}

// Slot возвращает оружие слота (nil для пустого или несуществующего).
func (p *Player) Slot(slot int) Weapon {
	if slot < 1 || slot > len(p.slots) {
		return nil
	}
	return p.slots[slot-1]
}

func (p *Player) SlotCount() int {
	return len(p.slots)
}

// Weapons возвращает копию слотов по порядку; пустые слоты — nil.
func (p *Player) Weapons() []Weapon {
	out := make([]Weapon, len(p.slots))
	copy(out, p.slots)
	return out
}

// Rect — хитбокс игрока с центром в center (экранные координаты).
func (p *Player) Rect(center utils.Vec2) component.Rect {
	return component.RectAround(center, p.Size, p.Size)
}

// Draw рисует игрока в центре экрана.
func (p *Player) Draw(screen *ebiten.Image, center utils.Vec2) {
	r := p.Rect(center)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.PlayerColor, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, config.TextLightColor, false)
}
