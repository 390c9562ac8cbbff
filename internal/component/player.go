// internal/component/player.go
package component

import "math"

// Progression хранит очки и уровень игрока.
// Порог следующего уровня: Multiplier * Level^Power.
type Progression struct {
	Score      float64
	Level      int
	Multiplier float64
	Power      float64

	pending int // уровни, для которых ещё не выбрано улучшение
}

func NewProgression(multiplier, power float64) Progression {
	return Progression{Level: 1, Multiplier: multiplier, Power: power}
}

// Required — сколько очков нужно для следующего уровня.
func (p Progression) Required() float64 {
	return p.Multiplier * math.Pow(float64(p.Level), p.Power)
}

// Add начисляет очки. Если порог превышен, уровень растёт на один,
// очки обнуляются (излишек сгорает), а уровень ставится в очередь
// на выбор улучшения. Возвращает true при повышении уровня.
func (p *Progression) Add(amount float64) bool {
	p.Score += amount
	if p.Required() < p.Score {
		p.Level++
		p.Score = 0
		p.pending++
		return true
	}
	return false
}

// Pending — сколько повышений уровня ещё не обработано.
func (p Progression) Pending() int {
	return p.pending
}

// Consume снимает одно повышение уровня из очереди.
func (p *Progression) Consume() bool {
	if p.pending == 0 {
		return false
	}
	p.pending--
	return true
}

// Progress — доля заполнения полосы опыта.
func (p Progression) Progress() float64 {
	req := p.Required()
	if req <= 0 {
		return 0
	}
	return math.Min(1, p.Score/req)
}
