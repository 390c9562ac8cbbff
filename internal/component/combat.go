// internal/component/combat.go
package component

// Health — компонент здоровья. Current всегда в [0, Max].
type Health struct {
	Current int
	Max     int
}

func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// TakeDamage уменьшает здоровье, не опуская его ниже нуля.
// Возвращает true, если здоровье закончилось.
func (h *Health) TakeDamage(amount int) bool {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current <= 0
}

// Heal восстанавливает здоровье, но не выше максимума.
func (h *Health) Heal(amount int) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Grow увеличивает максимум и текущее здоровье на одну и ту же величину.
func (h *Health) Grow(amount int) {
	h.Max += amount
	h.Heal(amount)
}

func (h Health) Dead() bool {
	return h.Current <= 0
}

// Ratio — доля оставшегося здоровья, для индикаторов.
func (h Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// Cooldown — таймер перезарядки. Elapsed растёт каждый тик и
// сбрасывается только при успешном срабатывании.
type Cooldown struct {
	Interval float64
	Elapsed  float64
}

func (c *Cooldown) Tick(dt float64) {
	c.Elapsed += dt
}

func (c Cooldown) Ready() bool {
	return c.Elapsed >= c.Interval
}

func (c *Cooldown) Reset() {
	c.Elapsed = 0
}

// Shorten уменьшает интервал в factor раз, но не ниже floor.
func (c *Cooldown) Shorten(factor, floor float64) {
	c.Interval *= factor
	if c.Interval < floor {
		c.Interval = floor
	}
}
