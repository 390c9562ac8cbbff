// internal/component/projectile.go
package component

// Lifetime — ограничение времени жизни снаряда.
type Lifetime struct {
	Max   float64
	Alive float64
}

// Tick продвигает время жизни и сообщает, истекло ли оно.
func (l *Lifetime) Tick(dt float64) bool {
	l.Alive += dt
	return l.Expired()
}

func (l Lifetime) Expired() bool {
	return l.Alive >= l.Max
}

// Remaining — оставшаяся доля жизни: 1 в начале, 0 в конце.
func (l Lifetime) Remaining() float64 {
	if l.Max <= 0 {
		return 0
	}
	r := 1 - l.Alive/l.Max
	if r < 0 {
		return 0
	}
	return r
}
