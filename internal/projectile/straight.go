package projectile

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/pkg/utils"
)

// straight — снаряд, летящий по прямой до первого попадания
// или до истечения времени жизни.
type straight struct {
	id     types.EntityID
	pos    component.Position
	dir    utils.Vec2
	speed  float64
	damage int
	life   component.Lifetime
	w, h   float64
	dead   bool
}

func (s *straight) ID() types.EntityID    { return s.id }
func (s *straight) Pos() utils.Vec2       { return s.pos.Vec() }
func (s *straight) Alive() bool           { return !s.dead }
func (s *straight) Damage() int           { return s.damage }
func (s *straight) Direction() utils.Vec2 { return s.dir }

// Update сдвигает снаряд на speed пикселей и отсчитывает время жизни.
func (s *straight) Update(dt float64) {
	s.pos.Move(s.dir, s.speed)
	if s.life.Tick(dt) {
		s.dead = true
	}
}

// Rect — хитбокс в мировых координатах.
func (s *straight) Rect() component.Rect {
	return component.RectAround(s.pos.Vec(), s.w, s.h)
}

// Strike находит первого живого врага, чей хитбокс пересекается со снарядом,
// и гасит снаряд. Экранные хитбоксы отличаются от мировых одним и тем же
// смещением камеры, поэтому проверка идёт в мировых координатах.
func (s *straight) Strike(enemies []*entity.Enemy) *entity.Enemy {
	if s.dead {
		return nil
	}
	r := s.Rect()
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		if r.Overlaps(e.Rect()) {
			s.dead = true
			return e
		}
	}
	return nil
}
