package projectile

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// BallRadius — радиус ядра шаровой молнии.
	BallRadius = 8
	// скорость пульсации свечения (оборотов в секунду)
	ballPulseSpeed = 0.2
)

// BallLightning — шаровая молния: летит к текущей цели, после попадания
// ищет ближайшего ещё не поражённого врага. Один и тот же враг не может
// быть поражён дважды.
type BallLightning struct {
	id          types.EntityID
	pos         component.Position
	dir         utils.Vec2
	speed       float64
	damage      int
	bouncesLeft int
	maxRange    float64
	traveled    float64
	target      types.EntityID
	hit         map[types.EntityID]struct{}
	pulse       float64
	dead        bool
}

func NewBallLightning(id types.EntityID, pos, dir utils.Vec2, speed float64, damage, bounces int, maxRange float64) *BallLightning {
	return &BallLightning{
		id:          id,
		pos:         component.At(pos),
		dir:         dir,
		speed:       speed,
		damage:      damage,
		bouncesLeft: bounces,
		maxRange:    maxRange,
		hit:         make(map[types.EntityID]struct{}),
	}
}

func (b *BallLightning) ID() types.EntityID     { return b.id }
func (b *BallLightning) Pos() utils.Vec2        { return b.pos.Vec() }
func (b *BallLightning) Alive() bool            { return !b.dead }
func (b *BallLightning) Target() types.EntityID { return b.target }
func (b *BallLightning) BouncesLeft() int       { return b.bouncesLeft }
func (b *BallLightning) Traveled() float64      { return b.traveled }
func (b *BallLightning) Direction() utils.Vec2  { return b.dir }

// HasHit — был ли враг уже поражён этой молнией.
func (b *BallLightning) HasHit(id types.EntityID) bool {
	_, ok := b.hit[id]
	return ok
}

// HitCount — сколько разных врагов поражено.
func (b *BallLightning) HitCount() int {
	return len(b.hit)
}

// SetTarget задаёт цель и нацеливает молнию на неё.
func (b *BallLightning) SetTarget(e *entity.Enemy) {
	b.target = e.ID
	b.dir = e.Center().Sub(b.pos.Vec()).Normalize()
}

// Update двигает молнию и гасит её, если исчерпана дальность или отскоки.
func (b *BallLightning) Update(dt float64) {
	if b.dead {
		return
	}
	b.pulse += dt * ballPulseSpeed
	if b.pulse >= 1 {
		b.pulse = 0
	}

	step := b.dir.Scale(b.speed)
	b.pos.Move(b.dir, b.speed)
	b.traveled += step.Len()

	if b.traveled >= b.maxRange || b.bouncesLeft <= 0 {
		b.dead = true
	}
}

// Engage проверяет столкновение с текущей целью. При попадании молния
// наносит урон, запоминает врага, тратит отскок и теряет цель.
// Возвращает поражённого врага и признак его гибели. Цель, которая уже
// исчезла из группы, просто сбрасывается.
func (b *BallLightning) Engage(enemies *entity.EnemyGroup) (*entity.Enemy, bool) {
	if b.dead || b.target == types.NoEntity {
		return nil, false
	}
	target, ok := enemies.Get(b.target)
	if !ok || !target.Alive() || b.HasHit(target.ID) {
		b.target = types.NoEntity
		return nil, false
	}

	if b.pos.Vec().Dist(target.Center()) >= BallRadius+target.Width()/2 {
		return nil, false
	}

	b.hit[target.ID] = struct{}{}
	defeated := target.TakeDamage(b.damage)
	b.bouncesLeft--
	b.target = types.NoEntity
	return target, defeated
}

// Retarget ищет ближайшего живого непоражённого врага в радиусе
// searchRadius и нацеливается на него. Без отскоков не ищет.
func (b *BallLightning) Retarget(enemies []*entity.Enemy, searchRadius float64) bool {
	if b.dead || b.bouncesLeft <= 0 {
		return false
	}

	var closest *entity.Enemy
	closestDist := searchRadius
	here := b.pos.Vec()
	for _, e := range enemies {
		if !e.Alive() || b.HasHit(e.ID) {
			continue
		}
		if d := here.Dist(e.Center()); d < closestDist {
			closestDist = d
			closest = e
		}
	}
	if closest == nil {
		return false
	}
	b.SetTarget(closest)
	return true
}

func (b *BallLightning) Draw(screen *ebiten.Image, camera utils.Vec2) {
	p := b.pos.Vec().Add(camera)
	wobble := float32(0.5 * math.Sin(2*math.Pi*b.pulse*10))
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), BallRadius+2+wobble, config.BallGlowColor, true)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), BallRadius-wobble, config.BallCoreColor, true)
}
