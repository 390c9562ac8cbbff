package projectile

import (
	"image/color"
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const cloudParticles = 15

// MagicCloud — облако волшебной палочки. Скорость, радиус и урон
// линейно затухают до нуля за время жизни; урон наносится всем врагам
// в радиусе раз в интервал.
type MagicCloud struct {
	id         types.EntityID
	pos        component.Position
	dir        utils.Vec2
	speed      float64
	speedDecay float64
	dps        float64
	maxRadius  float64
	radius     float64
	damage     float64
	life       component.Lifetime
	interval   component.Cooldown
	damaged    map[types.EntityID]struct{}
	dead       bool
}

func NewMagicCloud(id types.EntityID, pos, dir utils.Vec2, speed, speedDecay float64, damage int, radius, lifetime, interval float64) *MagicCloud {
	return &MagicCloud{
		id:         id,
		pos:        component.At(pos),
		dir:        dir,
		speed:      speed,
		speedDecay: speedDecay,
		dps:        float64(damage),
		maxRadius:  radius,
		radius:     radius,
		damage:     float64(damage),
		life:       component.Lifetime{Max: lifetime},
		interval:   component.Cooldown{Interval: interval},
		damaged:    make(map[types.EntityID]struct{}),
	}
}

func (c *MagicCloud) ID() types.EntityID { return c.id }
func (c *MagicCloud) Pos() utils.Vec2    { return c.pos.Vec() }
func (c *MagicCloud) Alive() bool        { return !c.dead }
func (c *MagicCloud) Radius() float64    { return c.radius }
func (c *MagicCloud) Damage() float64    { return c.damage }
func (c *MagicCloud) Speed() float64     { return c.speed }

// DecayFactor = 1 - time_alive/max_lifetime, не меньше нуля.
func (c *MagicCloud) DecayFactor() float64 {
	return c.life.Remaining()
}

// Update тормозит и двигает облако, пересчитывает радиус и урон.
func (c *MagicCloud) Update(dt float64) {
	if c.dead {
		return
	}
	c.speed -= c.speedDecay * dt
	if c.speed < 0 {
		c.speed = 0
	}
	c.pos.Move(c.dir, c.speed)

	c.life.Tick(dt)
	decay := c.DecayFactor()
	if decay <= 0 {
		c.radius = 0
		c.damage = 0
		c.dead = true
		return
	}
	c.radius = math.Trunc(c.maxRadius * decay)
	c.damage = c.dps * decay
	c.interval.Tick(dt)
}

// Covers — попадает ли враг в облако (радиус облака плюс половина врага).
func (c *MagicCloud) Covers(e *entity.Enemy) bool {
	return c.pos.Vec().Dist(e.Center()) <= c.radius+e.Width()/2
}

// ApplyDamage наносит урон, если прошёл интервал: набор поражённых
// сбрасывается, и каждый враг в радиусе получает урон не больше одного раза.
// Возвращает врагов, у которых закончилось здоровье; убивать их должен
// вызывающий код после прохода.
func (c *MagicCloud) ApplyDamage(enemies []*entity.Enemy) []*entity.Enemy {
	if c.dead || !c.interval.Ready() {
		return nil
	}
	c.interval.Reset()
	clear(c.damaged)

	var defeated []*entity.Enemy
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		if _, done := c.damaged[e.ID]; done {
			continue
		}
		if !c.Covers(e) {
			continue
		}
		if e.TakeDamage(int(c.damage)) {
			defeated = append(defeated, e)
		}
		c.damaged[e.ID] = struct{}{}
	}
	return defeated
}

func (c *MagicCloud) Draw(screen *ebiten.Image, camera utils.Vec2) {
	if c.radius <= 0 {
		return
	}
	p := c.pos.Vec().Add(camera)
	r := float32(c.radius)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, config.CloudColor, true)

	// частицы по краю облака медленно вращаются
	base := c.life.Alive
	for i := 0; i < cloudParticles; i++ {
		a := base + float64(i)*2*math.Pi/cloudParticles
		dist := c.radius * (0.7 + 0.3*math.Abs(math.Sin(float64(i)*1.7)))
		px := p.X + dist*math.Cos(a)
		py := p.Y + dist*math.Sin(a)
		pr := float32(c.radius * (0.2 + 0.2*math.Abs(math.Cos(float64(i)))))
		alpha := uint8(float64(config.CloudColor.A) * (0.7 + 0.3*math.Abs(math.Sin(a))))
		clr := color.RGBA{config.CloudColor.R, config.CloudColor.G, config.CloudColor.B, alpha}
		vector.DrawFilledCircle(screen, float32(px), float32(py), pr, clr, true)
	}
}
