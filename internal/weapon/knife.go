package weapon

import (
	"math"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// Knife наносит удар полукругом в сторону курсора. Каждый враг получает
// урон не больше одного раза за удар.
type Knife struct {
	base
	rng       float64
	rangeStep float64
	duration  float64

	swinging  bool
	swingTime float64
	hit       map[types.EntityID]struct{}
}

func NewKnife(def defs.KnifeDef) *Knife {
	return &Knife{
		base:      newBase(defs.WeaponKnife, "Knife", def.Cooldown, def.Damage, def.Upgrade),
		rng:       def.Range,
		rangeStep: def.RangeStep,
		duration:  def.SwingDuration,
		hit:       make(map[types.EntityID]struct{}),
	}
}

func (k *Knife) Range() float64 { return k.rng }
func (k *Knife) Swinging() bool { return k.swinging }
func (k *Knife) HitCount() int  { return len(k.hit) }

// Progress — доля пройденного удара, от 0 до 1.
func (k *Knife) Progress() float64 {
	if k.duration <= 0 {
		return 1
	}
	return math.Min(1, k.swingTime/k.duration)
}

func (k *Knife) Update(dt float64, arena *entity.Arena) {
	k.cooldown.Tick(dt)
	if !k.swinging {
		return
	}

	k.swingTime += dt
	if k.Progress() < 1 {
		k.strike(arena)
	}
	if k.swingTime >= k.duration {
		k.swinging = false
		clear(k.hit)
	}
}

func (k *Knife) AttemptFire(arena *entity.Arena) bool {
	if !k.ready() {
		return false
	}
	k.swinging = true
	k.swingTime = 0
	clear(k.hit)

	k.strike(arena)
	k.fired(arena, 1)
	return true
}

// strike бьёт всех врагов перед игроком в радиусе удара.
// Погибшие удаляются после прохода.
func (k *Knife) strike(arena *entity.Arena) {
	aim := arena.Aim()
	var defeated []*entity.Enemy
	for _, e := range arena.Enemies.All() {
		if _, done := k.hit[e.ID]; done || !e.Alive() {
			continue
		}
		offset := arena.ToScreen(e.Center()).Sub(arena.PlayerScreen)
		if offset.Len() > k.rng {
			continue
		}
		if aim.Dot(offset.Normalize()) <= 0 {
			continue
		}
		if e.TakeDamage(k.damage) {
			defeated = append(defeated, e)
		}
		k.hit[e.ID] = struct{}{}
	}
	arena.Enemies.KillAll(defeated)
}

func (k *Knife) Draw(screen *ebiten.Image, view entity.View) {
	if !k.swinging {
		return
	}
	c := view.PlayerScreen
	// лезвие проходит от +90° до -90° относительно направления на курсор
	angle := view.Aim().Angle() + math.Pi/2 - math.Pi*k.Progress()
	end := c.Add(utils.V(math.Cos(angle), math.Sin(angle)).Scale(config.KnifeLength))
	vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(end.X), float32(end.Y), config.KnifeWidth, config.KnifeColor, true)

	handle := utils.V(math.Cos(angle-math.Pi/2), math.Sin(angle-math.Pi/2)).Scale(config.KnifeHandleLength / 2)
	h1, h2 := c.Add(handle), c.Sub(handle)
	vector.StrokeLine(screen, float32(h1.X), float32(h1.Y), float32(h2.X), float32(h2.Y), config.KnifeWidth, config.KnifeHandleColor, true)

	vector.DrawFilledCircle(screen, float32(end.X), float32(end.Y), config.KnifeWidth/2, config.KnifeColor, true)
}

func (k *Knife) LevelUp() {
	k.levelUp()
	k.rng += k.rangeStep
	k.logUpgrade(logrus.Fields{"range": k.rng})
}
