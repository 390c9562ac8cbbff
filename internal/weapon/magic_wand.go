package weapon

import (
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/projectile"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// MagicWand выпускает в сторону курсора облако, которое медленно
// затухает и бьёт всех врагов внутри.
type MagicWand struct {
	base
	speed      float64
	speedDecay float64
	radius     float64
	radiusStep float64
	lifetime   float64
	interval   float64
	clouds     []*projectile.MagicCloud
}

func NewMagicWand(def defs.MagicWandDef) *MagicWand {
	return &MagicWand{
		base:       newBase(defs.WeaponMagicWand, "Magic Wand", def.Cooldown, def.Damage, def.Upgrade),
		speed:      def.CloudSpeed,
		speedDecay: def.SpeedDecay,
		radius:     def.Radius,
		radiusStep: def.RadiusStep,
		lifetime:   def.Lifetime,
		interval:   def.DamageInterval,
	}
}

func (w *MagicWand) Radius() float64                  { return w.radius }
func (w *MagicWand) Clouds() []*projectile.MagicCloud { return w.clouds }

func (w *MagicWand) Update(dt float64, arena *entity.Arena) {
	w.cooldown.Tick(dt)

	var defeated []*entity.Enemy
	for _, c := range w.clouds {
		c.Update(dt)
		defeated = append(defeated, c.ApplyDamage(arena.Enemies.All())...)
	}
	arena.Enemies.KillAll(defeated)
	w.clouds = projectile.Compact(w.clouds)
}

func (w *MagicWand) AttemptFire(arena *entity.Arena) bool {
	if !w.ready() {
		return false
	}
	cloud := projectile.NewMagicCloud(arena.IDs.Next(), arena.PlayerWorld(), arena.Aim(),
		w.speed, w.speedDecay, w.damage, w.radius, w.lifetime, w.interval)
	w.clouds = append(w.clouds, cloud)
	w.fired(arena, 1)
	return true
}

func (w *MagicWand) Draw(screen *ebiten.Image, view entity.View) {
	for _, c := range w.clouds {
		c.Draw(screen, view.Camera)
	}
}

func (w *MagicWand) LevelUp() {
	w.levelUp()
	w.radius += w.radiusStep
	w.logUpgrade(logrus.Fields{"radius": w.radius})
}
