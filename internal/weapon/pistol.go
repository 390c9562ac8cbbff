package weapon

import (
	"math"

	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/projectile"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// Pistol стреляет в ближайшего врага, которого ещё не выбирал в текущем
// цикле слотов.
type Pistol struct {
	base
	speed    float64
	lifetime float64
	step     float64
	bullets  []*projectile.Bullet
}

func NewPistol(def defs.PistolDef) *Pistol {
	return &Pistol{
		base:     newBase(defs.WeaponPistol, "Pistol", def.Cooldown, def.Damage, def.Upgrade),
		speed:    def.BulletSpeed,
		lifetime: def.BulletLifetime,
		step:     def.SpeedStep,
	}
}

func (p *Pistol) BulletSpeed() float64 { return p.speed }

// Bullets — живые пули (только для чтения).
func (p *Pistol) Bullets() []*projectile.Bullet { return p.bullets }

func (p *Pistol) Update(dt float64, arena *entity.Arena) {
	p.cooldown.Tick(dt)

	for _, b := range p.bullets {
		b.Update(dt)
		if hit := b.Strike(arena.Enemies.All()); hit != nil {
			if hit.TakeDamage(b.Damage()) {
				arena.Enemies.Kill(hit.ID)
			}
		}
	}
	p.bullets = projectile.Compact(p.bullets)
}

func (p *Pistol) AttemptFire(arena *entity.Arena) bool {
	if !p.ready() {
		return false
	}

	var target *entity.Enemy
	closest := math.Inf(1)
	for _, e := range arena.Enemies.All() {
		if e.RecentlyTargeted {
			continue
		}
		d := arena.ToScreen(e.Center()).Dist(arena.PlayerScreen)
		if d < closest {
			closest = d
			target = e
		}
	}
	if target == nil {
		return false
	}
	target.RecentlyTargeted = true

	dir := arena.AimAt(target.Center())
	p.bullets = append(p.bullets, projectile.NewBullet(arena.IDs.Next(), arena.PlayerWorld(), dir, p.speed, p.damage, p.lifetime))
	p.fired(arena, 1)
	return true
}

func (p *Pistol) Draw(screen *ebiten.Image, view entity.View) {
	for _, b := range p.bullets {
		b.Draw(screen, view.Camera)
	}
}

func (p *Pistol) LevelUp() {
	p.levelUp()
	p.speed += p.step
	p.logUpgrade(logrus.Fields{"bullet_speed": p.speed})
}
