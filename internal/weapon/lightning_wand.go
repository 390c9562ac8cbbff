package weapon

import (
	"sort"

	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/projectile"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// LightningWand выпускает по молнии в каждого из N самых здоровых врагов.
// Если врагов меньше N, цели повторяются по кругу.
type LightningWand struct {
	base
	speed          float64
	speedStep      float64
	projectiles    int
	projectileStep int
	lifetime       float64
	bolts          []*projectile.Lightning
}

func NewLightningWand(def defs.LightningWandDef) *LightningWand {
	return &LightningWand{
		base:           newBase(defs.WeaponLightningWand, "Lightning", def.Cooldown, def.Damage, def.Upgrade),
		speed:          def.Speed,
		speedStep:      def.SpeedStep,
		projectiles:    def.Projectiles,
		projectileStep: def.ProjectileStep,
		lifetime:       def.BoltLifetime,
	}
}

func (w *LightningWand) Speed() float64                 { return w.speed }
func (w *LightningWand) Projectiles() int               { return w.projectiles }
func (w *LightningWand) Bolts() []*projectile.Lightning { return w.bolts }

func (w *LightningWand) Update(dt float64, arena *entity.Arena) {
	w.cooldown.Tick(dt)

	for _, b := range w.bolts {
		b.Update(dt)
		if hit := b.Strike(arena.Enemies.All()); hit != nil {
			if hit.TakeDamage(b.Damage()) {
				arena.Enemies.Kill(hit.ID)
			}
		}
	}
	w.bolts = projectile.Compact(w.bolts)
}

// Targets возвращает цели залпа: самые здоровые враги по убыванию
// здоровья, при равенстве в порядке появления.
func (w *LightningWand) Targets(enemies []*entity.Enemy) []*entity.Enemy {
	if len(enemies) == 0 {
		return nil
	}
	sorted := make([]*entity.Enemy, len(enemies))
	copy(sorted, enemies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Health.Current > sorted[j].Health.Current
	})

	targets := make([]*entity.Enemy, w.projectiles)
	for i := range targets {
		targets[i] = sorted[i%len(sorted)]
	}
	return targets
}

func (w *LightningWand) AttemptFire(arena *entity.Arena) bool {
	if !w.ready() {
		return false
	}
	targets := w.Targets(arena.Enemies.All())
	if len(targets) == 0 {
		return false
	}

	origin := arena.PlayerWorld()
	for _, t := range targets {
		dir := arena.AimAt(t.Center())
		w.bolts = append(w.bolts, projectile.NewLightning(arena.IDs.Next(), origin, dir, w.speed, w.damage, w.lifetime))
	}
	w.fired(arena, len(targets))
	return true
}

func (w *LightningWand) Draw(screen *ebiten.Image, view entity.View) {
	for _, b := range w.bolts {
		b.Draw(screen, view.Camera)
	}
}

func (w *LightningWand) LevelUp() {
	w.levelUp()
	w.speed += w.speedStep
	w.projectiles += w.projectileStep
	w.logUpgrade(logrus.Fields{"speed": w.speed, "projectiles": w.projectiles})
}
