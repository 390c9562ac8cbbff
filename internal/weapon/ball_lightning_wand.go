package weapon

import (
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/projectile"
	"go-survivors/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// BallLightningWand выпускает шаровую молнию в случайного врага.
// Молния перескакивает между ближайшими непоражёнными врагами, пока
// не кончатся отскоки или дальность.
type BallLightningWand struct {
	base
	speed        float64
	bounces      int
	bounceStep   int
	maxRange     float64
	searchRadius float64
	balls        []*projectile.BallLightning
}

func NewBallLightningWand(def defs.BallLightningWandDef) *BallLightningWand {
	return &BallLightningWand{
		base:         newBase(defs.WeaponBallLightningWand, "Ball Lightning", def.Cooldown, def.Damage, def.Upgrade),
		speed:        def.Speed,
		bounces:      def.Bounces,
		bounceStep:   def.BounceStep,
		maxRange:     def.MaxRange,
		searchRadius: def.SearchRadius,
	}
}

func (w *BallLightningWand) Bounces() int                       { return w.bounces }
func (w *BallLightningWand) Balls() []*projectile.BallLightning { return w.balls }

func (w *BallLightningWand) Update(dt float64, arena *entity.Arena) {
	w.cooldown.Tick(dt)

	var defeated []*entity.Enemy
	for _, b := range w.balls {
		b.Update(dt)
		if hit, killed := b.Engage(arena.Enemies); hit != nil {
			arena.Emit(event.LightningHit, event.LightningHitData{EnemyID: hit.ID, Killed: killed})
			if killed {
				defeated = append(defeated, hit)
			}
		}
		if b.Target() == types.NoEntity {
			b.Retarget(arena.Enemies.All(), w.searchRadius)
		}
	}
	arena.Enemies.KillAll(defeated)
	w.balls = projectile.Compact(w.balls)
}

func (w *BallLightningWand) AttemptFire(arena *entity.Arena) bool {
	if !w.ready() {
		return false
	}
	enemies := arena.Enemies.All()
	if len(enemies) == 0 {
		return false
	}

	target := enemies[arena.Rng.Intn(len(enemies))]
	ball := projectile.NewBallLightning(arena.IDs.Next(), arena.PlayerWorld(), arena.AimAt(target.Center()),
		w.speed, w.damage, w.bounces, w.maxRange)
	ball.SetTarget(target)
	w.balls = append(w.balls, ball)
	w.fired(arena, 1)
	return true
}

func (w *BallLightningWand) Draw(screen *ebiten.Image, view entity.View) {
	for _, b := range w.balls {
		b.Draw(screen, view.Camera)
	}
}

func (w *BallLightningWand) LevelUp() {
	w.levelUp()
	w.bounces += w.bounceStep
	w.logUpgrade(logrus.Fields{"bounces": w.bounces})
}
