// Package weapon реализует оружие игрока. Каждое оружие владеет своими
// снарядами, таймером перезарядки и растущими при улучшении
// характеристиками.
package weapon

import (
	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/pkg/logger"

	"github.com/sirupsen/logrus"
)

// base — общая часть всех видов оружия: перезарядка, урон и уровень.
type base struct {
	kind     defs.WeaponKind
	name     string
	level    int
	damage   int
	cooldown component.Cooldown
	upgrade  defs.Upgrade
}

func newBase(kind defs.WeaponKind, name string, cooldown float64, damage int, upgrade defs.Upgrade) base {
	return base{
		kind:     kind,
		name:     name,
		level:    1,
		damage:   damage,
		cooldown: component.Cooldown{Interval: cooldown},
		upgrade:  upgrade,
	}
}

func (b *base) Kind() defs.WeaponKind { return b.kind }
func (b *base) Name() string          { return b.name }
func (b *base) Level() int            { return b.level }
func (b *base) Damage() int           { return b.damage }

// Cooldown — текущий интервал перезарядки в секундах.
func (b *base) Cooldown() float64 { return b.cooldown.Interval }

// SinceLastShot — время с последнего успешного выстрела.
func (b *base) SinceLastShot() float64 { return b.cooldown.Elapsed }

func (b *base) ready() bool {
	return b.cooldown.Ready()
}

// fired сбрасывает перезарядку и сообщает о выстреле.
func (b *base) fired(arena *entity.Arena, shots int) {
	b.cooldown.Reset()
	arena.Emit(event.WeaponFired, event.WeaponFiredData{Weapon: string(b.kind), Shots: shots})
}

// levelUp применяет общую часть улучшения.
func (b *base) levelUp() {
	b.level++
	b.damage += b.upgrade.Damage
	b.cooldown.Shorten(b.upgrade.CooldownFactor, b.upgrade.MinCooldown)
}

func (b *base) logUpgrade(extra logrus.Fields) {
	fields := logrus.Fields{
		"weapon":   b.kind,
		"level":    b.level,
		"damage":   b.damage,
		"cooldown": b.cooldown.Interval,
	}
	for k, v := range extra {
		fields[k] = v
	}
	logger.Log.WithFields(fields).Info("Оружие улучшено")
}
