package app

import (
	"fmt"

	"go-survivors/internal/event"
	"go-survivors/internal/weapon"

	"github.com/sirupsen/logrus"
)

// UpgradeKind — вид улучшения на экране нового уровня.
type UpgradeKind int

const (
	UpgradeWeapon UpgradeKind = iota
	UpgradeRandomWeapon
	UpgradeSpeed
	UpgradeHealth
)

// UpgradeOption — один вариант на экране нового уровня.
type UpgradeOption struct {
	Kind  UpgradeKind
	Slot  int // для UpgradeWeapon
	Label string
}

// UpgradeOptions перечисляет варианты для текущего уровня игрока:
// улучшение каждого оружия, случайное оружие на чётных уровнях,
// скорость и здоровье.
func (s *Simulation) UpgradeOptions() []UpgradeOption {
	var opts []UpgradeOption
	for slot := 1; slot <= s.player.SlotCount(); slot++ {
		w := s.player.Slot(slot)
		if w == nil {
			continue
		}
		opts = append(opts, UpgradeOption{
			Kind:  UpgradeWeapon,
			Slot:  slot,
			Label: fmt.Sprintf("Upgrade %s (lvl %d)", w.Name(), w.Level()),
		})
	}
	if s.balance.RandomLoot.Offered(s.player.Level()) {
		opts = append(opts, UpgradeOption{Kind: UpgradeRandomWeapon, Label: "Random weapon"})
	}
	opts = append(opts,
		UpgradeOption{Kind: UpgradeSpeed, Label: fmt.Sprintf("Speed +%g", s.balance.Player.SpeedStep)},
		UpgradeOption{Kind: UpgradeHealth, Label: fmt.Sprintf("Max health +%d", s.balance.Player.HealthStep)},
	)
	return opts
}

// ApplyUpgrade применяет выбранный вариант.
func (s *Simulation) ApplyUpgrade(opt UpgradeOption) error {
	switch opt.Kind {
	case UpgradeWeapon:
		w := s.player.Slot(opt.Slot)
		if w == nil {
			return fmt.Errorf("upgrade: slot %d is empty", opt.Slot)
		}
		w.LevelUp()
		s.EventDispatcher.Emit(event.UpgradeChosen, event.UpgradeChosenData{Option: string(w.Kind())})

	case UpgradeRandomWeapon:
		w, err := weapon.Random(s.balance.RandomLoot, &s.balance.Weapons, s.Rng, s.player.Level())
		if err != nil {
			return fmt.Errorf("upgrade: %w", err)
		}
		slot := s.player.Equip(w)
		s.log.WithFields(logrus.Fields{
			"weapon": w.Kind(),
			"level":  w.Level(),
			"slot":   slot,
		}).Info("Получено случайное оружие")
		s.EventDispatcher.Emit(event.UpgradeChosen, event.UpgradeChosenData{Option: "random"})

	case UpgradeSpeed:
		s.player.IncreaseSpeed()
		s.EventDispatcher.Emit(event.StatIncreased, event.StatIncreasedData{Stat: "speed"})

	case UpgradeHealth:
		s.player.IncreaseHealth()
		s.EventDispatcher.Emit(event.StatIncreased, event.StatIncreasedData{Stat: "health"})

	default:
		return fmt.Errorf("upgrade: unknown option %d", opt.Kind)
	}
	return nil
}
