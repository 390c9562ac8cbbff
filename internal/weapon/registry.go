package weapon

import (
	"fmt"

	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	prng "go-survivors/internal/utils"
)

type constructor func(w *defs.WeaponsDef) entity.Weapon

var library = map[defs.WeaponKind]constructor{
	defs.WeaponPistol:            func(w *defs.WeaponsDef) entity.Weapon { return NewPistol(w.Pistol) },
	defs.WeaponKnife:             func(w *defs.WeaponsDef) entity.Weapon { return NewKnife(w.Knife) },
	defs.WeaponMagicWand:         func(w *defs.WeaponsDef) entity.Weapon { return NewMagicWand(w.MagicWand) },
	defs.WeaponLightningWand:     func(w *defs.WeaponsDef) entity.Weapon { return NewLightningWand(w.LightningWand) },
	defs.WeaponBallLightningWand: func(w *defs.WeaponsDef) entity.Weapon { return NewBallLightningWand(w.BallLightningWand) },
}

// New создаёт оружие нужного вида с характеристиками из баланса.
func New(kind defs.WeaponKind, weapons *defs.WeaponsDef) (entity.Weapon, error) {
	build, ok := library[kind]
	if !ok {
		return nil, fmt.Errorf("unknown weapon kind %q", kind)
	}
	return build(weapons), nil
}

// NewLeveled создаёт оружие и сразу улучшает его levels раз.
func NewLeveled(kind defs.WeaponKind, weapons *defs.WeaponsDef, levels int) (entity.Weapon, error) {
	w, err := New(kind, weapons)
	if err != nil {
		return nil, err
	}
	for i := 0; i < levels; i++ {
		w.LevelUp()
	}
	return w, nil
}

// Random выбирает оружие из таблицы случайного лута и улучшает его
// соответственно уровню игрока.
func Random(table defs.LootTable, weapons *defs.WeaponsDef, rng *prng.PRNGService, level int) (entity.Weapon, error) {
	idx := rng.ChooseWeighted(table.Weights())
	if idx < 0 {
		return nil, fmt.Errorf("random loot table is empty")
	}
	return NewLeveled(table.Entries[idx].Weapon, weapons, table.BonusLevels(level))
}

// Loadout собирает стартовое оружие персонажа.
func Loadout(c defs.CharacterDef, weapons *defs.WeaponsDef) ([]entity.Weapon, error) {
	out := make([]entity.Weapon, 0, len(c.Loadout))
	for _, entry := range c.Loadout {
		w, err := NewLeveled(entry.Weapon, weapons, entry.Levels)
		if err != nil {
			return nil, fmt.Errorf("character %s: %w", c.ID, err)
		}
		out = append(out, w)
	}
	return out, nil
}
