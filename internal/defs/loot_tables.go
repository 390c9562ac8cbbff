// internal/defs/loot_tables.go
package defs

// LootEntry — одна запись таблицы "случайного оружия" на экране
// повышения уровня. Weight — относительный шанс выпадения.
type LootEntry struct {
	Weapon WeaponKind `yaml:"weapon"`
	Weight int        `yaml:"weight"`
}

// LootTable — варианты случайного оружия. Предлагается только на чётных
// уровнях; выпавшее оружие улучшается Level/LevelDivisor раз.
type LootTable struct {
	LevelDivisor int         `yaml:"level_divisor"`
	Entries      []LootEntry `yaml:"entries"`
}

// Weights возвращает веса в порядке записей.
func (t LootTable) Weights() []int {
	w := make([]int, len(t.Entries))
	for i, e := range t.Entries {
		w[i] = e.Weight
	}
	return w
}

// Offered сообщает, предлагается ли случайное оружие на этом уровне.
func (t LootTable) Offered(level int) bool {
	return len(t.Entries) > 0 && level%2 == 0
}

// BonusLevels — сколько раз улучшить выпавшее оружие.
func (t LootTable) BonusLevels(level int) int {
	if t.LevelDivisor <= 0 {
		return 0
	}
	return level / t.LevelDivisor
}
