// internal/defs/waves.go
package defs

// SpawnDef описывает появление врагов: стартовую пачку и пассивный
// поток, вероятность которого растёт с уровнем.
type SpawnDef struct {
	InitialEnemies int     `yaml:"initial_enemies"`
	BaseChance     float64 `yaml:"base_chance"`
	ChancePerLevel float64 `yaml:"chance_per_level"`
	EdgeOffset     float64 `yaml:"edge_offset"` // насколько за краем экрана появляется враг
}

// ChanceForLevel — вероятность появления врага за один тик.
func (s SpawnDef) ChanceForLevel(level int) float64 {
	return s.BaseChance + s.ChancePerLevel*float64(level-1)
}
