// internal/defs/characters.go
package defs

// PlayerDef — базовые параметры игрока и правила его улучшений.
type PlayerDef struct {
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"`
	MaxHealth       int     `yaml:"max_health"`
	ScoreMultiplier float64 `yaml:"score_multiplier"`
	ScorePower      float64 `yaml:"score_power"`
	DamageCooldown  float64 `yaml:"damage_cooldown"` // пауза между ударами врагов по игроку
	SpeedStep       float64 `yaml:"speed_step"`
	HealthStep      int     `yaml:"health_step"`
}

// LoadoutEntry — оружие в стартовом слоте персонажа.
type LoadoutEntry struct {
	Weapon WeaponKind `yaml:"weapon"`
	Levels int        `yaml:"levels"` // сколько раз улучшить сразу
}

// CharacterDef — персонаж на экране выбора.
type CharacterDef struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Speed       float64        `yaml:"speed"`
	MaxHealth   int            `yaml:"max_health"`
	Loadout     []LoadoutEntry `yaml:"loadout"`
}
