// internal/defs/enemies.go
package defs

// EnemyScaling описывает, как характеристики новых врагов растут
// с уровнем игрока, и формулу награды за убийство.
type EnemyScaling struct {
	Size           float64 `yaml:"size"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedPerLevel  float64 `yaml:"speed_per_level"` // speed = base * (1 + k*level)
	BaseHealth     int     `yaml:"base_health"`
	HealthPerLevel int     `yaml:"health_per_level"`
	BaseDamage     int     `yaml:"base_damage"`
	DamagePerLevel int     `yaml:"damage_per_level"`

	RewardPerHealth float64 `yaml:"reward_per_health"`
	RewardPerDamage float64 `yaml:"reward_per_damage"`
	RewardPerSpeed  float64 `yaml:"reward_per_speed"`
}

// EnemyStats — характеристики конкретного врага.
type EnemyStats struct {
	Speed     float64
	MaxHealth int
	Damage    int
}

// StatsForLevel считает характеристики врага для уровня игрока.
func (s EnemyScaling) StatsForLevel(level int) EnemyStats {
	return EnemyStats{
		Speed:     s.BaseSpeed * (1 + s.SpeedPerLevel*float64(level)),
		MaxHealth: s.BaseHealth + s.HealthPerLevel*level,
		Damage:    s.BaseDamage + s.DamagePerLevel*level,
	}
}

// Reward — очки за убийство врага с такими характеристиками.
func (s EnemyScaling) Reward(st EnemyStats) float64 {
	return s.RewardPerHealth*float64(st.MaxHealth) +
		s.RewardPerDamage*float64(st.Damage) +
		s.RewardPerSpeed*st.Speed
}
