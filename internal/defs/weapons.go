// internal/defs/weapons.go
package defs

// Скорости снарядов измеряются в пикселях за тик, время — в секундах.

type PistolDef struct {
	Cooldown       float64 `yaml:"cooldown"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	Damage         int     `yaml:"damage"`
	BulletLifetime float64 `yaml:"bullet_lifetime"`
	Upgrade        Upgrade `yaml:"upgrade"`
	SpeedStep      float64 `yaml:"speed_step"`
}

type KnifeDef struct {
	Cooldown      float64 `yaml:"cooldown"`
	Damage        int     `yaml:"damage"`
	Range         float64 `yaml:"range"`
	SwingDuration float64 `yaml:"swing_duration"`
	Upgrade       Upgrade `yaml:"upgrade"`
	RangeStep     float64 `yaml:"range_step"`
}

type MagicWandDef struct {
	Cooldown       float64 `yaml:"cooldown"`
	CloudSpeed     float64 `yaml:"cloud_speed"`
	SpeedDecay     float64 `yaml:"speed_decay"`
	Damage         int     `yaml:"damage"`
	Radius         float64 `yaml:"radius"`
	Lifetime       float64 `yaml:"lifetime"`
	DamageInterval float64 `yaml:"damage_interval"`
	Upgrade        Upgrade `yaml:"upgrade"`
	RadiusStep     float64 `yaml:"radius_step"`
}

type LightningWandDef struct {
	Cooldown       float64 `yaml:"cooldown"`
	Speed          float64 `yaml:"speed"`
	Damage         int     `yaml:"damage"`
	Projectiles    int     `yaml:"projectiles"`
	BoltLifetime   float64 `yaml:"bolt_lifetime"`
	Upgrade        Upgrade `yaml:"upgrade"`
	SpeedStep      float64 `yaml:"speed_step"`
	ProjectileStep int     `yaml:"projectile_step"`
}

type BallLightningWandDef struct {
	Cooldown     float64 `yaml:"cooldown"`
	Speed        float64 `yaml:"speed"`
	Damage       int     `yaml:"damage"`
	Bounces      int     `yaml:"bounces"`
	MaxRange     float64 `yaml:"max_range"`
	SearchRadius float64 `yaml:"search_radius"`
	Upgrade      Upgrade `yaml:"upgrade"`
	BounceStep   int     `yaml:"bounce_step"`
}

// WeaponsDef — характеристики всех видов оружия.
type WeaponsDef struct {
	Pistol            PistolDef            `yaml:"pistol"`
	Knife             KnifeDef             `yaml:"knife"`
	MagicWand         MagicWandDef         `yaml:"magic_wand"`
	LightningWand     LightningWandDef     `yaml:"lightning_wand"`
	BallLightningWand BallLightningWandDef `yaml:"ball_lightning_wand"`
}
