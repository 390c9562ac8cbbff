// internal/defs/types.go
package defs

// WeaponKind — идентификатор типа оружия.
type WeaponKind string

const (
	WeaponPistol            WeaponKind = "pistol"
	WeaponKnife             WeaponKind = "knife"
	WeaponMagicWand         WeaponKind = "magic_wand"
	WeaponLightningWand     WeaponKind = "lightning_wand"
	WeaponBallLightningWand WeaponKind = "ball_lightning_wand"
)

// AllWeaponKinds перечисляет все виды оружия в порядке экрана выбора.
var AllWeaponKinds = []WeaponKind{
	WeaponMagicWand,
	WeaponPistol,
	WeaponKnife,
	WeaponBallLightningWand,
	WeaponLightningWand,
}

// Valid сообщает, известен ли такой тип оружия.
func (k WeaponKind) Valid() bool {
	for _, known := range AllWeaponKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Upgrade — общая часть правила улучшения: кулдаун умножается на
// CooldownFactor, но не опускается ниже MinCooldown; урон растёт на Damage.
type Upgrade struct {
	CooldownFactor float64 `yaml:"cooldown_factor"`
	MinCooldown    float64 `yaml:"min_cooldown"`
	Damage         int     `yaml:"damage"`
}
