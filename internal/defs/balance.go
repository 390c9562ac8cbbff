// internal/defs/balance.go
package defs

// Balance — все числовые параметры игры.
type Balance struct {
	Player     PlayerDef      `yaml:"player"`
	Enemy      EnemyScaling   `yaml:"enemy"`
	Spawn      SpawnDef       `yaml:"spawn"`
	Weapons    WeaponsDef     `yaml:"weapons"`
	Characters []CharacterDef `yaml:"characters"`
	RandomLoot LootTable      `yaml:"random_loot"`
}

// Default возвращает встроенный баланс.
func Default() *Balance {
	return &Balance{
		Player: PlayerDef{
			Size:            50,
			Speed:           5,
			MaxHealth:       100,
			ScoreMultiplier: 100,
			ScorePower:      1.1,
			DamageCooldown:  0.5,
			SpeedStep:       1,
			HealthStep:      20,
		},
		Enemy: EnemyScaling{
			Size:            40,
			BaseSpeed:       2,
			SpeedPerLevel:   0.1,
			BaseHealth:      50,
			HealthPerLevel:  10,
			BaseDamage:      10,
			DamagePerLevel:  2,
			RewardPerHealth: 0.1,
			RewardPerDamage: 0.3,
			RewardPerSpeed:  3,
		},
		Spawn: SpawnDef{
			InitialEnemies: 5,
			BaseChance:     0.01,
			ChancePerLevel: 0.005,
			EdgeOffset:     50,
		},
		Weapons: WeaponsDef{
			Pistol: PistolDef{
				Cooldown:       0.5,
				BulletSpeed:    10,
				Damage:         10,
				BulletLifetime: 2.0,
				Upgrade:        Upgrade{CooldownFactor: 0.9, MinCooldown: 0.1, Damage: 5},
				SpeedStep:      2,
			},
			Knife: KnifeDef{
				Cooldown:      0.3,
				Damage:        10,
				Range:         100,
				SwingDuration: 0.2,
				Upgrade:       Upgrade{CooldownFactor: 0.9, MinCooldown: 0.1, Damage: 10},
				RangeStep:     10,
			},
			MagicWand: MagicWandDef{
				Cooldown:       1.0,
				CloudSpeed:     5,
				SpeedDecay:     2,
				Damage:         10,
				Radius:         100,
				Lifetime:       3.0,
				DamageInterval: 0.1,
				Upgrade:        Upgrade{CooldownFactor: 0.9, MinCooldown: 0.2, Damage: 5},
				RadiusStep:     10,
			},
			LightningWand: LightningWandDef{
				Cooldown:       3.0,
				Speed:          15,
				Damage:         40,
				Projectiles:    2,
				BoltLifetime:   1.5,
				Upgrade:        Upgrade{CooldownFactor: 0.9, MinCooldown: 1.5, Damage: 6},
				SpeedStep:      2,
				ProjectileStep: 1,
			},
			BallLightningWand: BallLightningWandDef{
				Cooldown:     1.4,
				Speed:        10,
				Damage:       40,
				Bounces:      5,
				MaxRange:     800,
				SearchRadius: 300,
				Upgrade:      Upgrade{CooldownFactor: 0.9, MinCooldown: 0.7, Damage: 15},
				BounceStep:   1,
			},
		},
		Characters: []CharacterDef{
			{
				ID: "fat", Name: "Fat", Description: "Slow and sturdy, seasoned pistol",
				Speed: 4, MaxHealth: 150,
				Loadout: []LoadoutEntry{{Weapon: WeaponPistol, Levels: 1}},
			},
			{
				ID: "mage", Name: "Mage", Description: "Magic wand, balanced stats",
				Speed: 5, MaxHealth: 100,
				Loadout: []LoadoutEntry{{Weapon: WeaponMagicWand}},
			},
			{
				ID: "warrior", Name: "Warrior", Description: "Fast, fights with a knife",
				Speed: 6, MaxHealth: 120,
				Loadout: []LoadoutEntry{{Weapon: WeaponKnife}},
			},
			{
				ID: "electromage", Name: "Electromage", Description: "Ball lightning and lightning wand",
				Speed: 5, MaxHealth: 110,
				Loadout: []LoadoutEntry{{Weapon: WeaponBallLightningWand}, {Weapon: WeaponLightningWand}},
			},
		},
		RandomLoot: LootTable{
			LevelDivisor: 2,
			Entries: []LootEntry{
				{Weapon: WeaponMagicWand, Weight: 1},
				{Weapon: WeaponPistol, Weight: 1},
				{Weapon: WeaponKnife, Weight: 1},
				{Weapon: WeaponBallLightningWand, Weight: 1},
				{Weapon: WeaponLightningWand, Weight: 1},
			},
		},
	}
}

// Character ищет персонажа по ID.
func (b *Balance) Character(id string) (CharacterDef, bool) {
	for _, c := range b.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return CharacterDef{}, false
}
