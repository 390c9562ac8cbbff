// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load читает YAML-файл баланса. Поля, которых нет в файле, берутся
// из Default(); списки (персонажи, таблица случайного оружия) заменяются
// целиком.
func Load(path string) (*Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML поверх значений по умолчанию и проверяет результат.
func Parse(data []byte) (*Balance, error) {
	b := Default()
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("failed to parse balance YAML: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance: %w", err)
	}
	return b, nil
}

// LoadOrDefault ведёт себя как Load, но отсутствующий файл не ошибка:
// возвращается встроенный баланс и found=false.
func LoadOrDefault(path string) (b *Balance, found bool, err error) {
	if path == "" {
		return Default(), false, nil
	}
	b, err = Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Validate проверяет целостность и допустимость значений.
func (b *Balance) Validate() error {
	p := b.Player
	if p.Speed < 0 || p.Size <= 0 {
		return fmt.Errorf("player: speed must be >= 0 and size > 0")
	}
	if p.MaxHealth <= 0 {
		return fmt.Errorf("player: max_health must be positive, got %d", p.MaxHealth)
	}
	if p.ScoreMultiplier <= 0 || p.ScorePower <= 0 {
		return fmt.Errorf("player: score_multiplier and score_power must be positive")
	}
	if p.DamageCooldown < 0 {
		return fmt.Errorf("player: damage_cooldown cannot be negative")
	}

	e := b.Enemy
	if e.Size <= 0 || e.BaseSpeed < 0 || e.BaseHealth <= 0 || e.BaseDamage < 0 {
		return fmt.Errorf("enemy: size, base_speed, base_health and base_damage must be sane")
	}

	s := b.Spawn
	if s.InitialEnemies < 0 {
		return fmt.Errorf("spawn: initial_enemies cannot be negative, got %d", s.InitialEnemies)
	}
	if s.BaseChance < 0 || s.BaseChance > 1 || s.ChancePerLevel < 0 {
		return fmt.Errorf("spawn: chances must lie in [0, 1]")
	}

	if err := b.Weapons.validate(); err != nil {
		return fmt.Errorf("weapons: %w", err)
	}

	if len(b.Characters) == 0 {
		return fmt.Errorf("at least one character is required")
	}
	seen := make(map[string]bool, len(b.Characters))
	for _, c := range b.Characters {
		if c.ID == "" {
			return fmt.Errorf("character %q: id is required", c.Name)
		}
		if seen[c.ID] {
			return fmt.Errorf("character %s: duplicate id", c.ID)
		}
		seen[c.ID] = true
		if c.MaxHealth <= 0 {
			return fmt.Errorf("character %s: max_health must be positive, got %d", c.ID, c.MaxHealth)
		}
		if len(c.Loadout) == 0 {
			return fmt.Errorf("character %s: loadout cannot be empty", c.ID)
		}
		for _, l := range c.Loadout {
			if !l.Weapon.Valid() {
				return fmt.Errorf("character %s: unknown weapon %q", c.ID, l.Weapon)
			}
			if l.Levels < 0 {
				return fmt.Errorf("character %s: levels cannot be negative", c.ID)
			}
		}
	}

	for _, entry := range b.RandomLoot.Entries {
		if !entry.Weapon.Valid() {
			return fmt.Errorf("random_loot: unknown weapon %q", entry.Weapon)
		}
		if entry.Weight < 0 {
			return fmt.Errorf("random_loot: weight of %s cannot be negative", entry.Weapon)
		}
	}
	return nil
}

func (w WeaponsDef) validate() error {
	checks := []struct {
		name     string
		cooldown float64
		damage   int
		up       Upgrade
	}{
		{"pistol", w.Pistol.Cooldown, w.Pistol.Damage, w.Pistol.Upgrade},
		{"knife", w.Knife.Cooldown, w.Knife.Damage, w.Knife.Upgrade},
		{"magic_wand", w.MagicWand.Cooldown, w.MagicWand.Damage, w.MagicWand.Upgrade},
		{"lightning_wand", w.LightningWand.Cooldown, w.LightningWand.Damage, w.LightningWand.Upgrade},
		{"ball_lightning_wand", w.BallLightningWand.Cooldown, w.BallLightningWand.Damage, w.BallLightningWand.Upgrade},
	}
	for _, c := range checks {
		if c.cooldown < 0 {
			return fmt.Errorf("%s: cooldown cannot be negative", c.name)
		}
		if c.damage < 0 {
			return fmt.Errorf("%s: damage cannot be negative", c.name)
		}
		if c.up.CooldownFactor <= 0 || c.up.CooldownFactor > 1 {
			return fmt.Errorf("%s: upgrade.cooldown_factor must be in (0, 1], got %v", c.name, c.up.CooldownFactor)
		}
	}
	if w.MagicWand.Lifetime <= 0 || w.MagicWand.DamageInterval <= 0 {
		return fmt.Errorf("magic_wand: lifetime and damage_interval must be positive")
	}
	if w.LightningWand.Projectiles < 1 {
		return fmt.Errorf("lightning_wand: projectiles must be at least 1")
	}
	if w.BallLightningWand.Bounces < 1 || w.BallLightningWand.MaxRange <= 0 {
		return fmt.Errorf("ball_lightning_wand: bounces and max_range must be positive")
	}
	if w.Knife.SwingDuration <= 0 {
		return fmt.Errorf("knife: swing_duration must be positive")
	}
	return nil
}
