package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestEnemyScalingAndReward(t *testing.T) {
	s := Default().Enemy

	st := s.StatsForLevel(1)
	assert.InDelta(t, 2.2, st.Speed, 1e-12)
	assert.Equal(t, 60, st.MaxHealth)
	assert.Equal(t, 12, st.Damage)

	reward := s.Reward(EnemyStats{Speed: 2, MaxHealth: 60, Damage: 12})
	assert.InDelta(t, 15.6, reward, 1e-9)
}

func TestSpawnChance(t *testing.T) {
	s := Default().Spawn
	assert.InDelta(t, 0.01, s.ChanceForLevel(1), 1e-12)
	assert.InDelta(t, 0.03, s.ChanceForLevel(5), 1e-12)
}

func TestLootTable(t *testing.T) {
	lt := Default().RandomLoot
	assert.False(t, lt.Offered(3))
	assert.True(t, lt.Offered(4))
	assert.Equal(t, 2, lt.BonusLevels(4))
	assert.Equal(t, []int{1, 1, 1, 1, 1}, lt.Weights())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		check   func(t *testing.T, b *Balance)
	}{
		{
			name: "partial override keeps defaults",
			yaml: `
player:
  speed: 7
weapons:
  pistol:
    damage: 25
`,
			check: func(t *testing.T, b *Balance) {
				assert.Equal(t, 7.0, b.Player.Speed)
				assert.Equal(t, 100, b.Player.MaxHealth)
				assert.Equal(t, 25, b.Weapons.Pistol.Damage)
				assert.Equal(t, 0.5, b.Weapons.Pistol.Cooldown)
				assert.Len(t, b.Characters, 4)
			},
		},
		{
			name: "characters replaced",
			yaml: `
characters:
  - id: tank
    name: Tank
    speed: 3
    max_health: 300
    loadout:
      - weapon: knife
        levels: 2
`,
			check: func(t *testing.T, b *Balance) {
				require.Len(t, b.Characters, 1)
				c, ok := b.Character("tank")
				require.True(t, ok)
				assert.Equal(t, WeaponKnife, c.Loadout[0].Weapon)
				assert.Equal(t, 2, c.Loadout[0].Levels)
			},
		},
		{
			name:    "unknown weapon",
			yaml:    "characters:\n  - id: x\n    max_health: 1\n    loadout:\n      - weapon: bazooka\n",
			wantErr: "unknown weapon",
		},
		{
			name:    "negative spawn",
			yaml:    "spawn:\n  initial_enemies: -1\n",
			wantErr: "initial_enemies",
		},
		{
			name:    "bad cooldown factor",
			yaml:    "weapons:\n  knife:\n    upgrade:\n      cooldown_factor: 1.5\n",
			wantErr: "cooldown_factor",
		},
		{
			name:    "broken yaml",
			yaml:    "player: [",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "balance.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			b, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, b)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	b, found, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Default(), b)

	b, found, err = LoadOrDefault("")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NotNil(t, b)
}

func TestShippedBalanceFileLoads(t *testing.T) {
	b, err := Load(filepath.Join("..", "..", "assets", "data", "balance.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), b)
}
