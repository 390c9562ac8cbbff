package entity

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/defs"
	"go-survivors/pkg/utils"
)

// stubWeapon — минимальное оружие для проверки слотов.
type stubWeapon struct {
	name   string
	levels int
}

func (w *stubWeapon) Kind() defs.WeaponKind    { return defs.WeaponPistol }
func (w *stubWeapon) Name() string             { return w.name }
func (w *stubWeapon) Level() int               { return w.levels + 1 }
func (w *stubWeapon) Update(float64, *Arena)   {}
func (w *stubWeapon) AttemptFire(*Arena) bool  { return false }
func (w *stubWeapon) Draw(*ebiten.Image, View) {}
func (w *stubWeapon) LevelUp()                 { w.levels++ }

func TestPlayerSteerNormalizes(t *testing.T) {
	p := NewPlayer(defs.Default().Player)

	tests := []struct {
		name                  string
		up, down, left, right bool
		wantLen               float64
	}{
		{"idle", false, false, false, false, 0},
		{"up", true, false, false, false, 1},
		{"diagonal", true, false, false, true, 1},
		{"opposite cancel", true, true, false, false, 0},
		{"three keys", true, true, true, false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.Steer(tt.up, tt.down, tt.left, tt.right)
			assert.InDelta(t, tt.wantLen, p.Direction.Len(), 1e-9)
		})
	}

	p.Steer(false, false, false, true)
	assert.Equal(t, utils.V(5, 0), p.Step())
}

func TestPlayerLevelUpOnce(t *testing.T) {
	p := NewPlayer(defs.Default().Player)
	require.InDelta(t, 100.0, p.RequiredForLevelUp(), 1e-9)

	assert.True(t, p.AddScore(150))
	assert.Equal(t, 2, p.Level())
	assert.Zero(t, p.Score())
	assert.True(t, p.JustLeveledUp())

	assert.True(t, p.ConsumeLevelUp())
	assert.False(t, p.JustLeveledUp())
	assert.False(t, p.ConsumeLevelUp())
}

func TestPlayerStatUpgrades(t *testing.T) {
	p := NewPlayer(defs.Default().Player)
	p.TakeDamage(30)

	p.IncreaseHealth()
	assert.Equal(t, 120, p.Health.Max)
	assert.Equal(t, 90, p.Health.Current)

	p.IncreaseSpeed()
	assert.Equal(t, 6.0, p.Speed)

	assert.True(t, p.TakeDamage(500))
	assert.Equal(t, 0, p.Health.Current)
}

func TestPlayerSlotsStayContiguous(t *testing.T) {
	p := NewPlayer(defs.Default().Player)
	a, b := &stubWeapon{name: "a"}, &stubWeapon{name: "b"}

	assert.Equal(t, 1, p.Equip(a))
	assert.False(t, p.SetSlot(3, b), "слот 3 при одном оружии создал бы дыру")
	assert.True(t, p.SetSlot(2, b))
	assert.Equal(t, 2, p.SlotCount())

	assert.True(t, p.SetSlot(1, nil))
	assert.Nil(t, p.Slot(1))
	assert.Equal(t, b, p.Slot(2))
	assert.Nil(t, p.Slot(9))

	ws := p.Weapons()
	ws[1] = nil
	assert.NotNil(t, p.Slot(2), "Weapons возвращает копию")
}
