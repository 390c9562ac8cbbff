package weapon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/defs"
	prng "go-survivors/internal/utils"
)

func TestNewBuildsEveryKind(t *testing.T) {
	for _, kind := range defs.AllWeaponKinds {
		t.Run(string(kind), func(t *testing.T) {
			w, err := New(kind, weapons())
			require.NoError(t, err)
			assert.Equal(t, kind, w.Kind())
			assert.Equal(t, 1, w.Level())
			assert.NotEmpty(t, w.Name())
		})
	}
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New("bazooka", weapons())
	assert.Error(t, err)
}

func TestLoadout(t *testing.T) {
	b := defs.Default()

	fat, ok := b.Character("fat")
	require.True(t, ok)
	ws, err := Loadout(fat, &b.Weapons)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, defs.WeaponPistol, ws[0].Kind())
	assert.Equal(t, 2, ws[0].Level())

	electro, ok := b.Character("electromage")
	require.True(t, ok)
	ws, err = Loadout(electro, &b.Weapons)
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, defs.WeaponBallLightningWand, ws[0].Kind())
	assert.Equal(t, defs.WeaponLightningWand, ws[1].Kind())
}

func TestRandomWeaponIsLeveledByPlayerLevel(t *testing.T) {
	b := defs.Default()
	rng := prng.NewPRNGService(7)

	for i := 0; i < 20; i++ {
		w, err := Random(b.RandomLoot, &b.Weapons, rng, 4)
		require.NoError(t, err)
		assert.True(t, w.Kind().Valid())
		assert.Equal(t, 3, w.Level())
	}
}

func TestRandomEmptyTable(t *testing.T) {
	_, err := Random(defs.LootTable{}, weapons(), prng.NewPRNGService(1), 2)
	assert.Error(t, err)
}
