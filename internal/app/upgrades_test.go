package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

func newFatSim(t *testing.T) (*Simulation, *recorder) {
	t.Helper()
	b := quietBalance()
	fat, ok := b.Character("fat")
	require.True(t, ok)

	rec := &recorder{}
	d := event.NewDispatcher()
	d.Subscribe(rec, event.UpgradeChosen, event.StatIncreased)
	s, err := NewSimulation(b, fat, utils.NewPRNGService(5), d, 1280, 720)
	require.NoError(t, err)
	return s, rec
}

func kinds(opts []UpgradeOption) []UpgradeKind {
	out := make([]UpgradeKind, len(opts))
	for i, o := range opts {
		out[i] = o.Kind
	}
	return out
}

func TestUpgradeOptionsOddLevel(t *testing.T) {
	s, _ := newFatSim(t)
	opts := s.UpgradeOptions()

	assert.Equal(t, []UpgradeKind{UpgradeWeapon, UpgradeSpeed, UpgradeHealth}, kinds(opts))
	assert.Equal(t, 1, opts[0].Slot)
	assert.Equal(t, "Upgrade Pistol (lvl 2)", opts[0].Label)
}

func TestUpgradeOptionsEvenLevelOffersRandomWeapon(t *testing.T) {
	s, _ := newFatSim(t)
	s.Player().AddScore(150)

	assert.Equal(t, []UpgradeKind{UpgradeWeapon, UpgradeRandomWeapon, UpgradeSpeed, UpgradeHealth},
		kinds(s.UpgradeOptions()))
}

func TestApplyWeaponUpgrade(t *testing.T) {
	s, rec := newFatSim(t)
	require.NoError(t, s.ApplyUpgrade(UpgradeOption{Kind: UpgradeWeapon, Slot: 1}))

	assert.Equal(t, 3, s.Player().Slot(1).Level())
	require.Len(t, rec.got, 1)
	assert.Equal(t, event.UpgradeChosenData{Option: string(defs.WeaponPistol)}, rec.got[0].Data)

	assert.Error(t, s.ApplyUpgrade(UpgradeOption{Kind: UpgradeWeapon, Slot: 4}))
}

func TestApplyRandomWeapon(t *testing.T) {
	s, _ := newFatSim(t)
	s.Player().AddScore(150)
	s.Player().ConsumeLevelUp()

	require.NoError(t, s.ApplyUpgrade(UpgradeOption{Kind: UpgradeRandomWeapon}))
	require.Equal(t, 2, s.Player().SlotCount())
	// уровень 2: оружие улучшено 2/2 = 1 раз
	assert.Equal(t, 2, s.Player().Slot(2).Level())
}

func TestApplyStatUpgrades(t *testing.T) {
	s, rec := newFatSim(t)
	require.NoError(t, s.ApplyUpgrade(UpgradeOption{Kind: UpgradeSpeed}))
	require.NoError(t, s.ApplyUpgrade(UpgradeOption{Kind: UpgradeHealth}))

	assert.Equal(t, 5.0, s.Player().Speed)
	assert.Equal(t, 170, s.Player().Health.Max)
	assert.Equal(t, 170, s.Player().Health.Current)
	assert.Equal(t, 2, len(rec.got))
	assert.Equal(t, event.StatIncreasedData{Stat: "speed"}, rec.got[0].Data)
	assert.Equal(t, event.StatIncreasedData{Stat: "health"}, rec.got[1].Data)
}

func TestApplyUnknownUpgrade(t *testing.T) {
	s, _ := newFatSim(t)
	assert.Error(t, s.ApplyUpgrade(UpgradeOption{Kind: UpgradeKind(42)}))
}
