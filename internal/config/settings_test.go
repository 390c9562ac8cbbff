package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestSettingsFromEnv(t *testing.T) {
	s, err := settingsFrom(env(map[string]string{
		"SURVIVORS_SEED":    "1234",
		"SURVIVORS_BALANCE": "",
		"SURVIVORS_ASSETS":  "/tmp/sfx",
		"SURVIVORS_FONT":    "/tmp/ui.ttf",
	}))
	require.NoError(t, err)

	assert.Equal(t, int64(1234), s.Seed)
	assert.Empty(t, s.BalancePath, "пустой путь отключает файл баланса")
	assert.Equal(t, "/tmp/sfx", s.AssetsDir)
	assert.Equal(t, "/tmp/ui.ttf", s.FontPath)
	assert.Equal(t, DefaultSFXVolume, s.SFXVolume)
}

func TestSettingsDefaults(t *testing.T) {
	s, err := settingsFrom(env(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsBadSeed(t *testing.T) {
	_, err := settingsFrom(env(map[string]string{"SURVIVORS_SEED": "abc"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SURVIVORS_SEED")
}

func TestVolumeClamp(t *testing.T) {
	s := DefaultSettings()
	s.SetSFXVolume(1.7)
	s.SetMusicVolume(-0.2)
	assert.Equal(t, 1.0, s.SFXVolume)
	assert.Equal(t, 0.0, s.MusicVolume)
}
