// internal/config/settings.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Settings — параметры запуска и пользовательские настройки.
// Громкости меняются на экране настроек и читаются звуковой системой.
type Settings struct {
	SFXVolume   float64
	MusicVolume float64
	Seed        int64  // 0 — сид по времени
	BalancePath string // YAML с балансом
	AssetsDir   string // каталог со звуками
	FontPath    string // TTF интерфейса; без файла берётся встроенный
}

// DefaultSettings — значения по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		SFXVolume:   DefaultSFXVolume,
		MusicVolume: DefaultMusicVolume,
		BalancePath: "assets/data/balance.yaml",
		AssetsDir:   "assets/sounds",
		FontPath:    "assets/fonts/ui.ttf",
	}
}

// SettingsFromEnv читает настройки из окружения:
// SURVIVORS_SEED, SURVIVORS_BALANCE, SURVIVORS_ASSETS, SURVIVORS_FONT.
func SettingsFromEnv() (Settings, error) {
	return settingsFrom(os.LookupEnv)
}

func settingsFrom(lookup func(string) (string, bool)) (Settings, error) {
	s := DefaultSettings()
	if v, ok := lookup("SURVIVORS_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("invalid SURVIVORS_SEED %q: %w", v, err)
		}
		s.Seed = seed
	}
	if v, ok := lookup("SURVIVORS_BALANCE"); ok {
		s.BalancePath = v
	}
	if v, ok := lookup("SURVIVORS_ASSETS"); ok && v != "" {
		s.AssetsDir = v
	}
	if v, ok := lookup("SURVIVORS_FONT"); ok {
		s.FontPath = v
	}
	return s, nil
}

// SetSFXVolume и SetMusicVolume держат громкость в [0, 1].
func (s *Settings) SetSFXVolume(v float64) {
	s.SFXVolume = clamp01(v)
}

func (s *Settings) SetMusicVolume(v float64) {
	s.MusicVolume = clamp01(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
