// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	WindowTitle  = "Survivors"
	MaxDeltaTime = 0.06

	// Звук
	AudioSampleRate    = 48000
	DefaultSFXVolume   = 0.5
	DefaultMusicVolume = 0.5

	// Главное меню: фиктивная полоса загрузки перед выбором персонажа
	MenuLoadingDuration = 0.7

	// Кнопки
	ButtonWidth   = 200
	ButtonHeight  = 50
	ButtonSpacing = 60

	// Вспышка врага при попадании
	DamageFlashDuration = 0.12

	// Полоса опыта над игроком
	ScoreBarWidth  = 100
	ScoreBarHeight = 10

	// Нож
	KnifeLength       = 40
	KnifeWidth        = 10
	KnifeHandleLength = 10

	// Шаг сетки пола
	GridStep = 64
)

var (
	BackgroundColor = color.RGBA{20, 20, 20, 255}
	MenuBackground  = color.RGBA{0, 0, 0, 255}
	GridColor       = color.RGBA{32, 32, 32, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 150}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 150, 255}
	ActiveSlotColor = color.RGBA{120, 220, 120, 255}

	PlayerColor      = color.RGBA{0, 128, 255, 255}
	DamageFlashColor = color.RGBA{255, 255, 255, 255}
	BulletColor      = color.RGBA{255, 255, 0, 255}
	LightningColor   = color.RGBA{100, 150, 255, 255}
	BallGlowColor    = color.RGBA{100, 150, 255, 100}
	BallCoreColor    = color.RGBA{200, 230, 255, 230}
	CloudColor       = color.RGBA{100, 100, 255, 180}
	KnifeColor       = color.RGBA{200, 200, 200, 255}
	KnifeHandleColor = color.RGBA{139, 69, 19, 255}

	ScoreBarBackground = color.RGBA{50, 50, 50, 255}
	ScoreBarFill       = color.RGBA{0, 200, 255, 255}
	HealthBarFill      = color.RGBA{200, 50, 50, 255}
	BorderColor        = color.RGBA{100, 100, 100, 255}

	// Кнопки: фон и цвет наведения
	ButtonGreen  = color.RGBA{50, 100, 50, 255}
	ButtonBlue   = color.RGBA{50, 50, 100, 255}
	ButtonRed    = color.RGBA{100, 50, 50, 255}
	ButtonPurple = color.RGBA{120, 50, 100, 255}
	ButtonGray   = color.RGBA{100, 100, 100, 255}
)
