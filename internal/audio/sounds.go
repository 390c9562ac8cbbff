// internal/audio/sounds.go
// Package audio озвучивает игру: декодирует звуки с диска,
// синтезирует недостающие и проигрывает их по событиям.
package audio

import "time"

// Sound — идентификатор короткого эффекта. Совпадает с именем файла без расширения.
type Sound string

const (
	SoundClick           Sound = "click"
	SoundShoot           Sound = "shoot"
	SoundRizz            Sound = "rizz"
	SoundDamageLightning Sound = "damage_lightning"
	SoundDamagePlayer    Sound = "damage_player"
	SoundKill            Sound = "kill"
	SoundHeal            Sound = "heal"
	SoundLevelUp         Sound = "level_up"
	SoundUpgrade         Sound = "upgrade_clicked"
	SoundRandomWeapon    Sound = "random_weapon"
	SoundStatsIncrease   Sound = "stats_increase"
	SoundGameOver        Sound = "game_over"
)

// Track — фоновая музыка. Проигрывается по кругу.
type Track string

const (
	TrackMenu   Track = "menu"
	TrackBattle Track = "battle"
)

// Sounds — все эффекты, которые ищет реестр.
var Sounds = []Sound{
	SoundClick, SoundShoot, SoundRizz, SoundDamageLightning, SoundDamagePlayer,
	SoundKill, SoundHeal, SoundLevelUp, SoundUpgrade, SoundRandomWeapon,
	SoundStatsIncrease, SoundGameOver,
}

// Tracks — вся музыка.
var Tracks = []Track{TrackMenu, TrackBattle}

// Расширения в порядке предпочтения
var extensions = []string{".ogg", ".mp3", ".wav"}

// Параметры синтеза для звуков без файла
type tone struct {
	freq    float64
	glide   float64 // конечная частота, 0 — без скольжения
	wave    WaveType
	length  time.Duration
	attack  time.Duration
	release time.Duration
	volume  float64
}

var tones = map[Sound][]tone{
	SoundClick:           {{freq: 1200, wave: WaveSquare, length: 30 * time.Millisecond, attack: 2 * time.Millisecond, release: 20 * time.Millisecond, volume: 0.3}},
	SoundShoot:           {{freq: 0, wave: WaveNoise, length: 60 * time.Millisecond, attack: 2 * time.Millisecond, release: 50 * time.Millisecond, volume: 0.25}},
	SoundRizz:            {{freq: 300, glide: 900, wave: WaveSaw, length: 180 * time.Millisecond, attack: 10 * time.Millisecond, release: 80 * time.Millisecond, volume: 0.3}},
	SoundDamageLightning: {{freq: 220, glide: 110, wave: WaveSquare, length: 90 * time.Millisecond, attack: 2 * time.Millisecond, release: 60 * time.Millisecond, volume: 0.3}},
	SoundDamagePlayer:    {{freq: 150, glide: 80, wave: WaveSaw, length: 200 * time.Millisecond, attack: 5 * time.Millisecond, release: 150 * time.Millisecond, volume: 0.4}},
	SoundKill:            {{freq: 660, glide: 330, wave: WaveSine, length: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 90 * time.Millisecond, volume: 0.3}},
	SoundHeal: {
		{freq: 523, wave: WaveSine, length: 120 * time.Millisecond, attack: 10 * time.Millisecond, release: 60 * time.Millisecond, volume: 0.35},
		{freq: 784, wave: WaveSine, length: 200 * time.Millisecond, attack: 10 * time.Millisecond, release: 150 * time.Millisecond, volume: 0.35},
	},
	SoundLevelUp: {
		{freq: 523, wave: WaveSine, length: 90 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, volume: 0.4},
		{freq: 659, wave: WaveSine, length: 90 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, volume: 0.4},
		{freq: 1047, wave: WaveSine, length: 250 * time.Millisecond, attack: 5 * time.Millisecond, release: 200 * time.Millisecond, volume: 0.4},
	},
	SoundUpgrade:       {{freq: 880, wave: WaveSine, length: 150 * time.Millisecond, attack: 5 * time.Millisecond, release: 120 * time.Millisecond, volume: 0.35}},
	SoundRandomWeapon:  {{freq: 440, glide: 1320, wave: WaveSquare, length: 300 * time.Millisecond, attack: 10 * time.Millisecond, release: 150 * time.Millisecond, volume: 0.25}},
	SoundStatsIncrease: {{freq: 700, glide: 1000, wave: WaveSine, length: 160 * time.Millisecond, attack: 5 * time.Millisecond, release: 100 * time.Millisecond, volume: 0.35}},
	SoundGameOver: {
		{freq: 392, wave: WaveSaw, length: 300 * time.Millisecond, attack: 10 * time.Millisecond, release: 100 * time.Millisecond, volume: 0.3},
		{freq: 370, wave: WaveSaw, length: 300 * time.Millisecond, attack: 10 * time.Millisecond, release: 100 * time.Millisecond, volume: 0.3},
		{freq: 349, wave: WaveSaw, length: 700 * time.Millisecond, attack: 10 * time.Millisecond, release: 500 * time.Millisecond, volume: 0.3},
	},
}

// Ноты фоновых петель: одна нота на долю
var melodies = map[Track][]float64{
	TrackMenu:   {262, 330, 392, 330, 294, 349, 440, 349},
	TrackBattle: {110, 110, 165, 110, 147, 110, 196, 165},
}

const (
	menuBeat   = 400 * time.Millisecond
	battleBeat = 200 * time.Millisecond
)
