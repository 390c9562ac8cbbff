// internal/audio/manager.go
package audio

import (
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/pkg/logger"
)

// Manager озвучивает события. Громкость берётся из настроек
// в момент проигрывания, поэтому ползунки действуют сразу.
type Manager struct {
	sink     Sink
	settings *config.Settings
	track    Track
}

func NewManager(sink Sink, settings *config.Settings) *Manager {
	return &Manager{sink: sink, settings: settings}
}

// Subscribe подписывает менеджер на все озвучиваемые события.
func (m *Manager) Subscribe(d *event.Dispatcher) {
	d.Subscribe(m,
		event.WeaponFired, event.LightningHit, event.EnemyKilled,
		event.PlayerDamaged, event.PlayerHealed, event.PlayerLeveledUp,
		event.PlayerDied, event.ButtonClicked, event.UpgradeChosen,
		event.StatIncreased, event.MusicRequested,
	)
}

func (m *Manager) OnEvent(e event.Event) {
	switch e.Type {
	case event.WeaponFired:
		data, _ := e.Data.(event.WeaponFiredData)
		switch data.Weapon {
		case string(defs.WeaponPistol):
			m.play(SoundShoot)
		case string(defs.WeaponLightningWand):
			m.play(SoundRizz)
		}
	case event.LightningHit:
		m.play(SoundDamageLightning)
	case event.EnemyKilled:
		m.play(SoundKill)
	case event.PlayerDamaged:
		m.play(SoundDamagePlayer)
	case event.PlayerHealed:
		m.play(SoundHeal)
	case event.PlayerLeveledUp:
		m.play(SoundLevelUp)
	case event.PlayerDied:
		m.StopMusic()
		m.play(SoundGameOver)
	case event.ButtonClicked:
		m.play(SoundClick)
	case event.UpgradeChosen:
		data, _ := e.Data.(event.UpgradeChosenData)
		if data.Option == "random" {
			m.play(SoundRandomWeapon)
		} else {
			m.play(SoundUpgrade)
		}
	case event.StatIncreased:
		m.play(SoundStatsIncrease)
	case event.MusicRequested:
		data, _ := e.Data.(event.MusicRequestedData)
		if data.Track == "" {
			m.StopMusic()
			return
		}
		m.PlayMusic(Track(data.Track))
	}
}

func (m *Manager) play(id Sound) {
	if m.settings.SFXVolume <= 0 {
		return
	}
	m.sink.PlaySound(id, m.settings.SFXVolume)
}

// PlayMusic — повторный запрос того же трека ничего не делает.
func (m *Manager) PlayMusic(id Track) {
	if m.track == id {
		return
	}
	m.track = id
	logger.Log.WithField("track", id).Debug("Смена музыки")
	m.sink.PlayMusic(id, m.settings.MusicVolume)
}

func (m *Manager) StopMusic() {
	if m.track == "" {
		return
	}
	m.track = ""
	m.sink.StopMusic()
}

// CurrentTrack — пустая строка, если музыка выключена.
func (m *Manager) CurrentTrack() Track {
	return m.track
}

// SetSFXVolume и SetMusicVolume обновляют настройки; музыка меняет громкость на лету.
func (m *Manager) SetSFXVolume(v float64) {
	m.settings.SetSFXVolume(v)
}

func (m *Manager) SetMusicVolume(v float64) {
	m.settings.SetMusicVolume(v)
	m.sink.SetMusicVolume(m.settings.MusicVolume)
}
