// internal/audio/sink.go
package audio

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"

	"go-survivors/pkg/logger"
)

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . Sink

// Sink — устройство вывода звука.
type Sink interface {
	PlaySound(id Sound, volume float64)
	PlayMusic(id Track, volume float64)
	SetMusicVolume(volume float64)
	StopMusic()
}

// EbitenSink проигрывает PCM из реестра через audio.Context.
type EbitenSink struct {
	ctx      *audio.Context
	registry *Registry
	music    *audio.Player
	musicID  Track
}

// NewEbitenSink — контекст должен быть создан с частотой реестра.
func NewEbitenSink(ctx *audio.Context, registry *Registry) *EbitenSink {
	return &EbitenSink{ctx: ctx, registry: registry}
}

func (s *EbitenSink) PlaySound(id Sound, volume float64) {
	pcm, ok := s.registry.Sound(id)
	if !ok {
		logger.Log.WithField("sound", id).Warn("Звук не загружен")
		return
	}
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()
}

// PlayMusic не перезапускает уже играющий трек.
func (s *EbitenSink) PlayMusic(id Track, volume float64) {
	if s.music != nil && s.musicID == id && s.music.IsPlaying() {
		s.music.SetVolume(volume)
		return
	}
	s.StopMusic()

	pcm, ok := s.registry.Track(id)
	if !ok {
		logger.Log.WithField("track", id).Warn("Музыка не загружена")
		return
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := s.ctx.NewPlayer(loop)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"track": id, "error": err}).Error("Не удалось создать плеер музыки")
		return
	}
	p.SetVolume(volume)
	p.Play()
	s.music = p
	s.musicID = id
}

func (s *EbitenSink) SetMusicVolume(volume float64) {
	if s.music != nil {
		s.music.SetVolume(volume)
	}
}

func (s *EbitenSink) StopMusic() {
	if s.music == nil {
		return
	}
	s.music.Pause()
	if err := s.music.Close(); err != nil {
		logger.Log.WithError(err).Warn("Не удалось закрыть плеер музыки")
	}
	s.music = nil
	s.musicID = ""
}
