// internal/audio/registry.go
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"go-survivors/pkg/logger"
)

// Сколько файлов декодируется одновременно
const decodeWorkers = 4

// Registry хранит звуки уже декодированными в PCM:
// 16 бит, стерео, little endian, частота rate.
type Registry struct {
	rate   int
	mu     sync.RWMutex
	sounds map[Sound][]byte
	tracks map[Track][]byte
}

func NewRegistry(rate int) *Registry {
	return &Registry{
		rate:   rate,
		sounds: make(map[Sound][]byte),
		tracks: make(map[Track][]byte),
	}
}

// Load декодирует каталог параллельно. Звуки без файла синтезируются,
// битый файл прерывает загрузку.
func (r *Registry) Load(ctx context.Context, dir string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(decodeWorkers)

	for _, id := range Sounds {
		g.Go(func() error {
			pcm, err := r.loadOrSynth(ctx, dir, string(id), func() []byte {
				return synthSound(id, beep.SampleRate(r.rate))
			})
			if err != nil {
				return err
			}
			r.mu.Lock()
			r.sounds[id] = pcm
			r.mu.Unlock()
			return nil
		})
	}
	for _, id := range Tracks {
		g.Go(func() error {
			pcm, err := r.loadOrSynth(ctx, dir, string(id), func() []byte {
				return synthTrack(id, beep.SampleRate(r.rate))
			})
			if err != nil {
				return err
			}
			r.mu.Lock()
			r.tracks[id] = pcm
			r.mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load sounds from %s: %w", dir, err)
	}
	logger.Log.WithFields(logrus.Fields{
		"dir":    dir,
		"sounds": len(r.sounds),
		"tracks": len(r.tracks),
	}).Info("Звуки загружены")
	return nil
}

func (r *Registry) loadOrSynth(ctx context.Context, dir, name string, synth func() []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		pcm, err := decode(ext, data, r.rate)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		logger.Log.WithField("file", path).Debug("Звук декодирован")
		return pcm, nil
	}
	logger.Log.WithField("sound", name).Warn("Файл не найден, звук синтезирован")
	return synth(), nil
}

func decode(ext string, data []byte, rate int) ([]byte, error) {
	src := bytes.NewReader(data)
	var (
		stream io.Reader
		err    error
	)
	switch ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(rate, src)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(rate, src)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(rate, src)
	default:
		return nil, fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// Sound — PCM эффекта.
func (r *Registry) Sound(id Sound) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pcm, ok := r.sounds[id]
	return pcm, ok
}

// Track — PCM одной петли музыки.
func (r *Registry) Track(id Track) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pcm, ok := r.tracks[id]
	return pcm, ok
}

// SampleRate — частота, под которую декодированы звуки.
func (r *Registry) SampleRate() int {
	return r.rate
}
