// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны генератора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator генерирует волну с линейным скольжением частоты
type oscillator struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator — генератор на заданную длительность. to == 0 — без скольжения.
func NewOscillator(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	if to == 0 {
		to = from
	}
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope — упрощённая огибающая: только атака и затухание
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume — громкость в линейной шкале. Log2(0) = -Inf, поэтому 0 — тишина.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// synthSound — последовательность тонов эффекта.
func synthSound(id Sound, rate beep.SampleRate) []byte {
	parts := tones[id]
	if len(parts) == 0 {
		return nil
	}
	seq := make([]beep.Streamer, 0, len(parts))
	for _, t := range parts {
		osc := NewOscillator(t.freq, t.glide, t.length, t.wave, rate)
		seq = append(seq, newVolume(NewEnvelope(osc, t.length, t.attack, t.release, rate), t.volume))
	}
	return renderPCM(beep.Seq(seq...))
}

// synthTrack — одна петля мелодии с басом октавой ниже.
func synthTrack(id Track, rate beep.SampleRate) []byte {
	notes := melodies[id]
	if len(notes) == 0 {
		return nil
	}
	beat := menuBeat
	if id == TrackBattle {
		beat = battleBeat
	}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		lead := NewEnvelope(NewOscillator(f, 0, beat, WaveSine, rate), beat, 10*time.Millisecond, beat/2, rate)
		bass := NewEnvelope(NewOscillator(f/2, 0, beat, WaveSquare, rate), beat, 10*time.Millisecond, beat/3, rate)
		// Mix сам не заканчивается, длину задаёт Take
		note := beep.Take(rate.N(beat), beep.Mix(newVolume(lead, 0.2), newVolume(bass, 0.06)))
		seq = append(seq, note)
	}
	return renderPCM(beep.Seq(seq...))
}

// renderPCM сводит поток в 16-битный стерео PCM (little endian).
func renderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(smp[0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(smp[1])))
			out = append(out, frame...)
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
