package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator is a sine tone gliding from one frequency to another with
// an exponential decay. It ends after its duration.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	gain     float64
	pos      int
	samples  int
	phase    float64
}

// NewSweepGenerator creates a tone of length d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, gain float64) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		gain:    gain,
		samples: max(sr.N(d), 1),
	}
}

// Stream implements beep.Streamer.
func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the glide click-free.
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := math.Exp(-4 * progress)
		v := math.Sin(g.phase) * envelope * g.gain

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *SweepGenerator) Err() error {
	return nil
}

// Sound names one game sound effect.
type Sound int

const (
	SoundStart Sound = iota
	SoundPause
	SoundEat
	SoundGameOver
	SoundWin
)

func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundPause:
		return "pause"
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game_over"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

// Tone builds the streamer for a sound at the given gain.
func Tone(sr beep.SampleRate, s Sound, gain float64) beep.Streamer {
	switch s {
	case SoundStart:
		return NewSweepGenerator(sr, 440, 660, 80*time.Millisecond, gain)
	case SoundPause:
		return NewSweepGenerator(sr, 330, 330, 60*time.Millisecond, gain)
	case SoundEat:
		return NewSweepGenerator(sr, 600, 1200, 70*time.Millisecond, gain)
	case SoundGameOver:
		return NewSweepGenerator(sr, 400, 90, 450*time.Millisecond, gain)
	case SoundWin:
		return beep.Seq(
			NewSweepGenerator(sr, 523, 523, 120*time.Millisecond, gain),
			NewSweepGenerator(sr, 659, 659, 120*time.Millisecond, gain),
			NewSweepGenerator(sr, 784, 1046, 300*time.Millisecond, gain),
		)
	default:
		return beep.Silence(0)
	}
}
