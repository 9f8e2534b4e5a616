// Package audio plays short procedural sound effects for game events
// through a beep mixer.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const sampleRate = beep.SampleRate(44100)

// Output is where the player's mixer ends up. The default is the system
// speaker.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

// Player turns game events into sounds. A player that is disabled or failed
// to initialise stays silent.
type Player struct {
	mu          sync.Mutex
	out         Output
	mixer       *beep.Mixer
	gain        float64
	enabled     bool
	initialized bool
	closed      bool
	logger      *log.Logger
}

// NewPlayer creates a player writing to the system speaker.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	return NewPlayerWithOutput(cfg, speakerOutput{}, logger)
}

// NewPlayerWithOutput creates a player writing to out.
func NewPlayerWithOutput(cfg config.AudioConfig, out Output, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		out:     out,
		mixer:   &beep.Mixer{},
		gain:    cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Init opens the audio device. On failure the player stays muted and the
// error is returned for logging; the game runs regardless.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initLocked()
}

func (p *Player) initLocked() error {
	if !p.enabled || p.initialized || p.closed {
		return nil
	}

	if err := p.out.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, continuing muted", "error", err)
		return err
	}
	p.out.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether sounds will be heard.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.initialized
}

// Muted reports whether output was switched off by the user or config.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.enabled
}

// SetMuted toggles output without releasing the device. Unmuting a player
// that started disabled opens the device; if that fails it stays silent.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !muted
	if !muted {
		//nolint:errcheck // initLocked logs the failure
		p.initLocked()
	}
}

// Play mixes one sound in.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.initialized {
		return
	}
	p.out.Lock()
	p.mixer.Add(Tone(sampleRate, s, p.gain))
	p.out.Unlock()
}

// OnEvent implements snake.Observer.
func (p *Player) OnEvent(e snake.Event) {
	switch ev := e.(type) {
	case snake.StartedEvent, snake.ResumedEvent:
		p.Play(SoundStart)
	case snake.PausedEvent:
		p.Play(SoundPause)
	case snake.FoodEatenEvent:
		p.Play(SoundEat)
	case snake.GameOverEvent:
		if ev.Won {
			p.Play(SoundWin)
		} else {
			p.Play(SoundGameOver)
		}
	}
}

// Close silences anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		p.closed = true
		return
	}
	p.out.Lock()
	p.mixer.Clear()
	p.out.Unlock()
	p.initialized = false
	p.closed = true
}

// Pending returns the number of sounds still in the mixer.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out.Lock()
	defer p.out.Unlock()
	return p.mixer.Len()
}
