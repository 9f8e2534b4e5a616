// Package effects draws the decorative particle bursts shown when the snake
// eats. It listens to game events and never feeds anything back into the
// simulation.
package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Particle is a spark in grid coordinates. Integer positions are cell
// centres.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // Ticks left
	Max    int
}

// Fading reports whether the particle is in the second half of its life.
func (p Particle) Fading() bool {
	return p.Life*2 <= p.Max
}

// System owns the live particles.
type System struct {
	rng       *rand.Rand
	enabled   bool
	count     int
	lifetime  int
	tileCount int
	particles []Particle
}

// New creates a particle system for a board of tileCount cells per side.
func New(cfg config.ParticleConfig, tileCount int, seed int64) *System {
	return &System{
		rng:       rand.New(rand.NewSource(seed)),
		enabled:   cfg.Enabled,
		count:     max(cfg.Count, 0),
		lifetime:  max(cfg.Lifetime, 1),
		tileCount: tileCount,
	}
}

// OnEvent implements snake.Observer.
func (s *System) OnEvent(e snake.Event) {
	switch ev := e.(type) {
	case snake.FoodEatenEvent:
		s.Burst(ev.At)
	case snake.TickEvent:
		s.Step()
	case snake.ResetEvent:
		s.Clear()
	}
}

// Burst spawns particles radiating from the centre of cell at.
func (s *System) Burst(at snake.Point) {
	if !s.enabled {
		return
	}
	for range s.count {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 0.3 + s.rng.Float64()*0.6
		life := s.lifetime - s.rng.Intn(s.lifetime/2+1)
		s.particles = append(s.particles, Particle{
			X:    float64(at.X),
			Y:    float64(at.Y),
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: max(life, 1),
			Max:  max(life, 1),
		})
	}
}

// Step ages every particle by one tick and drops the dead ones.
func (s *System) Step() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= 0.85
		p.VY *= 0.85
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}

// Clear removes every particle.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns a copy of the live particles.
func (s *System) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Draw paints the particles onto scr. board is the screen area of the play
// field and cellW the number of columns per tile. Particles that drift off
// the board are not drawn; they do not wrap.
func (s *System) Draw(scr *core.Screen, board core.Rect, cellW int) {
	for _, p := range s.particles {
		cx := int(math.Round(p.X))
		cy := int(math.Round(p.Y))
		if cx < 0 || cy < 0 || cx >= s.tileCount || cy >= s.tileCount {
			continue
		}

		r, c := '*', core.ColorParticle
		if p.Fading() {
			r, c = '·', core.ColorParticleFade
		}
		x := board.X + cx*cellW
		y := board.Y + cy
		// Never cover the snake or food, which are drawn first.
		if scr.Get(x, y) != ' ' {
			continue
		}
		scr.SetCell(x, y, r, c)
	}
}
