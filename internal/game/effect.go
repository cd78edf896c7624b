package game

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/particle-canvas/internal/config"
)

// Effect is one animation variant: an entity pool plus its physics and
// draw mode. Effects are only touched from the frame pass.
type Effect interface {
	Name() string
	// Layout is the page layout this effect's surface is sized with.
	Layout() config.Layout
	// Spawn discards every entity and respawns the pool for s.
	Spawn(s Surface, rng *rand.Rand)
	// Step advances every entity one tick.
	Step(s Surface, p Pointer)
	// Render paints the current state. It runs after Step in the same frame.
	Render(c Canvas, s Surface)
	Len() int
	// Reset drops all entities.
	Reset()
}

// NewEffect builds the effect named by cfg.Effect. cfg is expected to be
// normalized; an unknown name yields the floating dots.
func NewEffect(cfg config.Config) Effect {
	palette := cfg.Colors()
	if cfg.Effect == config.EffectPixels {
		return newParticleRing(cfg.Particles, palette)
	}
	return newCircleField(cfg.Circles, palette)
}

func withOpacity(palette []color.NRGBA, opacity float64) []color.NRGBA {
	out := make([]color.NRGBA, len(palette))
	for i, c := range palette {
		out[i] = config.WithOpacity(c, opacity)
	}
	return out
}
