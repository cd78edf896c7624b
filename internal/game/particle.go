package game

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/particle-canvas/internal/config"
)

// Particle orbits its own lagging follower of the pointer (LastMouse) and
// leaves a segment from LastPoint to Pos behind it.
type Particle struct {
	Pos       Point
	LastPoint Point
	LastMouse Point
	Radians   float64
	Radius    float64
	Color     color.NRGBA

	velocity float64
	distance float64
}

func newParticle(at Point, radius, velocity, distance, radians float64, clr color.NRGBA) Particle {
	return Particle{
		Pos:       at,
		LastPoint: at,
		LastMouse: at,
		Radians:   radians,
		Radius:    radius,
		Color:     clr,
		velocity:  velocity,
		distance:  distance,
	}
}

// Velocity is the fixed angular speed in radians per tick.
func (p *Particle) Velocity() float64 { return p.velocity }

// DistanceFromCenter is the fixed orbit radius.
func (p *Particle) DistanceFromCenter() float64 { return p.distance }

// Step eases LastMouse toward target by followRate and advances the orbit.
func (p *Particle) Step(followRate float64, target Point) {
	p.LastPoint = p.Pos
	p.LastMouse.X += (target.X - p.LastMouse.X) * followRate
	p.LastMouse.Y += (target.Y - p.LastMouse.Y) * followRate
	p.Radians += p.velocity
	p.Pos = Point{
		X: p.LastMouse.X + math.Cos(p.Radians)*p.distance,
		Y: p.LastMouse.Y + math.Sin(p.Radians)*p.distance,
	}
}

type particleRing struct {
	cfg       config.Particles
	palette   []color.NRGBA
	fade      color.NRGBA
	particles []Particle
}

func newParticleRing(cfg config.Particles, palette []color.NRGBA) *particleRing {
	fade, err := config.ParseColor(cfg.TrailFade)
	if err != nil {
		fade, _ = config.ParseColor(config.ParticleTrailFade)
	}
	return &particleRing{
		cfg:     cfg,
		palette: palette,
		fade:    fade,
	}
}

func (r *particleRing) Name() string          { return config.EffectPixels }
func (r *particleRing) Layout() config.Layout { return r.cfg.Layout }
func (r *particleRing) Len() int              { return len(r.particles) }
func (r *particleRing) Reset()                { r.particles = nil }

func (r *particleRing) Spawn(s Surface, rng *rand.Rand) {
	center := s.Center()
	r.particles = make([]Particle, r.cfg.Count)
	for i := range r.particles {
		r.particles[i] = newParticle(
			center,
			jitter(rng, r.cfg.RadiusJitterMin, r.cfg.RadiusJitterBase),
			jitter(rng, r.cfg.VelocityJitter, r.cfg.VelocityBase),
			jitter(rng, r.cfg.DistanceJitter, r.cfg.DistanceBase),
			rng.Float64()*2*math.Pi,
			pick(rng, r.palette),
		)
	}
}

// Step chases the pointer, or the surface centre until one has been seen.
func (r *particleRing) Step(s Surface, p Pointer) {
	target := s.Center()
	if p.Present {
		target = p.Point
	}
	for i := range r.particles {
		r.particles[i].Step(r.cfg.FollowRate, target)
	}
}

// Render fades the previous frame with a translucent overlay instead of
// clearing it, then strokes each particle's latest segment.
func (r *particleRing) Render(c Canvas, s Surface) {
	c.FillRect(0, 0, s.Width, s.Height, r.fade)
	for i := range r.particles {
		p := &r.particles[i]
		c.StrokeLine(p.LastPoint.X, p.LastPoint.Y, p.Pos.X, p.Pos.Y, p.Radius, p.Color)
	}
}
