package game

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/particle-canvas/internal/config"
)

// Circle is one floating dot. MinRadius is its spawn radius; it never
// shrinks below it.
type Circle struct {
	X, Y      float64
	DX, DY    float64
	Radius    float64
	MinRadius float64
	Color     color.NRGBA
}

// spawnCircle places a circle at least one radius away from every edge.
func spawnCircle(cfg config.Circles, s Surface, rng *rand.Rand, palette []color.NRGBA) Circle {
	radius := math.Min(jitter(rng, cfg.RadiusJitterMin, cfg.RadiusJitterBase), cfg.MaxRadius)
	return Circle{
		X:         jitter(rng, s.Width-2*radius, radius),
		Y:         jitter(rng, s.Height-2*radius, radius),
		DX:        jitter(rng, 2*cfg.VelocityRange, -cfg.VelocityRange),
		DY:        jitter(rng, 2*cfg.VelocityRange, -cfg.VelocityRange),
		Radius:    radius,
		MinRadius: radius,
		Color:     pick(rng, palette),
	}
}

// Step bounces off the surface edges, moves, then grows while inside the
// pointer's proximity box and shrinks back otherwise.
func (c *Circle) Step(cfg config.Circles, s Surface, p Pointer) {
	if c.X+c.Radius > s.Width || c.X-c.Radius < 0 {
		c.DX = -c.DX
	}
	if c.Y+c.Radius > s.Height || c.Y-c.Radius < 0 {
		c.DY = -c.DY
	}
	c.X += c.DX
	c.Y += c.DY

	if p.Present && math.Abs(p.X-c.X) < cfg.ProximityHalfWidth && math.Abs(p.Y-c.Y) < cfg.ProximityHalfWidth {
		if c.Radius < cfg.MaxRadius {
			c.Radius = math.Min(c.Radius+cfg.GrowthStep, cfg.MaxRadius)
		}
	} else if c.Radius > c.MinRadius {
		c.Radius = math.Max(c.Radius-cfg.ShrinkStep, c.MinRadius)
	}
}

type circleField struct {
	cfg     config.Circles
	palette []color.NRGBA
	circles []Circle
}

func newCircleField(cfg config.Circles, palette []color.NRGBA) *circleField {
	return &circleField{
		cfg:     cfg,
		palette: withOpacity(palette, cfg.Opacity),
	}
}

func (f *circleField) Name() string          { return config.EffectDots }
func (f *circleField) Layout() config.Layout { return f.cfg.Layout }
func (f *circleField) Len() int              { return len(f.circles) }
func (f *circleField) Reset()                { f.circles = nil }

func (f *circleField) Spawn(s Surface, rng *rand.Rand) {
	f.circles = make([]Circle, f.cfg.Count)
	for i := range f.circles {
		f.circles[i] = spawnCircle(f.cfg, s, rng, f.palette)
	}
}

func (f *circleField) Step(s Surface, p Pointer) {
	for i := range f.circles {
		f.circles[i].Step(f.cfg, s, p)
	}
}

func (f *circleField) Render(c Canvas, s Surface) {
	c.Clear()
	for i := range f.circles {
		circle := &f.circles[i]
		c.FillCircle(circle.X, circle.Y, circle.Radius, circle.Color)
	}
}
