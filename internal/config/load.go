package config

import (
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Load reads a TOML file over Default() and normalizes the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load %s", path)
	}
	return cfg, nil
}

// Decode reads TOML from r. Keys absent from the document keep their default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: ignoring unknown key %q", key.String())
	}
	return Normalize(cfg), nil
}

// Normalize replaces invalid values with the documented defaults. It never
// fails; every fallback is logged. An unset circles or particles block takes
// the defaults wholesale, so a zero opacity only survives when set alongside
// other circle fields.
func Normalize(cfg Config) Config {
	def := Default()

	cfg.Effect = strings.ToLower(strings.TrimSpace(cfg.Effect))
	if cfg.Effect != EffectDots && cfg.Effect != EffectPixels {
		log.Printf("config: unknown effect %q, using %q", cfg.Effect, def.Effect)
		cfg.Effect = def.Effect
	}

	cfg.Palette = normalizePalette(cfg.Palette)

	c := &cfg.Circles
	dc := def.Circles
	if *c == (Circles{}) {
		*c = dc
	}
	positiveInt(&c.Count, dc.Count, "circles.count")
	positive(&c.MaxRadius, dc.MaxRadius, "circles.max_radius")
	positive(&c.ProximityHalfWidth, dc.ProximityHalfWidth, "circles.proximity_half_width")
	positive(&c.GrowthStep, dc.GrowthStep, "circles.growth_step")
	positive(&c.ShrinkStep, dc.ShrinkStep, "circles.shrink_step")
	nonNegative(&c.RadiusJitterMin, dc.RadiusJitterMin, "circles.radius_jitter_min")
	positive(&c.RadiusJitterBase, dc.RadiusJitterBase, "circles.radius_jitter_base")
	nonNegative(&c.VelocityRange, dc.VelocityRange, "circles.velocity_range")
	if o := clamp01(c.Opacity); o != c.Opacity {
		log.Printf("config: circles.opacity %v out of range, clamped to %v", c.Opacity, o)
		c.Opacity = o
	}
	c.Layout = normalizeLayout(c.Layout, dc.Layout, "circles.layout")

	p := &cfg.Particles
	dp := def.Particles
	if *p == (Particles{}) {
		*p = dp
	}
	positiveInt(&p.Count, dp.Count, "particles.count")
	nonNegative(&p.RadiusJitterMin, dp.RadiusJitterMin, "particles.radius_jitter_min")
	positive(&p.RadiusJitterBase, dp.RadiusJitterBase, "particles.radius_jitter_base")
	nonNegative(&p.VelocityJitter, dp.VelocityJitter, "particles.velocity_jitter")
	positive(&p.VelocityBase, dp.VelocityBase, "particles.velocity_base")
	nonNegative(&p.DistanceJitter, dp.DistanceJitter, "particles.distance_jitter")
	nonNegative(&p.DistanceBase, dp.DistanceBase, "particles.distance_base")
	if p.FollowRate <= 0 || p.FollowRate > 1 || math.IsNaN(p.FollowRate) {
		log.Printf("config: particles.follow_rate %v not in (0,1], using %v", p.FollowRate, dp.FollowRate)
		p.FollowRate = dp.FollowRate
	}
	if _, err := ParseColor(p.TrailFade); err != nil {
		log.Printf("config: particles.trail_fade: %v, using %q", err, dp.TrailFade)
		p.TrailFade = dp.TrailFade
	}
	p.Layout = normalizeLayout(p.Layout, dp.Layout, "particles.layout")

	return cfg
}

func normalizePalette(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, err := ParseColor(s); err != nil {
			log.Printf("config: dropping palette entry: %v", err)
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		log.Printf("config: empty palette, using the built-in palette")
		out = append(out, DefaultPalette...)
	}
	return out
}

func normalizeLayout(l, def Layout, name string) Layout {
	if l == (Layout{}) {
		return def
	}
	positive(&l.BreakpointPx, def.BreakpointPx, name+".breakpoint_px")
	positive(&l.WidthFractionLarge, def.WidthFractionLarge, name+".width_fraction_large")
	positive(&l.WidthFractionSmall, def.WidthFractionSmall, name+".width_fraction_small")
	nonNegative(&l.PaddingLarge, def.PaddingLarge, name+".padding_large")
	nonNegative(&l.PaddingSmall, def.PaddingSmall, name+".padding_small")
	nonNegative(&l.OffsetFractionLarge, def.OffsetFractionLarge, name+".offset_fraction_large")
	nonNegative(&l.OffsetFractionSmall, def.OffsetFractionSmall, name+".offset_fraction_small")
	positive(&l.HeightFraction, def.HeightFraction, name+".height_fraction")
	nonNegative(&l.BasePageMargin, def.BasePageMargin, name+".base_page_margin")
	nonNegative(&l.BaseHeading, def.BaseHeading, name+".base_heading")
	nonNegative(&l.VerticalPadding, def.VerticalPadding, name+".vertical_padding")
	nonNegative(&l.OffsetHeightFraction, def.OffsetHeightFraction, name+".offset_height_fraction")
	return l
}

func positiveInt(v *int, def int, name string) {
	if *v <= 0 {
		log.Printf("config: %s must be positive (got %d), using %d", name, *v, def)
		*v = def
	}
}

func positive(v *float64, def float64, name string) {
	if !(*v > 0) || math.IsInf(*v, 0) {
		log.Printf("config: %s must be positive (got %v), using %v", name, *v, def)
		*v = def
	}
}

func nonNegative(v *float64, def float64, name string) {
	if !(*v >= 0) || math.IsInf(*v, 0) {
		log.Printf("config: %s must not be negative (got %v), using %v", name, *v, def)
		*v = def
	}
}
