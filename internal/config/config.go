package config

import "image/color"

const (
	EffectDots   = "dots"
	EffectPixels = "pixels"

	// Page layout
	BreakpointPx        = 768
	WidthFractionLarge  = 0.70
	WidthFractionSmall  = 0.95
	PaddingLarge        = 48
	PaddingSmall        = 36
	OffsetFractionLarge = 0.15
	OffsetFractionSmall = 0.025
	HeightFraction      = 0.40
	BasePageMargin      = 60
	BaseHeading         = 33 + 24
	VerticalPadding     = 48

	// Floating dots
	CircleCount              = 500
	CircleRadiusJitterMin    = 4
	CircleRadiusJitterBase   = 2
	CircleMaxRadius          = 50
	CircleProximityHalfWidth = 50
	CircleGrowthStep         = 1
	CircleShrinkStep         = 1
	CircleVelocityRange      = 0.5
	CircleOpacity            = 0.5

	// Circulating pixels
	ParticleCount            = 50
	ParticleRadiusJitterMin  = 2
	ParticleRadiusJitterBase = 1
	ParticleVelocityJitter   = 0.03
	ParticleVelocityBase     = 0.02
	ParticleDistanceJitter   = 70
	ParticleDistanceBase     = 50
	ParticleFollowRate       = 0.05
	ParticleBaseHeading      = 76
	ParticleOffsetHeightFrac = 0.4
	ParticleTrailFade        = "rgba(255,255,255,0.1)"
)

// DefaultPalette is the built-in 9 color palette (material accent 100 tones).
var DefaultPalette = []string{
	"#ff8a80", // red
	"#ff80ab", // pink
	"#ea80fc", // purple
	"#b388ff", // deep purple
	"#8c9eff", // indigo
	"#82b1ff", // blue
	"#80d8ff", // light blue
	"#84ffff", // cyan
	"#a7ffeb", // teal
}

// Layout describes how the hosting page sizes and positions the drawing
// surface for a given viewport.
type Layout struct {
	BreakpointPx         float64 `toml:"breakpoint_px"`
	WidthFractionLarge   float64 `toml:"width_fraction_large"`
	WidthFractionSmall   float64 `toml:"width_fraction_small"`
	PaddingLarge         float64 `toml:"padding_large"`
	PaddingSmall         float64 `toml:"padding_small"`
	OffsetFractionLarge  float64 `toml:"offset_fraction_large"`
	OffsetFractionSmall  float64 `toml:"offset_fraction_small"`
	HeightFraction       float64 `toml:"height_fraction"`
	BasePageMargin       float64 `toml:"base_page_margin"`
	BaseHeading          float64 `toml:"base_heading"`
	VerticalPadding      float64 `toml:"vertical_padding"`
	OffsetHeightFraction float64 `toml:"offset_height_fraction"`
}

// Circles holds the floating dots tunables.
type Circles struct {
	Count              int     `toml:"count"`
	RadiusJitterMin    float64 `toml:"radius_jitter_min"`
	RadiusJitterBase   float64 `toml:"radius_jitter_base"`
	MaxRadius          float64 `toml:"max_radius"`
	ProximityHalfWidth float64 `toml:"proximity_half_width"`
	GrowthStep         float64 `toml:"growth_step"`
	ShrinkStep         float64 `toml:"shrink_step"`
	VelocityRange      float64 `toml:"velocity_range"`
	Opacity            float64 `toml:"opacity"` // 0 is kept and hides every circle
	Layout             Layout  `toml:"layout"`
}

// Particles holds the circulating pixels tunables.
type Particles struct {
	Count            int     `toml:"count"`
	RadiusJitterMin  float64 `toml:"radius_jitter_min"`
	RadiusJitterBase float64 `toml:"radius_jitter_base"`
	VelocityJitter   float64 `toml:"velocity_jitter"`
	VelocityBase     float64 `toml:"velocity_base"`
	DistanceJitter   float64 `toml:"distance_jitter"`
	DistanceBase     float64 `toml:"distance_base"`
	FollowRate       float64 `toml:"follow_rate"`
	TrailFade        string  `toml:"trail_fade"`
	Layout           Layout  `toml:"layout"`
}

// Config is the immutable engine configuration. It is passed by value; the
// engine never writes to it.
type Config struct {
	Effect    string    `toml:"effect"`
	Seed      uint64    `toml:"seed"`
	Palette   []string  `toml:"palette"`
	Circles   Circles   `toml:"circles"`
	Particles Particles `toml:"particles"`
}

// DefaultLayout returns the page layout used by the floating dots card.
func DefaultLayout() Layout {
	return Layout{
		BreakpointPx:        BreakpointPx,
		WidthFractionLarge:  WidthFractionLarge,
		WidthFractionSmall:  WidthFractionSmall,
		PaddingLarge:        PaddingLarge,
		PaddingSmall:        PaddingSmall,
		OffsetFractionLarge: OffsetFractionLarge,
		OffsetFractionSmall: OffsetFractionSmall,
		HeightFraction:      HeightFraction,
		BasePageMargin:      BasePageMargin,
		BaseHeading:         BaseHeading,
		VerticalPadding:     VerticalPadding,
	}
}

func Default() Config {
	particleLayout := DefaultLayout()
	particleLayout.BaseHeading = ParticleBaseHeading
	particleLayout.OffsetHeightFraction = ParticleOffsetHeightFrac

	return Config{
		Effect:  EffectDots,
		Palette: append([]string(nil), DefaultPalette...),
		Circles: Circles{
			Count:              CircleCount,
			RadiusJitterMin:    CircleRadiusJitterMin,
			RadiusJitterBase:   CircleRadiusJitterBase,
			MaxRadius:          CircleMaxRadius,
			ProximityHalfWidth: CircleProximityHalfWidth,
			GrowthStep:         CircleGrowthStep,
			ShrinkStep:         CircleShrinkStep,
			VelocityRange:      CircleVelocityRange,
			Opacity:            CircleOpacity,
			Layout:             DefaultLayout(),
		},
		Particles: Particles{
			Count:            ParticleCount,
			RadiusJitterMin:  ParticleRadiusJitterMin,
			RadiusJitterBase: ParticleRadiusJitterBase,
			VelocityJitter:   ParticleVelocityJitter,
			VelocityBase:     ParticleVelocityBase,
			DistanceJitter:   ParticleDistanceJitter,
			DistanceBase:     ParticleDistanceBase,
			FollowRate:       ParticleFollowRate,
			TrailFade:        ParticleTrailFade,
			Layout:           particleLayout,
		},
	}
}

// Colors resolves the palette strings. Entries that fail to parse are
// skipped; an empty result falls back to DefaultPalette.
func (c Config) Colors() []color.NRGBA {
	out := make([]color.NRGBA, 0, len(c.Palette))
	for _, s := range c.Palette {
		clr, err := ParseColor(s)
		if err != nil {
			continue
		}
		out = append(out, clr)
	}
	if len(out) == 0 {
		for _, s := range DefaultPalette {
			clr, _ := ParseColor(s)
			out = append(out, clr)
		}
	}
	return out
}
