package config

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff8a80", color.NRGBA{R: 255, G: 138, B: 128, A: 255}},
		{"#FFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"rgb(1, 2, 3)", color.NRGBA{R: 1, G: 2, B: 3, A: 255}},
		{"rgba(255,138,128,0.5)", color.NRGBA{R: 255, G: 138, B: 128, A: 128}},
		{"rgba(255,255,255,0.1)", color.NRGBA{R: 255, G: 255, B: 255, A: 26}},
		{" RGBA(300,-4,0,7) ", color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "rgba(1,2,3)", "rgb(a,b,c)", "rgb(1,2,3"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) expected error", in)
		}
	}
}

func TestWithOpacity(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	if got := WithOpacity(c, 0.5).A; got != 128 {
		t.Errorf("alpha = %d, want 128", got)
	}
	if got := WithOpacity(c, 2).A; got != 255 {
		t.Errorf("alpha = %d, want 255 for clamped opacity", got)
	}
	if got := WithOpacity(c, -1).A; got != 0 {
		t.Errorf("alpha = %d, want 0 for clamped opacity", got)
	}
}

func TestDefaultIsStable(t *testing.T) {
	def := Default()
	norm := Normalize(def)
	if norm.Circles != def.Circles {
		t.Errorf("Normalize changed valid circle config: %+v", norm.Circles)
	}
	if norm.Particles != def.Particles {
		t.Errorf("Normalize changed valid particle config: %+v", norm.Particles)
	}
	if len(norm.Palette) != 9 {
		t.Errorf("palette length = %d, want 9", len(norm.Palette))
	}
	if def.Particles.Layout.OffsetHeightFraction != 0.4 || def.Circles.Layout.OffsetHeightFraction != 0 {
		t.Errorf("per-effect offset formulas not independent: %+v / %+v", def.Circles.Layout, def.Particles.Layout)
	}
}

func TestNormalizeFallbacks(t *testing.T) {
	cfg := Default()
	cfg.Effect = "sparkles"
	cfg.Palette = nil
	cfg.Circles.Count = 0
	cfg.Circles.Opacity = 1.5
	cfg.Circles.MaxRadius = -3
	cfg.Particles.Count = -10
	cfg.Particles.FollowRate = 0
	cfg.Particles.TrailFade = "nope"
	cfg.Particles.Layout = Layout{}

	got := Normalize(cfg)
	def := Default()

	if got.Effect != EffectDots {
		t.Errorf("effect = %q", got.Effect)
	}
	if len(got.Palette) != len(DefaultPalette) {
		t.Errorf("palette = %v", got.Palette)
	}
	if got.Circles.Count != CircleCount {
		t.Errorf("circles.count = %d", got.Circles.Count)
	}
	if got.Circles.Opacity != 1 {
		t.Errorf("circles.opacity = %v, want clamp to 1", got.Circles.Opacity)
	}
	if got.Circles.MaxRadius != CircleMaxRadius {
		t.Errorf("circles.max_radius = %v", got.Circles.MaxRadius)
	}
	if got.Particles.Count != ParticleCount {
		t.Errorf("particles.count = %d", got.Particles.Count)
	}
	if got.Particles.FollowRate != ParticleFollowRate {
		t.Errorf("particles.follow_rate = %v", got.Particles.FollowRate)
	}
	if got.Particles.TrailFade != ParticleTrailFade {
		t.Errorf("particles.trail_fade = %q", got.Particles.TrailFade)
	}
	if got.Particles.Layout != def.Particles.Layout {
		t.Errorf("particles.layout = %+v", got.Particles.Layout)
	}
}

func TestNormalizeUnsetBlocksUseDefaults(t *testing.T) {
	got := Normalize(Config{Effect: EffectDots})
	def := Default()
	if got.Circles != def.Circles {
		t.Errorf("circles = %+v, want defaults", got.Circles)
	}
	if got.Circles.Opacity != CircleOpacity {
		t.Errorf("circles.opacity = %v, want %v", got.Circles.Opacity, CircleOpacity)
	}
	if got.Particles != def.Particles {
		t.Errorf("particles = %+v, want defaults", got.Particles)
	}

	cfg := Default()
	cfg.Circles.Opacity = 0
	if got := Normalize(cfg).Circles.Opacity; got != 0 {
		t.Errorf("explicit opacity 0 replaced by %v", got)
	}
}

func TestNormalizeDropsBadPaletteEntries(t *testing.T) {
	cfg := Default()
	cfg.Palette = []string{"#000000", "bogus", "rgba(1,2,3,1)"}
	got := Normalize(cfg)
	if len(got.Palette) != 2 {
		t.Fatalf("palette = %v, want 2 entries", got.Palette)
	}
	if colors := got.Colors(); len(colors) != 2 || colors[0] != (color.NRGBA{A: 255}) {
		t.Errorf("colors = %v", colors)
	}
}

func TestDecode(t *testing.T) {
	doc := `
effect = "pixels"
seed = 42
palette = ["#ffffff", "rgba(0,0,0,0.5)"]

[circles]
count = 120
opacity = 0.25

[particles]
count = 12
follow_rate = 0.1

[particles.layout]
breakpoint_px = 1024
`
	cfg, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Effect != EffectPixels || cfg.Seed != 42 {
		t.Errorf("effect/seed = %q/%d", cfg.Effect, cfg.Seed)
	}
	if cfg.Circles.Count != 120 || cfg.Circles.Opacity != 0.25 {
		t.Errorf("circles = %+v", cfg.Circles)
	}
	// untouched keys keep defaults
	if cfg.Circles.MaxRadius != CircleMaxRadius {
		t.Errorf("circles.max_radius = %v", cfg.Circles.MaxRadius)
	}
	if cfg.Particles.Count != 12 || cfg.Particles.FollowRate != 0.1 {
		t.Errorf("particles = %+v", cfg.Particles)
	}
	if cfg.Particles.Layout.BreakpointPx != 1024 || cfg.Particles.Layout.BaseHeading != ParticleBaseHeading {
		t.Errorf("particles.layout = %+v", cfg.Particles.Layout)
	}
	if len(cfg.Colors()) != 2 {
		t.Errorf("colors = %v", cfg.Colors())
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	if _, err := Decode(strings.NewReader("effect = ")); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/particles.toml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestShippedConfigs(t *testing.T) {
	dots, err := Load("../../configs/dots.toml")
	if err != nil {
		t.Fatalf("dots.toml: %v", err)
	}
	if dots.Effect != EffectDots || dots.Circles.Count != 300 || dots.Circles.Layout.BreakpointPx != 900 {
		t.Errorf("dots.toml decoded as %+v", dots.Circles)
	}
	if dots.Circles.Layout.WidthFractionLarge != WidthFractionLarge {
		t.Errorf("partial layout lost defaults: %+v", dots.Circles.Layout)
	}

	pixels, err := Load("../../configs/pixels.toml")
	if err != nil {
		t.Fatalf("pixels.toml: %v", err)
	}
	if pixels.Effect != EffectPixels || pixels.Particles.Count != 80 || len(pixels.Colors()) != 4 {
		t.Errorf("pixels.toml decoded as %+v", pixels.Particles)
	}
}
