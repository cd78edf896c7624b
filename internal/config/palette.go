package config

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ParseColor accepts "#rgb", "#rrggbb", "rgb(r,g,b)" and "rgba(r,g,b,a)".
// Channels are 0-255, alpha is 0-1.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(v, "#"):
		c, err := colorful.Hex(v)
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(err, "parse color %q", s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseFunctional(s, v[len("rgba("):len(v)-1], 4)
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseFunctional(s, v[len("rgb("):len(v)-1], 3)
	}
	return color.NRGBA{}, errors.Errorf("unsupported color %q", s)
}

func parseFunctional(orig, body string, want int) (color.NRGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return color.NRGBA{}, errors.Errorf("color %q: want %d components, got %d", orig, want, len(parts))
	}

	vals := make([]float64, want)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(err, "color %q component %d", orig, i)
		}
		vals[i] = f
	}

	out := color.NRGBA{
		R: channel(vals[0]),
		G: channel(vals[1]),
		B: channel(vals[2]),
		A: 255,
	}
	if want == 4 {
		out.A = uint8(clamp01(vals[3])*255 + 0.5)
	}
	return out, nil
}

func channel(v float64) uint8 {
	return uint8(clamp01(v/255)*255 + 0.5)
}

// WithOpacity scales the alpha channel of c by opacity (clamped to [0,1]).
func WithOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A)*clamp01(opacity) + 0.5)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
