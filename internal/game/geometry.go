package game

import "github.com/iburimskiy/particle-canvas/internal/config"

// Point is a position in surface-local pixels.
type Point struct {
	X, Y float64
}

// Surface is the addressable drawing region. Offsets map page coordinates
// into surface-local space.
type Surface struct {
	Width, Height    float64
	OffsetX, OffsetY float64
}

func (s Surface) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// Breakpoint selects the sizing parameters for a viewport width.
type Breakpoint int

const (
	Large Breakpoint = iota
	Small
)

func (b Breakpoint) String() string {
	if b == Small {
		return "small"
	}
	return "large"
}

// BreakpointFor reports Small when the viewport is at or below the layout's
// breakpoint.
func BreakpointFor(l config.Layout, viewportWidth float64) Breakpoint {
	if viewportWidth <= l.BreakpointPx {
		return Small
	}
	return Large
}

// Resolve derives the surface for a viewport. Negative sizes clamp to zero.
func Resolve(l config.Layout, viewportWidth, viewportHeight float64) Surface {
	widthFraction, padding, offsetFraction := l.WidthFractionLarge, l.PaddingLarge, l.OffsetFractionLarge
	if BreakpointFor(l, viewportWidth) == Small {
		widthFraction, padding, offsetFraction = l.WidthFractionSmall, l.PaddingSmall, l.OffsetFractionSmall
	}

	return Surface{
		Width:   max(viewportWidth*widthFraction-padding, 0),
		Height:  max(viewportHeight*l.HeightFraction, 0),
		OffsetX: viewportWidth*offsetFraction + padding/2,
		OffsetY: l.BasePageMargin + l.BaseHeading + l.VerticalPadding/2 + viewportHeight*l.OffsetHeightFraction,
	}
}
