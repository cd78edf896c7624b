package game

import "image/color"

// Canvas is the immediate-mode 2D drawing API the effects paint through.
// Coordinates are surface-local pixels.
type Canvas interface {
	// Clear resets every pixel to transparent.
	Clear()
	FillRect(x, y, width, height float64, clr color.Color)
	// FillCircle fills a full arc of radius r centred on (cx, cy).
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// Releaser is implemented by canvases holding resources that must be freed
// when the surface is rebuilt or the engine is closed.
type Releaser interface {
	Release()
}

// CanvasFactory creates a drawing context sized for s.
type CanvasFactory func(s Surface) Canvas

func releaseCanvas(c Canvas) {
	if r, ok := c.(Releaser); ok {
		r.Release()
	}
}
