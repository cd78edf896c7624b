package host

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-canvas/internal/game"
)

// Canvas draws onto an offscreen image the size of the surface. The image
// persists between frames, so effects that never clear leave trails.
type Canvas struct {
	img *ebiten.Image
}

// NewCanvas allocates an image covering s, at least 1x1.
func NewCanvas(s game.Surface) *Canvas {
	w := max(int(math.Ceil(s.Width)), 1)
	h := max(int(math.Ceil(s.Height)), 1)
	return &Canvas{img: ebiten.NewImage(w, h)}
}

func newGameCanvas(s game.Surface) game.Canvas { return NewCanvas(s) }

// Image is nil after Release.
func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Clear() {
	c.img.Clear()
}

func (c *Canvas) FillRect(x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// Release frees the GPU image.
func (c *Canvas) Release() {
	if c.img == nil {
		return
	}
	c.img.Deallocate()
	c.img = nil
}
