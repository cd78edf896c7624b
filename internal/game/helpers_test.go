package game

import (
	"image/color"
	"math/rand/v2"
	"sync"
)

type drawOp struct {
	kind   string
	x0, y0 float64
	x1, y1 float64
	size   float64
	clr    color.Color
}

// recordCanvas is a Canvas that remembers every call.
type recordCanvas struct {
	mu       sync.Mutex
	surface  Surface
	ops      []drawOp
	released int
	onDraw   func()
	panicOn  string
}

func (c *recordCanvas) add(op drawOp) {
	c.mu.Lock()
	c.ops = append(c.ops, op)
	hook := c.onDraw
	c.mu.Unlock()
	if c.panicOn == op.kind {
		panic("canvas: " + op.kind + " failed")
	}
	if hook != nil {
		hook()
	}
}

func (c *recordCanvas) Clear() { c.add(drawOp{kind: "clear"}) }

func (c *recordCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.add(drawOp{kind: "rect", x0: x, y0: y, x1: x + w, y1: y + h, clr: clr})
}

func (c *recordCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.add(drawOp{kind: "circle", x0: cx, y0: cy, size: r, clr: clr})
}

func (c *recordCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.add(drawOp{kind: "line", x0: x0, y0: y0, x1: x1, y1: y1, size: width, clr: clr})
}

func (c *recordCanvas) Release() {
	c.mu.Lock()
	c.released++
	c.mu.Unlock()
}

func (c *recordCanvas) count(kind string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (c *recordCanvas) reset() {
	c.mu.Lock()
	c.ops = nil
	c.mu.Unlock()
}

// canvasRecorder is a CanvasFactory that keeps every canvas it made.
type canvasRecorder struct {
	mu       sync.Mutex
	canvases []*recordCanvas
	setup    func(*recordCanvas)
}

func (r *canvasRecorder) factory(s Surface) Canvas {
	c := &recordCanvas{surface: s}
	if r.setup != nil {
		r.setup(c)
	}
	r.mu.Lock()
	r.canvases = append(r.canvases, c)
	r.mu.Unlock()
	return c
}

func (r *canvasRecorder) made() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.canvases)
}

func (r *canvasRecorder) latest() *recordCanvas {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.canvases) == 0 {
		return nil
	}
	return r.canvases[len(r.canvases)-1]
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
