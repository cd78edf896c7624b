package game

import (
	"context"
	"log"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iburimskiy/particle-canvas/internal/config"
)

const frameRingSize = 120

// Viewport is the size of the hosting page in pixels.
type Viewport struct {
	Width, Height int
}

type Options struct {
	// Canvas creates the drawing context whenever the surface is rebuilt.
	// Without it frames still simulate but never draw.
	Canvas CanvasFactory
	// Pointer is subscribed to for the lifetime of the engine.
	Pointer PointerSource
	// Rand overrides the seeded source derived from the config.
	Rand *rand.Rand
}

// Stats is a point-in-time view for diagnostics.
type Stats struct {
	Effect     string
	State      SchedulerState
	Frames     uint64
	Dropped    uint64
	Entities   int
	AvgFrame   time.Duration
	Surface    Surface
	Viewport   Viewport
	Breakpoint Breakpoint
}

// Engine runs one effect on one surface. Resize and pointer updates may come
// from any goroutine; everything else is owned by the frame pass.
type Engine struct {
	effect  Effect
	layout  config.Layout
	rng     *rand.Rand
	factory CanvasFactory

	pointer     pointerState
	unsubscribe func()

	// last is the most recent viewport requested; pending is handed to the
	// next frame and cleared once applied.
	last    atomic.Pointer[Viewport]
	pending atomic.Pointer[Viewport]

	// Owned by the frame pass.
	surface *Surface
	canvas  Canvas

	current  atomic.Pointer[Surface]
	applied  atomic.Pointer[Viewport]
	entities atomic.Int64

	sched     *Scheduler
	tap       *frameTap
	closed    atomic.Bool
	closeOnce sync.Once
}

// New builds an engine for cfg. cfg is normalized here, so a zero count, an
// empty palette or an unset circles block falls back to the defaults.
func New(cfg config.Config, opts Options) *Engine {
	cfg = config.Normalize(cfg)

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	effect := NewEffect(cfg)
	e := &Engine{
		effect:  effect,
		layout:  effect.Layout(),
		rng:     rng,
		factory: opts.Canvas,
		tap:     newFrameTap(frameRingSize),
	}
	e.sched = NewScheduler(e.frame)

	if opts.Pointer != nil {
		e.unsubscribe = opts.Pointer.Subscribe(e.pointer.apply)
	}
	return e
}

// Resize hands a new viewport to the next frame. Repeating the current size
// is a no-op; any change rebuilds the surface and respawns every entity.
func (e *Engine) Resize(width, height int) {
	if e.closed.Load() {
		return
	}
	v := Viewport{Width: width, Height: height}
	if last := e.last.Load(); last != nil && *last == v {
		return
	}
	e.last.Store(&v)
	e.pending.Store(&v)
}

// Start begins scheduling frames. A closed engine stays stopped.
func (e *Engine) Start() {
	if e.closed.Load() {
		return
	}
	e.sched.Start()
}

// Tick runs one frame. Hosts that own the display refresh call it once per
// refresh.
func (e *Engine) Tick() bool { return e.sched.Tick() }

// Run drives frames from refresh until Close or ctx is done.
func (e *Engine) Run(ctx context.Context, refresh <-chan time.Time) error {
	return e.sched.Run(ctx, refresh)
}

// Close stops scheduling, unsubscribes from the pointer source and releases
// the entities and drawing context. It is safe to call more than once, and
// the engine cannot be restarted afterwards.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		e.sched.Stop()
		if e.unsubscribe != nil {
			e.unsubscribe()
		}
		e.effect.Reset()
		e.entities.Store(0)
		if e.canvas != nil {
			releaseCanvas(e.canvas)
			e.canvas = nil
		}
		e.surface = nil
		e.current.Store(nil)
		e.pending.Store(nil)
		log.Printf("engine: %s closed after %d frames", e.effect.Name(), e.sched.Frames())
	})
}

// Canvas returns the active drawing context, nil before the first frame with
// a viewport. Only call it from the goroutine driving Tick.
func (e *Engine) Canvas() Canvas { return e.canvas }

// Surface returns the surface the most recent frame used.
func (e *Engine) Surface() (Surface, bool) {
	s := e.current.Load()
	if s == nil {
		return Surface{}, false
	}
	return *s, true
}

func (e *Engine) Stats() Stats {
	st := Stats{
		Effect:   e.effect.Name(),
		State:    e.sched.State(),
		Frames:   e.sched.Frames(),
		Dropped:  e.sched.Dropped(),
		Entities: int(e.entities.Load()),
		AvgFrame: e.tap.mean(),
	}
	if s := e.current.Load(); s != nil {
		st.Surface = *s
	}
	if v := e.applied.Load(); v != nil {
		st.Viewport = *v
		st.Breakpoint = BreakpointFor(e.layout, float64(v.Width))
	}
	return st
}

// frame is the scheduler pass: apply a pending resize, step, then draw.
func (e *Engine) frame() {
	if e.closed.Load() {
		return
	}
	start := time.Now()
	defer func() { e.tap.record(time.Since(start)) }()

	if v := e.pending.Swap(nil); v != nil {
		e.rebuild(*v)
	}
	if e.surface == nil {
		return
	}
	s := *e.surface

	e.effect.Step(s, e.pointer.local(s))
	if e.canvas == nil {
		return
	}
	e.effect.Render(e.canvas, s)
}

func (e *Engine) rebuild(v Viewport) {
	s := Resolve(e.layout, float64(v.Width), float64(v.Height))

	if e.canvas != nil {
		releaseCanvas(e.canvas)
		e.canvas = nil
	}
	if e.factory != nil {
		e.canvas = e.factory(s)
	}

	e.effect.Spawn(s, e.rng)
	e.surface = &s
	e.current.Store(&s)
	e.applied.Store(&v)
	e.entities.Store(int64(e.effect.Len()))

	log.Printf("engine: %s surface %.1fx%.1f at (%.1f, %.1f), %s layout, %d entities",
		e.effect.Name(), s.Width, s.Height, s.OffsetX, s.OffsetY,
		BreakpointFor(e.layout, float64(v.Width)), e.effect.Len())
}
