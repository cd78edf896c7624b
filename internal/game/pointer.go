package game

import (
	"sync"
	"sync/atomic"
)

type EventKind uint8

const (
	// PointerMoved carries raw page coordinates in X, Y.
	PointerMoved EventKind = iota
	// Scrolled carries the current vertical scroll offset in Scroll.
	Scrolled
)

type PointerEvent struct {
	Kind   EventKind
	X, Y   float64
	Scroll float64
}

// PointerSource delivers pointer and scroll updates. The returned function
// unsubscribes; once it returns, fn is not called again.
type PointerSource interface {
	Subscribe(fn func(PointerEvent)) (unsubscribe func())
}

// Feed is an in-process PointerSource. It remembers the latest scroll offset
// and replays it to every new subscriber.
//
// Subscribers are invoked synchronously on the publishing goroutine and must
// not unsubscribe from within the callback.
type Feed struct {
	mu     sync.RWMutex
	subs   map[uint64]func(PointerEvent)
	nextID uint64
	scroll float64
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[uint64]func(PointerEvent))}
}

func (f *Feed) Subscribe(fn func(PointerEvent)) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	scroll := f.scroll
	f.mu.Unlock()

	fn(PointerEvent{Kind: Scrolled, Scroll: scroll})

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
		})
	}
}

// Move publishes a pointer position in page coordinates.
func (f *Feed) Move(x, y float64) {
	f.publish(PointerEvent{Kind: PointerMoved, X: x, Y: y})
}

// Scroll publishes the vertical scroll offset.
func (f *Feed) Scroll(offset float64) {
	f.mu.Lock()
	f.scroll = offset
	f.mu.Unlock()
	f.publish(PointerEvent{Kind: Scrolled, Scroll: offset})
}

func (f *Feed) ScrollOffset() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.scroll
}

// Subscribers returns the number of live subscriptions.
func (f *Feed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}

func (f *Feed) publish(ev PointerEvent) {
	// Held for the whole dispatch so unsubscribe waits for in-flight callbacks.
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, fn := range f.subs {
		fn(ev)
	}
}

// Pointer is the pointer position in surface-local coordinates. Present is
// false until the first move event arrives.
type Pointer struct {
	Point
	Present bool
}

// pointerState holds the raw values written by the adapter. x and y may tear
// against each other; a frame tolerates that.
type pointerState struct {
	x, y    atomicFloat
	scroll  atomicFloat
	present atomic.Bool
}

func (p *pointerState) apply(ev PointerEvent) {
	switch ev.Kind {
	case PointerMoved:
		p.x.Set(ev.X)
		p.y.Set(ev.Y)
		p.present.Store(true)
	case Scrolled:
		p.scroll.Set(ev.Scroll)
	}
}

// local translates the raw pointer into s's coordinate space.
func (p *pointerState) local(s Surface) Pointer {
	if !p.present.Load() {
		return Pointer{}
	}
	return Pointer{
		Point: Point{
			X: p.x.Get() - s.OffsetX,
			Y: p.y.Get() - s.OffsetY + p.scroll.Get(),
		},
		Present: true,
	}
}
