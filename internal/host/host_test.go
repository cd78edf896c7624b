package host

import (
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/particle-canvas/internal/game"
)

type fakeDevice struct {
	x, y  int
	wheel float64
}

func newTestInput(dev *fakeDevice, feed *game.Feed) *Input {
	in := NewInput(feed)
	in.cursor = func() (int, int) { return dev.x, dev.y }
	in.wheel = func() (float64, float64) {
		dy := dev.wheel
		dev.wheel = 0
		return 0, dy
	}
	return in
}

func TestInputPublishesMovesAndScroll(t *testing.T) {
	feed := game.NewFeed()
	var moves []game.PointerEvent
	var scrolls []float64
	defer feed.Subscribe(func(ev game.PointerEvent) {
		switch ev.Kind {
		case game.PointerMoved:
			moves = append(moves, ev)
		case game.Scrolled:
			scrolls = append(scrolls, ev.Scroll)
		}
	})()

	dev := &fakeDevice{x: 10, y: 10}
	in := newTestInput(dev, feed)

	in.Poll()
	if len(moves) != 0 {
		t.Fatalf("first poll published %d moves, want none", len(moves))
	}
	in.Poll()
	if len(moves) != 0 {
		t.Fatalf("unchanged cursor published a move")
	}

	dev.x, dev.y = 40, 50
	in.Poll()
	if len(moves) != 1 || moves[0].X != 40 || moves[0].Y != 50 {
		t.Fatalf("moves = %+v", moves)
	}

	dev.wheel = -2
	in.Poll()
	if in.Scroll() != 2*scrollStep || scrolls[len(scrolls)-1] != 2*scrollStep {
		t.Fatalf("scroll = %v, events %v", in.Scroll(), scrolls)
	}
	dev.wheel = 5
	in.Poll()
	if in.Scroll() != 0 {
		t.Errorf("scroll = %v, want clamped at 0", in.Scroll())
	}

	in.Republish()
	if len(moves) != 2 || moves[1] != moves[0] {
		t.Errorf("republish moves = %+v", moves)
	}
}

func TestRepublishBeforeAnyMove(t *testing.T) {
	feed := game.NewFeed()
	moves := 0
	defer feed.Subscribe(func(ev game.PointerEvent) {
		if ev.Kind == game.PointerMoved {
			moves++
		}
	})()

	in := newTestInput(&fakeDevice{x: 3, y: 4}, feed)
	in.Poll()
	in.Republish()
	if moves != 0 {
		t.Errorf("republished %d moves before the pointer moved", moves)
	}
}

func TestOverlayLines(t *testing.T) {
	st := game.Stats{
		Effect:     "dots",
		State:      game.Running,
		Frames:     120,
		Dropped:    1,
		Entities:   500,
		AvgFrame:   1500 * time.Microsecond,
		Viewport:   game.Viewport{Width: 1024, Height: 1000},
		Breakpoint: game.Large,
		Surface:    game.Surface{Width: 668.8, Height: 400, OffsetX: 177.6, OffsetY: 141},
	}
	lines := overlayLines(st, 75*time.Second, 59.94, 60)
	got := strings.Join(lines, "\n")
	for _, want := range []string{
		"dots  running  up 01:15",
		"FPS 59.9  TPS 60.0  frame 1.5ms",
		"entities 500  frames 120  dropped 1",
		"viewport 1024x1000 (large)",
		"surface 668.8x400.0 at (177.6, 141.0)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("overlay missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		0:                         "00:00",
		59 * time.Second:          "00:59",
		61 * time.Second:          "01:01",
		(90*60 + 5) * time.Second: "90:05",
	}
	for d, want := range tests {
		if got := formatDuration(d); got != want {
			t.Errorf("formatDuration(%v) = %q, want %q", d, got, want)
		}
	}
}
