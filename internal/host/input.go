package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-canvas/internal/game"
)

// scrollStep is how many page pixels one wheel notch scrolls.
const scrollStep = 40

// Input polls ebiten's cursor and wheel once per update and publishes
// changes to a feed, the way a page would deliver mousemove and scroll.
type Input struct {
	feed *game.Feed

	cursor func() (int, int)
	wheel  func() (float64, float64)

	lastX, lastY int
	polled       bool
	moved        bool
	scroll       float64
}

func NewInput(feed *game.Feed) *Input {
	return &Input{
		feed:   feed,
		cursor: ebiten.CursorPosition,
		wheel:  ebiten.Wheel,
	}
}

// Poll publishes a move when the cursor changed since the last poll and a
// scroll when the wheel turned. The first reading only primes the position,
// so the pointer stays absent until the user actually moves it.
func (in *Input) Poll() {
	x, y := in.cursor()
	switch {
	case !in.polled:
		in.polled = true
	case x != in.lastX || y != in.lastY:
		in.moved = true
		in.feed.Move(float64(x), float64(y))
	}
	in.lastX, in.lastY = x, y

	if _, dy := in.wheel(); dy != 0 {
		in.scroll = max(in.scroll-dy*scrollStep, 0)
		in.feed.Scroll(in.scroll)
	}
}

// Republish sends the last known pointer position again, for subscribers
// that joined after it was first published.
func (in *Input) Republish() {
	if in.moved {
		in.feed.Move(float64(in.lastX), float64(in.lastY))
	}
}

// Scroll is the current vertical scroll offset of the page.
func (in *Input) Scroll() float64 { return in.scroll }
