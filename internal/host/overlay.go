package host

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/particle-canvas/internal/game"
)

const (
	overlayX          = 8
	overlayY          = 8
	overlayLineHeight = 16
	overlayPadding    = 6
	overlayCharWidth  = 7
)

var (
	overlayFace       = text.NewGoXFace(basicfont.Face7x13)
	overlayBackground = color.RGBA{R: 20, G: 25, B: 35, A: 200}
	overlayText       = color.RGBA{R: 220, G: 230, B: 240, A: 255}
)

// overlayLines formats the diagnostics shown with F3.
func overlayLines(st game.Stats, uptime time.Duration, fps, tps float64) []string {
	return []string{
		fmt.Sprintf("%s  %s  up %s", st.Effect, st.State, formatDuration(uptime)),
		fmt.Sprintf("FPS %.1f  TPS %.1f  frame %s", fps, tps, st.AvgFrame.Round(time.Microsecond)),
		fmt.Sprintf("entities %d  frames %d  dropped %d", st.Entities, st.Frames, st.Dropped),
		fmt.Sprintf("viewport %dx%d (%s)", st.Viewport.Width, st.Viewport.Height, st.Breakpoint),
		fmt.Sprintf("surface %.1fx%.1f at (%.1f, %.1f)", st.Surface.Width, st.Surface.Height, st.Surface.OffsetX, st.Surface.OffsetY),
	}
}

func drawOverlay(screen *ebiten.Image, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*overlayCharWidth)
	}
	height := len(lines)*overlayLineHeight + overlayPadding
	vector.DrawFilledRect(screen, overlayX, overlayY, float32(width+2*overlayPadding), float32(height), overlayBackground, false)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(overlayX+overlayPadding, float64(overlayY+overlayPadding/2+overlayLineHeight*i))
		op.ColorScale.ScaleWithColor(overlayText)
		text.Draw(screen, l, overlayFace, op)
	}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
