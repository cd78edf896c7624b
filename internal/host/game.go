package host

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-canvas/internal/config"
	"github.com/iburimskiy/particle-canvas/internal/game"
)

var pageBackground = color.RGBA{R: 250, G: 250, B: 250, A: 255}

// Game is the ebiten host. The window stands in for the page: its size is
// the viewport, the cursor is the page pointer and the wheel scrolls.
type Game struct {
	engine *game.Engine
	feed   *game.Feed
	input  *Input

	viewport game.Viewport
	started  time.Time

	showOverlay bool
	lastErr     error
}

func NewGame(cfg config.Config) *Game {
	feed := game.NewFeed()
	g := &Game{
		feed:    feed,
		input:   NewInput(feed),
		started: time.Now(),
	}
	g.useConfig(cfg)
	return g
}

func (g *Game) Update() error {
	g.input.Poll()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showOverlay = !g.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openConfig(); err != nil {
			log.Printf("host: %v", err)
			g.lastErr = err
		}
	}

	g.engine.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(pageBackground)

	if c, ok := g.engine.Canvas().(*Canvas); ok && c.Image() != nil {
		s, _ := g.engine.Surface()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(s.OffsetX, s.OffsetY-g.input.Scroll())
		screen.DrawImage(c.Image(), op)
	}

	if g.showOverlay {
		drawOverlay(screen, overlayLines(g.engine.Stats(), time.Since(g.started), ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, screen.Bounds().Dy()-20)
	}
}

// Layout treats the window as the viewport, so every window resize is a
// viewport resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport = game.Viewport{Width: outsideWidth, Height: outsideHeight}
	g.engine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close tears the engine down. Safe to call more than once.
func (g *Game) Close() {
	if g.engine != nil {
		g.engine.Close()
	}
}

func (g *Game) openConfig() error {
	path, err := selectConfigFile()
	if err != nil || path == "" {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	log.Printf("host: loaded %s (%s)", path, cfg.Effect)
	g.lastErr = nil
	g.useConfig(cfg)
	return nil
}

// useConfig replaces the running engine with one built from cfg.
func (g *Game) useConfig(cfg config.Config) {
	if g.engine != nil {
		g.engine.Close()
	}
	g.engine = game.New(cfg, game.Options{
		Canvas:  newGameCanvas,
		Pointer: g.feed,
	})
	if g.viewport.Width > 0 {
		g.engine.Resize(g.viewport.Width, g.viewport.Height)
	}
	g.engine.Start()
	g.input.Republish()
}
