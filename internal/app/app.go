//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-ca/internal/render"
	"torus-ca/pkg/automata"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Universe to the ebiten.Game interface.
type Game struct {
	uni     *automata.Universe
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game driving the provided universe.
func New(uni *automata.Universe, scale int, seed int64) *Game {
	grid := uni.Grid()
	gp := render.NewGridPainter(grid.HorizontalSize(), grid.VerticalSize())
	return &Game{
		uni:      uni,
		painter:  gp,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset refills the live grid with a random pattern from the given seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	Randomize(g.uni.Grid(), seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the universe.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused || g.tickOnce {
		g.uni.Update()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the live grid.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.uni.Grid(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.uni.Grid()
	return grid.HorizontalSize() * g.scale, grid.VerticalSize() * g.scale
}
