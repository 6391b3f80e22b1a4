// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tileforge/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current   scene.Scene
	screenW   int
	screenH   int
	scale     int
	resizable bool
	dt        float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		scale:   1,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// SetResizable makes Layout follow the window size, divided by scale
func (g *Game) SetResizable(resizable bool, scale int) {
	g.resizable = resizable
	g.scale = max(scale, 1)
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		g.notifySize()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.resizable && outsideWidth > 0 && outsideHeight > 0 {
		w, h := max(outsideWidth/g.scale, 1), max(outsideHeight/g.scale, 1)
		if w != g.screenW || h != g.screenH {
			g.screenW, g.screenH = w, h
			g.notifySize()
		}
	}
	return g.screenW, g.screenH
}

// Close calls OnExit on the current scene
func (g *Game) Close() {
	g.current.OnExit()
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

func (g *Game) notifySize() {
	if r, ok := g.current.(scene.Resizer); ok {
		r.Resize(g.screenW, g.screenH)
	}
}
