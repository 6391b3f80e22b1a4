package session

import (
	"fmt"

	"github.com/younwookim/tileforge/internal/application/system"
	"github.com/younwookim/tileforge/internal/lighting"
	"github.com/younwookim/tileforge/internal/raster"
)

const (
	hudScale        = 2
	hudMargin       = 14
	hudBottom       = 66
	highlightStroke = 2
)

const controlHint = "a/d move  space jump  shift sprint  lmb dig  rmb place  wheel zoom  f1 hud  f2 outline  f3 filter  esc pause"

// Render draws the current frame: tiles, cursor outline, sprites, darkness
// and HUD, in that order. The returned canvas is reused by later calls.
func (s *Session) Render() *raster.Canvas {
	tilePx := s.cfg.World.TilePx

	s.canvas.ResetClip()
	s.canvas.Clear(s.clearColor)

	s.sources = system.GatherLights(s.world, s.sources)
	s.light = lighting.Build(s.tiles, s.camera, tilePx, s.sources, s.lightParams)

	s.render.DrawWorld(s.canvas, s.tiles, s.camera)
	if s.showHighlight {
		s.render.DrawHighlight(s.canvas, s.camera, s.cursor[0], s.cursor[1], highlightStroke, s.highlightColor)
	}
	s.render.DrawSprites(s.canvas, s.world, s.camera)
	s.light.DrawDarkness(s.canvas, s.camera, tilePx, s.lightParams.MaxAlpha)

	if s.showHUD {
		s.drawHUD()
	}
	if !s.state.Simulating() {
		s.drawPaused()
	}
	return s.canvas
}

// HUDLines returns the debug overlay text
func (s *Session) HUDLines() []string {
	tx, ty := s.cursor[0], s.cursor[1]
	lv := s.lightParams.Ambient
	if s.light != nil {
		lv = s.light.Sample(tx, ty)
	}
	lines := []string{
		fmt.Sprintf("tile %d,%d id %d light %d", tx, ty, s.tiles.Get(tx, ty), lv),
	}
	tr, okT := s.world.Transform.Get(s.player)
	vel, okV := s.world.Velocity.Get(s.player)
	col, okC := s.world.Collider.Get(s.player)
	if okT && okV && okC {
		lines = append(lines, fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f ground %t",
			tr.Pos.X(), tr.Pos.Y(), vel.V.X(), vel.V.Y(), col.OnGround))
	}
	lines = append(lines, controlHint)
	return lines
}

func (s *Session) drawHUD() {
	y := s.canvas.H - hudBottom
	step := raster.LineHeight(hudScale) + 2*hudScale
	for _, line := range s.HUDLines() {
		s.canvas.DrawText(hudMargin, y, hudScale, s.hudColor, line)
		y += step
	}
}

func (s *Session) drawPaused() {
	const text = "paused"
	s.canvas.FillRect(0, 0, s.canvas.W, s.canvas.H, raster.RGBA(0, 0, 0, 128))
	w := raster.TextWidth(text, 4)
	s.canvas.DrawText((s.canvas.W-w)/2, (s.canvas.H-raster.LineHeight(4))/2, 4, raster.White, text)
}
