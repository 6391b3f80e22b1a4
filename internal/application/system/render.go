package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/tileforge/internal/camera"
	"github.com/younwookim/tileforge/internal/ecs"
	"github.com/younwookim/tileforge/internal/raster"
	"github.com/younwookim/tileforge/internal/world"
)

// Fallback tile colours when no tileset is loaded
var (
	DirtColor  = raster.RGB(92, 72, 56)
	StoneColor = raster.RGB(110, 110, 120)
	GrassColor = raster.RGB(70, 160, 80)
)

// DefaultPalette maps the built-in tile ids to their fallback colours
func DefaultPalette() map[uint16]raster.Color {
	return map[uint16]raster.Color{
		uint16(world.Dirt):  DirtColor,
		uint16(world.Stone): StoneColor,
		uint16(world.Grass): GrassColor,
	}
}

// TileSource reads world tiles
type TileSource interface {
	Get(tx, ty int) world.Tile
}

// RenderSystem rasterizes tiles and sprites through the camera
type RenderSystem struct {
	TilePx     int
	CullMargin int
	Palette    map[uint16]raster.Color
	Tileset    *raster.Tileset
	Bilinear   bool
	Blend      bool
}

// NewRenderSystem creates a render system; a nil palette selects DefaultPalette
func NewRenderSystem(tilePx, cullMargin int, palette map[uint16]raster.Color, tileset *raster.Tileset) *RenderSystem {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &RenderSystem{
		TilePx:     tilePx,
		CullMargin: cullMargin,
		Palette:    palette,
		Tileset:    tileset,
		Bilinear:   true,
		Blend:      true,
	}
}

// DrawWorld draws every non-empty tile inside the camera's visible rect
func (s *RenderSystem) DrawWorld(dst *raster.Canvas, tiles TileSource, cam *camera.Camera) {
	rect := cam.VisibleTiles(s.TilePx, s.CullMargin)
	view := cam.View()
	size := int(float64(s.TilePx) * cam.Zoom)
	opt := raster.BlitOptions{Blend: s.Blend, Bilinear: s.Bilinear, Tint: raster.White}
	useAtlas := s.Tileset.Usable()

	for ty := rect.Y0; ty <= rect.Y1; ty++ {
		for tx := rect.X0; tx <= rect.X1; tx++ {
			t := tiles.Get(tx, ty)
			if t == world.Empty {
				continue
			}
			sx, sy := s.tileOrigin(view, tx, ty)

			if useAtlas {
				ts := s.Tileset
				cx, cy := ts.Cell(int(t))
				dst.Blit(sx, sy, size, size, ts.Image, cx, cy, ts.TileW, ts.TileH, opt)
				continue
			}
			col, ok := s.Palette[uint16(t)]
			if !ok {
				col = DirtColor
			}
			dst.FillRect(sx, sy, size, size, col)
		}
	}
}

// DrawSprites draws each live sprite centred on its transform, scaled by zoom
func (s *RenderSystem) DrawSprites(dst *raster.Canvas, w *ecs.World, cam *camera.Camera) {
	view := cam.View()
	for e, sp := range w.Sprite.All() {
		if !w.Alive(e) || sp.Image.Empty() {
			continue
		}
		tr, ok := w.Transform.Get(e)
		if !ok {
			continue
		}

		p := view.Mul3x1(tr.Pos.Vec3(1))
		dx, dy := int(math.Floor(p.X())), int(math.Floor(p.Y()))

		sw, sh := sp.SW, sp.SH
		if sw <= 0 || sh <= 0 {
			sw, sh = sp.Image.W, sp.Image.H
		}
		drawW := int(float64(sw) * cam.Zoom)
		drawH := int(float64(sh) * cam.Zoom)

		dst.Blit(dx-drawW/2, dy-drawH/2, drawW, drawH, sp.Image, sp.SX, sp.SY, sw, sh,
			raster.BlitOptions{Blend: sp.Blend, Bilinear: sp.Bilinear, Tint: sp.Tint})
	}
}

// DrawHighlight outlines tile (tx, ty)
func (s *RenderSystem) DrawHighlight(dst *raster.Canvas, cam *camera.Camera, tx, ty, thickness int, col raster.Color) {
	sx, sy := s.tileOrigin(cam.View(), tx, ty)
	size := int(float64(s.TilePx) * cam.Zoom)
	dst.OutlineRect(sx, sy, size, size, thickness, col)
}

func (s *RenderSystem) tileOrigin(view mgl64.Mat3, tx, ty int) (int, int) {
	p := view.Mul3x1(mgl64.Vec3{float64(tx * s.TilePx), float64(ty * s.TilePx), 1})
	return int(math.Floor(p.X())), int(math.Floor(p.Y()))
}
