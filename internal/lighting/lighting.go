package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/tileforge/internal/camera"
)

// Params tunes the light grid
type Params struct {
	Ambient    uint8 // floor value for every cell and for samples outside the grid
	Margin     int   // tiles added around the visible rect
	DecayAir   uint8 // per-step loss leaving an empty cell
	DecaySolid uint8 // per-step loss leaving a solid cell
	MaxAlpha   int   // darkness overlay alpha at zero light
}

// DefaultParams returns the stock lighting parameters
func DefaultParams() Params {
	return Params{
		Ambient:    40,
		Margin:     4,
		DecayAir:   12,
		DecaySolid: 18,
		MaxAlpha:   220,
	}
}

// Source is a light emitter resolved to world pixels
type Source struct {
	Pos         mgl64.Vec2
	RadiusTiles int
	Intensity   uint8
}

// SolidQuery reports whether a world tile blocks light
type SolidQuery interface {
	IsSolid(tx, ty int) bool
}

// Grid is one frame's light values over a tile rectangle.
// Cell (0, 0) is world tile (OX, OY).
type Grid struct {
	W, H    int
	OX, OY  int
	L       []uint8
	Ambient uint8
}

type node struct {
	x, y int
	v    uint8
}

// Build computes the light grid for the camera's visible tiles.
// Each source seeds its tile; light then spreads breadth-first to the four
// neighbours, losing DecaySolid when leaving a solid cell and DecayAir otherwise.
// A cell is only rewritten when the new value is strictly brighter, so the
// fill terminates on any bounded grid.
func Build(tiles SolidQuery, cam *camera.Camera, tilePx int, sources []Source, p Params) *Grid {
	rect := cam.VisibleTiles(tilePx, p.Margin)
	g := &Grid{OX: rect.X0, OY: rect.Y0, W: rect.W(), H: rect.H(), Ambient: p.Ambient}
	if g.W <= 0 || g.H <= 0 {
		g.W, g.H = 0, 0
		return g
	}
	g.L = make([]uint8, g.W*g.H)
	for i := range g.L {
		g.L[i] = p.Ambient
	}

	queue := make([]node, 0, 4096)
	push := func(x, y int, v uint8) {
		if x < 0 || y < 0 || x >= g.W || y >= g.H {
			return
		}
		i := y*g.W + x
		if v <= g.L[i] {
			return
		}
		g.L[i] = v
		queue = append(queue, node{x, y, v})
	}

	ts := float64(tilePx)
	for _, s := range sources {
		tx := int(math.Floor(s.Pos.X() / ts))
		ty := int(math.Floor(s.Pos.Y() / ts))
		push(tx-g.OX, ty-g.OY, s.Intensity)
	}

	for qi := 0; qi < len(queue); qi++ {
		n := queue[qi]
		if n.v <= 1 {
			continue
		}
		decay := p.DecayAir
		if tiles.IsSolid(g.OX+n.x, g.OY+n.y) {
			decay = p.DecaySolid
		}
		var nv uint8
		if n.v > decay {
			nv = n.v - decay
		}
		push(n.x+1, n.y, nv)
		push(n.x-1, n.y, nv)
		push(n.x, n.y+1, nv)
		push(n.x, n.y-1, nv)
	}
	return g
}

// Sample returns the light at a world tile, or Ambient outside the grid
func (g *Grid) Sample(tx, ty int) uint8 {
	x, y := tx-g.OX, ty-g.OY
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return g.Ambient
	}
	return g.L[y*g.W+x]
}

// Rect returns the world tile rectangle covered by the grid
func (g *Grid) Rect() camera.TileRect {
	return camera.TileRect{X0: g.OX, Y0: g.OY, X1: g.OX + g.W - 1, Y1: g.OY + g.H - 1}
}

// DarknessAlpha maps a light value to overlay alpha in [0, maxAlpha]
func DarknessAlpha(l uint8, maxAlpha int) uint8 {
	a := (255 - int(l)) * maxAlpha / 255
	return uint8(max(0, min(a, maxAlpha, 255)))
}
