package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/tileforge/internal/camera"
	"github.com/younwookim/tileforge/internal/raster"
)

// DrawDarkness composites black over every grid tile's screen footprint,
// darker where the light is lower. It must run after everything it should darken.
func (g *Grid) DrawDarkness(dst *raster.Canvas, cam *camera.Camera, tilePx, maxAlpha int) {
	if g.W <= 0 || g.H <= 0 {
		return
	}
	view := cam.View()
	size := int(float64(tilePx) * cam.Zoom)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			a := DarknessAlpha(g.L[y*g.W+x], maxAlpha)
			if a == 0 {
				continue
			}
			wp := mgl64.Vec3{float64((g.OX + x) * tilePx), float64((g.OY + y) * tilePx), 1}
			sp := view.Mul3x1(wp)
			sx := int(math.Floor(sp.X()))
			sy := int(math.Floor(sp.Y()))
			dst.FillRect(sx, sy, size, size, raster.RGBA(0, 0, 0, a))
		}
	}
}
