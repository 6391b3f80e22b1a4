package camera

import "math"

// TileRect is an inclusive rectangle of tile coordinates
type TileRect struct {
	X0, Y0, X1, Y1 int
}

// W returns the column count, zero when empty
func (r TileRect) W() int { return max(r.X1-r.X0+1, 0) }

// H returns the row count, zero when empty
func (r TileRect) H() int { return max(r.Y1-r.Y0+1, 0) }

// Contains reports whether tile (x, y) lies inside r
func (r TileRect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// VisibleTiles returns the tiles covered by the viewport, grown by margin tiles
// on every side. Rotation is ignored; zero zoom is treated as one.
func (c *Camera) VisibleTiles(tilePx, margin int) TileRect {
	if tilePx <= 0 {
		return TileRect{0, 0, -1, -1}
	}
	invZ := 1.0
	if c.Zoom != 0 {
		invZ = 1 / c.Zoom
	}
	halfW := c.Viewport.X() * 0.5 * invZ
	halfH := c.Viewport.Y() * 0.5 * invZ
	ts := float64(tilePx)

	return TileRect{
		X0: int(math.Floor((c.Pos.X()-halfW)/ts)) - margin,
		X1: int(math.Floor((c.Pos.X()+halfW)/ts)) + margin,
		Y0: int(math.Floor((c.Pos.Y()-halfH)/ts)) - margin,
		Y1: int(math.Floor((c.Pos.Y()+halfH)/ts)) + margin,
	}
}

// TileAt returns the tile containing world point (x, y)
func TileAt(x, y float64, tilePx int) (int, int) {
	ts := float64(tilePx)
	return int(math.Floor(x / ts)), int(math.Floor(y / ts))
}
