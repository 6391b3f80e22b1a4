package raster

// Rect is an inclusive pixel rectangle
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether r covers no pixels
func (r Rect) Empty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

// Canvas is a framebuffer with a clip rectangle.
// Every primitive writes only inside the clip.
type Canvas struct {
	W, H int
	Pix  []Color
	clip Rect
}

// NewCanvas allocates a w×h framebuffer cleared to transparent black
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the buffer when the size changes and resets the clip.
// Pixel contents are undefined afterwards.
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w != c.W || h != c.H || len(c.Pix) != w*h {
		c.W, c.H = w, h
		c.Pix = make([]Color, w*h)
	}
	c.ResetClip()
}

// Clip returns the current clip rectangle
func (c *Canvas) Clip() Rect {
	return c.clip
}

// ResetClip sets the clip to the whole canvas
func (c *Canvas) ResetClip() {
	c.clip = Rect{0, 0, c.W - 1, c.H - 1}
}

// SetClip intersects the given rectangle with the canvas bounds
func (c *Canvas) SetClip(x, y, w, h int) {
	c.clip = Rect{
		X0: max(x, 0),
		Y0: max(y, 0),
		X1: min(x+w-1, c.W-1),
		Y1: min(y+h-1, c.H-1),
	}
}

// At returns the pixel at (x, y), or Transparent outside the canvas
func (c *Canvas) At(x, y int) Color {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return Transparent
	}
	return c.Pix[y*c.W+x]
}

// Clear fills the whole canvas, ignoring the clip
func (c *Canvas) Clear(col Color) {
	for i := range c.Pix {
		c.Pix[i] = col
	}
}

// FillRect fills w×h pixels at (x, y). A negative size spans from x+w-1 to x.
// Opaque colours overwrite; translucent ones blend.
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	if w == 0 || h == 0 {
		return
	}
	r, ok := c.clipSpan(x, y, w, h)
	if !ok {
		return
	}
	opaque := col.A() == 255
	for yy := r.Y0; yy <= r.Y1; yy++ {
		row := c.Pix[yy*c.W : yy*c.W+c.W]
		if opaque {
			for xx := r.X0; xx <= r.X1; xx++ {
				row[xx] = col
			}
			continue
		}
		for xx := r.X0; xx <= r.X1; xx++ {
			row[xx] = BlendOver(row[xx], col)
		}
	}
}

// OutlineRect draws a border of thickness t inside the w×h rectangle
func (c *Canvas) OutlineRect(x, y, w, h, t int, col Color) {
	if t <= 0 {
		return
	}
	c.FillRect(x, y, w, t, col)
	c.FillRect(x, y+h-t, w, t, col)
	c.FillRect(x, y, t, h, col)
	c.FillRect(x+w-t, y, t, h, col)
}

// Line draws a blended Bresenham line including both endpoints
func (c *Canvas) Line(x0, y0, x1, y1 int, col Color) {
	dx, sx := absInt(x1-x0), 1
	if x0 >= x1 {
		sx = -1
	}
	dy, sy := -absInt(y1-y0), 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if c.inClip(x0, y0) {
			i := y0*c.W + x0
			c.Pix[i] = BlendOver(c.Pix[i], col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle blends every pixel within radius r of (cx, cy)
func (c *Canvas) FillCircle(cx, cy, r int, col Color) {
	if r <= 0 {
		return
	}
	x0, x1 := max(cx-r, c.clip.X0), min(cx+r, c.clip.X1)
	y0, y1 := max(cy-r, c.clip.Y0), min(cy+r, c.clip.Y1)
	rr := r * r
	for y := y0; y <= y1; y++ {
		dy2 := (y - cy) * (y - cy)
		for x := x0; x <= x1; x++ {
			if (x-cx)*(x-cx)+dy2 <= rr {
				i := y*c.W + x
				c.Pix[i] = BlendOver(c.Pix[i], col)
			}
		}
	}
}

// clipSpan normalises a signed-size rectangle and intersects it with the clip
func (c *Canvas) clipSpan(x, y, w, h int) (Rect, bool) {
	x0, y0, x1, y1 := x, y, x+w-1, y+h-1
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	r := Rect{
		X0: max(x0, c.clip.X0),
		Y0: max(y0, c.clip.Y0),
		X1: min(x1, c.clip.X1),
		Y1: min(y1, c.clip.Y1),
	}
	return r, !r.Empty()
}

func (c *Canvas) inClip(x, y int) bool {
	return x >= c.clip.X0 && x <= c.clip.X1 && y >= c.clip.Y0 && y <= c.clip.Y1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
