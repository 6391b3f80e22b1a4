// Package present moves finished canvases onto a display surface.
package present

import "github.com/younwookim/tileforge/internal/raster"

// Presenter shows one finished frame
type Presenter interface {
	Present(c *raster.Canvas) error
}

// FillRGBA writes the canvas as premultiplied RGBA bytes.
// dst must hold at least 4*W*H bytes.
func FillRGBA(dst []byte, c *raster.Canvas) {
	for i, p := range c.Pix {
		a := p.A()
		o := i * 4
		dst[o+0] = uint8(p.R() * a / 255)
		dst[o+1] = uint8(p.G() * a / 255)
		dst[o+2] = uint8(p.B() * a / 255)
		dst[o+3] = uint8(a)
	}
}
