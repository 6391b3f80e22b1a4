package raster

import "math"

// BlitOptions controls sampling and compositing
type BlitOptions struct {
	Blend    bool  // src-over for translucent texels; otherwise overwrite
	Bilinear bool  // four-tap filtering; otherwise nearest
	Tint     Color // multiplied into each texel; zero means White
}

// DefaultBlit blends with bilinear filtering and no tint
var DefaultBlit = BlitOptions{Blend: true, Bilinear: true, Tint: White}

// Blit scales the source rectangle (sx, sy, sw, sh) of img onto the destination
// rectangle (dx, dy, dw, dh). Nothing is drawn when img is empty, the destination
// has zero size, or the source has a non-positive size.
func (c *Canvas) Blit(dx, dy, dw, dh int, img *Image, sx, sy, sw, sh int, opt BlitOptions) {
	if img.Empty() {
		return
	}
	if dw == 0 || dh == 0 || sw <= 0 || sh <= 0 {
		return
	}
	r, ok := c.clipSpan(dx, dy, dw, dh)
	if !ok {
		return
	}
	tint := opt.Tint
	if tint == 0 {
		tint = White
	}

	for y := r.Y0; y <= r.Y1; y++ {
		v := float64(y-dy) / float64(dh)
		py := float64(sy) + v*float64(sh)
		row := c.Pix[y*c.W : y*c.W+c.W]

		for x := r.X0; x <= r.X1; x++ {
			u := float64(x-dx) / float64(dw)
			px := float64(sx) + u*float64(sw)

			var src Color
			if opt.Bilinear {
				src = sampleBilinear(img, px, py)
			} else {
				src = img.At(int(px+0.5), int(py+0.5))
			}
			src = Mul(src, tint)

			if !opt.Blend || src.A() == 255 {
				row[x] = src
			} else {
				row[x] = BlendOver(row[x], src)
			}
		}
	}
}

// BlitImage draws the whole image scaled into the destination rectangle
func (c *Canvas) BlitImage(dx, dy, dw, dh int, img *Image, opt BlitOptions) {
	if img == nil {
		return
	}
	c.Blit(dx, dy, dw, dh, img, 0, 0, img.W, img.H, opt)
}

func sampleBilinear(img *Image, u, v float64) Color {
	x0, y0 := int(math.Floor(u)), int(math.Floor(v))
	tx, ty := u-float64(x0), v-float64(y0)

	c00 := img.At(x0, y0)
	c10 := img.At(x0+1, y0)
	c01 := img.At(x0, y0+1)
	c11 := img.At(x0+1, y0+1)

	ch := func(get func(Color) uint32) uint32 {
		top := lerp(float64(get(c00)), float64(get(c10)), tx)
		bot := lerp(float64(get(c01)), float64(get(c11)), tx)
		return uint32(lerp(top, bot, ty))
	}
	return Color(ch(Color.A)<<24 | ch(Color.R)<<16 | ch(Color.G)<<8 | ch(Color.B))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
