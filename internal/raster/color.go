package raster

import "image/color"

// Color is a packed 0xAARRGGBB pixel
type Color uint32

// Common colours
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
)

// RGBA packs four 8-bit channels
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB packs an opaque colour
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

func (c Color) A() uint32 { return uint32(c>>24) & 0xFF }
func (c Color) R() uint32 { return uint32(c>>16) & 0xFF }
func (c Color) G() uint32 { return uint32(c>>8) & 0xFF }
func (c Color) B() uint32 { return uint32(c) & 0xFF }

// WithAlpha returns c with its alpha channel replaced
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// NRGBA converts to the standard library's non-premultiplied colour
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c.R()), G: uint8(c.G()), B: uint8(c.B()), A: uint8(c.A())}
}

// FromColor converts any image/color value to a packed Color
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// BlendOver composites src over dst in the 0-255 integer domain.
// The result is always opaque unless src is fully transparent.
func BlendOver(dst, src Color) Color {
	sa := src.A()
	if sa == 255 {
		return src
	}
	if sa == 0 {
		return dst
	}
	ia := 255 - sa
	r := (src.R()*sa + dst.R()*ia) / 255
	g := (src.G()*sa + dst.G()*ia) / 255
	b := (src.B()*sa + dst.B()*ia) / 255
	return Color(0xFF<<24 | r<<16 | g<<8 | b)
}

// Mul multiplies every channel of c by tint, alpha included
func Mul(c, tint Color) Color {
	if tint == White {
		return c
	}
	r := c.R() * tint.R() / 255
	g := c.G() * tint.G() / 255
	b := c.B() * tint.B() / 255
	a := c.A() * tint.A() / 255
	return Color(a<<24 | r<<16 | g<<8 | b)
}
