package raster

// Image is a CPU-side pixel grid owned by whoever loaded it.
// Sprites and tilesets only hold references.
type Image struct {
	W, H int
	Pix  []Color // row-major, len W*H
}

// NewImage allocates a transparent w×h image
func NewImage(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{W: w, H: h, Pix: make([]Color, w*h)}
}

// Empty reports whether the image has no pixels to sample
func (img *Image) Empty() bool {
	return img == nil || img.W <= 0 || img.H <= 0 || len(img.Pix) < img.W*img.H
}

// At returns the pixel at (x, y) with coordinates clamped to the edges
func (img *Image) At(x, y int) Color {
	x = clampInt(x, 0, img.W-1)
	y = clampInt(y, 0, img.H-1)
	return img.Pix[y*img.W+x]
}

// Set writes a pixel; out-of-range writes are ignored
func (img *Image) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= img.W || y >= img.H {
		return
	}
	img.Pix[y*img.W+x] = c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
