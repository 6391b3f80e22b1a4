package raster

// Tileset slices an atlas image into fixed-size cells addressed by tile id
type Tileset struct {
	Image        *Image
	TileW, TileH int
	Cols, Rows   int
}

// NewTileset builds a tileset over img. A nil image or non-positive cell size
// yields a tileset with no cells.
func NewTileset(img *Image, tw, th int) *Tileset {
	ts := &Tileset{Image: img, TileW: tw, TileH: th}
	if !img.Empty() && tw > 0 && th > 0 {
		ts.Cols = img.W / tw
		ts.Rows = img.H / th
	}
	return ts
}

// Usable reports whether the tileset can draw anything
func (t *Tileset) Usable() bool {
	return t != nil && !t.Image.Empty() && t.Cols > 0
}

// Cell returns the source rectangle origin for tile id: column id%Cols, row id/Cols
func (t *Tileset) Cell(id int) (sx, sy int) {
	return (id % t.Cols) * t.TileW, (id / t.Cols) * t.TileH
}
