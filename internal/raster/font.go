package raster

// Built-in 5×7 bitmap font. Each row is 5 bits, MSB (bit 4) is the leftmost column.
const (
	glyphW   = 5
	glyphH   = 7
	glyphAdv = 6 // advance per scale unit
	tabWidth = 4 // tab advance in glyphs
)

var unknownGlyph = [glyphH]uint8{0x0E, 0x11, 0x02, 0x04, 0x04, 0x00, 0x04}

var glyphs = map[rune][glyphH]uint8{
	' ': {},
	'.': {0, 0, 0, 0, 0, 0, 0x04},
	',': {0, 0, 0, 0, 0x04, 0x04, 0x08},
	'!': {0x04, 0x04, 0x04, 0x04, 0x04, 0, 0x04},
	'-': {0, 0, 0, 0x1F, 0, 0, 0},
	'+': {0, 0x04, 0x04, 0x1F, 0x04, 0x04, 0},
	':': {0, 0x04, 0, 0, 0x04, 0, 0},
	'/': {0x01, 0x02, 0x04, 0x08, 0x10, 0, 0},
	'(': {0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02},
	')': {0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08},
	'=': {0, 0, 0x1F, 0, 0x1F, 0, 0},

	'0': {0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E},
	'1': {0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'2': {0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F},
	'3': {0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E},
	'4': {0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02},
	'5': {0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E},
	'6': {0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E},
	'7': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08},
	'8': {0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E},
	'9': {0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C},

	'A': {0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'B': {0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E},
	'C': {0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E},
	'D': {0x1C, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1C},
	'E': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F},
	'F': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10},
	'G': {0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0E},
	'H': {0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'I': {0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'J': {0x07, 0x02, 0x02, 0x02, 0x12, 0x12, 0x0C},
	'K': {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11},
	'L': {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F},
	'M': {0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11},
	'N': {0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x11},
	'O': {0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'P': {0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10},
	'Q': {0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D},
	'R': {0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11},
	'S': {0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E},
	'T': {0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04},
	'U': {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'V': {0x11, 0x11, 0x11, 0x11, 0x0A, 0x0A, 0x04},
	'W': {0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0A},
	'X': {0x11, 0x0A, 0x0A, 0x04, 0x0A, 0x0A, 0x11},
	'Y': {0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x04},
	'Z': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F},
}

// Glyph returns the bitmap rows for r. Lower case folds to upper case;
// anything without a glyph renders as '?'.
func Glyph(r rune) [glyphH]uint8 {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if g, ok := glyphs[r]; ok {
		return g
	}
	return unknownGlyph
}

// LineHeight is the glyph height at the given scale, excluding the line gap
func LineHeight(scale int) int {
	return glyphH * scale
}

// TextWidth returns the pixel width of the widest line of s
func TextWidth(s string, scale int) int {
	adv := glyphAdv * scale
	w, best := 0, 0
	for _, r := range s {
		switch r {
		case '\r':
		case '\n':
			best = max(best, w)
			w = 0
		case '\t':
			w += tabWidth * adv
		default:
			w += adv
		}
	}
	return max(best, w)
}

// DrawText renders s with its top-left corner at (x, y).
// Each lit font pixel becomes a scale×scale block.
func (c *Canvas) DrawText(x, y, scale int, col Color, s string) {
	if scale <= 0 {
		return
	}
	adv := glyphAdv * scale
	lineStep := LineHeight(scale) + 2*scale

	cx, cy := x, y
	for _, r := range s {
		switch r {
		case '\r':
			continue
		case '\n':
			cx = x
			cy += lineStep
			continue
		case '\t':
			cx += tabWidth * adv
			continue
		}

		rows := Glyph(r)
		for ry, bits := range rows {
			for rx := 0; rx < glyphW; rx++ {
				if bits&(1<<(glyphW-1-rx)) != 0 {
					c.FillRect(cx+rx*scale, cy+ry*scale, scale, scale, col)
				}
			}
		}
		cx += adv
	}
}
