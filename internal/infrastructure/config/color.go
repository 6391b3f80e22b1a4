package config

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rotisserie/eris"

	"github.com/younwookim/tileforge/internal/raster"
)

// ParseColor parses "#rrggbb", "#rgb" or "#rrggbbaa" into a packed colour
func ParseColor(s string) (raster.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7 && len(s) != 9) {
		return 0, eris.Errorf("invalid colour %q", s)
	}
	alpha := uint64(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, eris.Wrapf(err, "invalid alpha in colour %q", s)
		}
		alpha = a
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, eris.Wrapf(err, "invalid colour %q", s)
	}
	r, g, b := c.RGB255()
	return raster.RGBA(r, g, b, uint8(alpha)), nil
}

// ColorOr parses s, returning fallback when s is empty or invalid
func ColorOr(s string, fallback raster.Color) raster.Color {
	if s == "" {
		return fallback
	}
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// ParsePalette converts the render palette into tile id -> colour
func (r RenderConfig) ParsePalette() (map[uint16]raster.Color, error) {
	out := make(map[uint16]raster.Color, len(r.Palette))
	for key, hex := range r.Palette {
		id, err := strconv.ParseUint(key, 10, 16)
		if err != nil {
			return nil, eris.Wrapf(err, "invalid palette tile id %q", key)
		}
		c, err := ParseColor(hex)
		if err != nil {
			return nil, eris.Wrapf(err, "palette entry %s", key)
		}
		out[uint16(id)] = c
	}
	return out, nil
}
