package world

import "math"

// Generator produces the initial tile at a world tile coordinate.
// Implementations must be pure: the same coordinate always yields the same tile,
// regardless of which chunk is generated first.
type Generator interface {
	Generate(wx, wy int) Tile
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(wx, wy int) Tile

// Generate calls f(wx, wy)
func (f GeneratorFunc) Generate(wx, wy int) Tile {
	return f(wx, wy)
}

// Flat returns a generator that fills everything at or below surface with fill
func Flat(surface int, fill Tile) Generator {
	return GeneratorFunc(func(_, wy int) Tile {
		if wy >= surface {
			return fill
		}
		return Empty
	})
}

// SineTerrain is a layered sine height field: a grass surface row,
// a dirt band below it and stone underneath.
// Positive y points down, so "below" means larger wy.
type SineTerrain struct {
	Seed       int     // horizontal phase offset in tiles
	BaseHeight float64 // mean surface row
	Amp1       float64
	Freq1      float64
	Amp2       float64
	Freq2      float64
	DirtDepth  int
}

// DefaultTerrain returns the stock rolling-hills terrain
func DefaultTerrain() SineTerrain {
	return SineTerrain{
		BaseHeight: 18,
		Amp1:       4,
		Freq1:      0.08,
		Amp2:       10,
		Freq2:      0.02,
		DirtDepth:  10,
	}
}

// Surface returns the grass row for world column wx
func (s SineTerrain) Surface(wx int) int {
	x := float64(wx + s.Seed)
	h := math.Sin(x*s.Freq1)*s.Amp1 + math.Sin(x*s.Freq2)*s.Amp2
	return int(s.BaseHeight + h)
}

// Generate implements Generator
func (s SineTerrain) Generate(wx, wy int) Tile {
	ground := s.Surface(wx)
	switch {
	case wy > ground+s.DirtDepth:
		return Stone
	case wy > ground:
		return Dirt
	case wy == ground:
		return Grass
	default:
		return Empty
	}
}
