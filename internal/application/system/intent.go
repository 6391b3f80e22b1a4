package system

import "github.com/younwookim/tileforge/internal/world"

// Intent is a world edit requested by input and applied by EditSystem
type Intent interface {
	isIntent()
}

// DigIntent clears a solid tile
type DigIntent struct {
	TX, TY int
}

func (DigIntent) isIntent() {}

// PlaceIntent fills an empty tile
type PlaceIntent struct {
	TX, TY int
	Tile   world.Tile
}

func (PlaceIntent) isIntent() {}

// TileEditor reads and writes world tiles
type TileEditor interface {
	Get(tx, ty int) world.Tile
	Set(tx, ty int, t world.Tile)
}

// EditSystem applies queued tile edits once per frame
type EditSystem struct {
	tiles   TileEditor
	pending []Intent
}

// NewEditSystem creates a new edit system
func NewEditSystem(tiles TileEditor) *EditSystem {
	return &EditSystem{tiles: tiles, pending: make([]Intent, 0, 4)}
}

// Queue records an edit for the next Apply
func (s *EditSystem) Queue(i Intent) {
	s.pending = append(s.pending, i)
}

// Apply performs queued edits in order and returns how many changed a tile.
// Digging air and placing onto a solid tile are ignored.
func (s *EditSystem) Apply() int {
	changed := 0
	for _, i := range s.pending {
		switch in := i.(type) {
		case DigIntent:
			if world.Solid(s.tiles.Get(in.TX, in.TY)) {
				s.tiles.Set(in.TX, in.TY, world.Empty)
				changed++
			}
		case PlaceIntent:
			if !world.Solid(s.tiles.Get(in.TX, in.TY)) {
				s.tiles.Set(in.TX, in.TY, in.Tile)
				changed++
			}
		}
	}
	s.pending = s.pending[:0]
	return changed
}
