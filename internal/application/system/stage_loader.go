package system

import (
	"github.com/younwookim/tileforge/internal/ecs"
	"github.com/younwookim/tileforge/internal/infrastructure/config"
	"github.com/younwookim/tileforge/internal/world"
)

// TileWriter writes world tiles
type TileWriter interface {
	Set(tx, ty int, t world.Tile)
}

// LoadStage stamps a StageConfig over the world and spawns its lights.
// It returns the number of tiles written.
func LoadStage(cfg *config.StageConfig, tiles TileWriter, w *ecs.World) int {
	n := cfg.Stamp(func(tx, ty int, tile uint16) {
		tiles.Set(tx, ty, world.Tile(tile))
	})

	for _, l := range cfg.Lights {
		intensity := min(max(l.Intensity, 0), 255)
		w.CreateLight(l.X, l.Y, l.Radius, uint8(intensity))
	}

	return n
}
