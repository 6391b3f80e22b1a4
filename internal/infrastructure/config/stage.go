package config

// StageConfig is the root config for stage JSON files.
// A stage is a hand-authored patch stamped over the generated terrain.
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Origin      TileConfig                   `json:"origin"` // world tile of row 0, column 0
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
	Lights      []LightSpawnConfig           `json:"lights"`
}

type TileConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

// TileMappingConfig maps a layer character to a tile id.
// Characters missing from the mapping leave the generated tile alone.
type TileMappingConfig struct {
	Type string `json:"type"`
	Tile int    `json:"tile"`
}

type LightSpawnConfig struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Radius    int     `json:"radius"`
	Intensity int     `json:"intensity"`
}

// StampFunc receives one mapped cell of a stage
type StampFunc func(tx, ty int, tile uint16)

// Stamp calls fn for every mapped character of the collision layer
func (s *StageConfig) Stamp(fn StampFunc) int {
	n := 0
	for row, line := range s.Layers.Collision {
		col := 0
		for _, ch := range line {
			if m, ok := s.TileMapping[string(ch)]; ok {
				fn(s.Origin.X+col, s.Origin.Y+row, uint16(m.Tile))
				n++
			}
			col++
		}
	}
	return n
}
