package world

// DefaultChunkSize is the chunk edge length in tiles
const DefaultChunkSize = 32

// ChunkCoord addresses a chunk in chunk units
type ChunkCoord struct {
	X, Y int
}

// Chunk is a Size×Size block of tiles, row-major
type Chunk struct {
	Coord ChunkCoord
	Size  int
	Tiles []Tile
}

func newChunk(coord ChunkCoord, size int, gen Generator) *Chunk {
	c := &Chunk{Coord: coord, Size: size, Tiles: make([]Tile, size*size)}
	ox, oy := coord.X*size, coord.Y*size
	for ly := 0; ly < size; ly++ {
		for lx := 0; lx < size; lx++ {
			c.Tiles[ly*size+lx] = gen.Generate(ox+lx, oy+ly)
		}
	}
	return c
}

// At returns the tile at local coordinates in [0, Size)
func (c *Chunk) At(lx, ly int) Tile {
	return c.Tiles[ly*c.Size+lx]
}

// Set writes the tile at local coordinates in [0, Size)
func (c *Chunk) Set(lx, ly int, t Tile) {
	c.Tiles[ly*c.Size+lx] = t
}
