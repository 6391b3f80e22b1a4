package world

// World is an unbounded tile grid stored as lazily generated chunks.
// Chunks are created on first access and never evicted.
type World struct {
	size   int
	gen    Generator
	chunks map[ChunkCoord]*Chunk
}

// New creates an empty world. A non-positive size selects DefaultChunkSize;
// a nil generator selects DefaultTerrain.
func New(size int, gen Generator) *World {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if gen == nil {
		gen = DefaultTerrain()
	}
	return &World{
		size:   size,
		gen:    gen,
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// ChunkSize returns the chunk edge length in tiles
func (w *World) ChunkSize() int {
	return w.size
}

// TileToChunk splits a world tile coordinate into its chunk and the local
// offset inside it. Local coordinates are always in [0, ChunkSize).
func (w *World) TileToChunk(wx, wy int) (ChunkCoord, int, int) {
	cx, cy := FloorDiv(wx, w.size), FloorDiv(wy, w.size)
	return ChunkCoord{cx, cy}, wx - cx*w.size, wy - cy*w.size
}

// Get returns the tile at (wx, wy), generating its chunk if needed
func (w *World) Get(wx, wy int) Tile {
	coord, lx, ly := w.TileToChunk(wx, wy)
	return w.chunk(coord).At(lx, ly)
}

// Set overwrites the tile at (wx, wy), generating its chunk if needed
func (w *World) Set(wx, wy int, t Tile) {
	coord, lx, ly := w.TileToChunk(wx, wy)
	w.chunk(coord).Set(lx, ly, t)
}

// IsSolid reports whether the tile at (wx, wy) is solid
func (w *World) IsSolid(wx, wy int) bool {
	return Solid(w.Get(wx, wy))
}

// ChunkAt returns an already generated chunk without generating it
func (w *World) ChunkAt(coord ChunkCoord) (*Chunk, bool) {
	c, ok := w.chunks[coord]
	return c, ok
}

// ChunkCount returns the number of generated chunks
func (w *World) ChunkCount() int {
	return len(w.chunks)
}

func (w *World) chunk(coord ChunkCoord) *Chunk {
	if c, ok := w.chunks[coord]; ok {
		return c
	}
	c := newChunk(coord, w.size, w.gen)
	w.chunks[coord] = c
	return c
}
