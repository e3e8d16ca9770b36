package game

// ChunkKey identifies a chunk on the integer grid.
type ChunkKey struct {
	X, Z int
}

// Chunk is one streamed terrain tile. Vertices are interleaved
// position+color (6 floats); the mesh is a pure function of the key and is
// never mutated after creation. GL handles are filled in lazily by the
// renderer.
type Chunk struct {
	Key ChunkKey

	Vertices []float32
	Indices  []uint32

	VAO, VBO, EBO uint32
	NeedsUpload   bool
}

// bandColor maps a vertex height to its visual color band. These bands are
// cosmetic and coarser than the gameplay classification.
func bandColor(height float64) (r, g, b float32) {
	switch {
	case height < RoadMaxHeight:
		return 0.3, 0.3, 0.3
	case height < GrassMaxHeight:
		return 0.35, 0.55, 0.25
	default:
		return 0.45, 0.5, 0.45
	}
}

// NewChunk synthesizes the mesh for a grid cell: a (ChunkTiles+1)² vertex
// lattice sampled from the height field, two triangles per tile with
// consistent winding.
func NewChunk(key ChunkKey) *Chunk {
	c := &Chunk{
		Key:         key,
		Vertices:    make([]float32, 0, (ChunkTiles+1)*(ChunkTiles+1)*6),
		Indices:     make([]uint32, 0, ChunkTiles*ChunkTiles*6),
		NeedsUpload: true,
	}

	for z := 0; z <= ChunkTiles; z++ {
		for x := 0; x <= ChunkTiles; x++ {
			worldX := float64(key.X*ChunkTiles+x) * TileSize
			worldZ := float64(key.Z*ChunkTiles+z) * TileSize
			height := TerrainHeight(worldX, worldZ)

			r, g, b := bandColor(height)
			c.Vertices = append(c.Vertices,
				float32(worldX), float32(height), float32(worldZ),
				r, g, b,
			)
		}
	}

	for z := 0; z < ChunkTiles; z++ {
		for x := 0; x < ChunkTiles; x++ {
			topLeft := uint32(z*(ChunkTiles+1) + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*(ChunkTiles+1) + x)
			bottomRight := bottomLeft + 1

			c.Indices = append(c.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return c
}

// chunkGL carries the GL handles of an evicted chunk until the renderer
// deletes them. Keeps all GL calls out of the simulation tick.
type chunkGL struct {
	VAO, VBO, EBO uint32
}
