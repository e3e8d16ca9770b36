package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkCoord_FloorsNegatives(t *testing.T) {
	tests := []struct {
		name string
		x, z float64
		want ChunkKey
	}{
		{"origin", 0, 0, ChunkKey{0, 0}},
		{"inside first cell", ChunkWorldSize - 0.001, 0, ChunkKey{0, 0}},
		{"cell boundary", ChunkWorldSize, 0, ChunkKey{1, 0}},
		{"negative floors down", -0.001, -0.001, ChunkKey{-1, -1}},
		{"far negative", -ChunkWorldSize * 2.5, ChunkWorldSize * 1.5, ChunkKey{-3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChunkCoord(tt.x, tt.z))
		})
	}
}

func TestEnsureChunks_LoadsRetentionSquare(t *testing.T) {
	w := NewWorld(1)
	w.EnsureChunks(0, 0)

	side := 2*ChunkRadius + 1
	require.Len(t, w.Chunks, side*side)

	for z := -ChunkRadius; z <= ChunkRadius; z++ {
		for x := -ChunkRadius; x <= ChunkRadius; x++ {
			_, ok := w.Chunks[ChunkKey{X: x, Z: z}]
			assert.True(t, ok, "missing chunk (%d,%d)", x, z)
		}
	}
}

func TestEnsureChunks_IdempotentForStationaryPlayer(t *testing.T) {
	w := NewWorld(1)
	w.EnsureChunks(10, 10)

	before := make(map[ChunkKey]*Chunk, len(w.Chunks))
	for k, c := range w.Chunks {
		before[k] = c
	}

	w.EnsureChunks(10, 10)
	require.Len(t, w.Chunks, len(before))
	for k, c := range w.Chunks {
		assert.Same(t, before[k], c, "chunk %v was recreated", k)
	}
}

func TestEnsureChunks_EvictsBeyondHysteresis(t *testing.T) {
	w := NewWorld(1)
	w.EnsureChunks(0, 0)

	// Step just across one cell boundary: nothing is farther than
	// radius+slack yet, so nothing is evicted.
	w.EnsureChunks(ChunkWorldSize, 0)
	_, ok := w.Chunks[ChunkKey{X: -ChunkRadius, Z: 0}]
	assert.True(t, ok, "chunk within hysteresis margin must survive")

	// Jump far away: everything around the origin is evicted.
	far := float64(100) * ChunkWorldSize
	w.EnsureChunks(far, far)
	for key := range w.Chunks {
		assert.LessOrEqual(t, absI(key.X-100), ChunkRadius+ChunkEvictionSlack)
		assert.LessOrEqual(t, absI(key.Z-100), ChunkRadius+ChunkEvictionSlack)
	}
}

func TestEnsureChunks_RetiresUploadedHandles(t *testing.T) {
	w := NewWorld(1)
	w.EnsureChunks(0, 0)

	// Pretend the renderer uploaded one chunk.
	c := w.Chunks[ChunkKey{X: 0, Z: 0}]
	c.VAO, c.VBO, c.EBO = 11, 12, 13

	far := float64(50) * ChunkWorldSize
	w.EnsureChunks(far, far)

	require.Len(t, w.Retired, 1, "only uploaded chunks leave handles behind")
	assert.Equal(t, chunkGL{VAO: 11, VBO: 12, EBO: 13}, w.Retired[0])
}

func TestRespawn_Populations(t *testing.T) {
	w := NewWorld(42)
	w.Respawn()

	require.Len(t, w.Puddles, PuddleCount)
	require.Len(t, w.Buildings, BuildingCount)

	for _, p := range w.Puddles {
		assert.GreaterOrEqual(t, p.Radius, float64(PuddleMinRadius))
		assert.LessOrEqual(t, p.Radius, float64(PuddleMaxRadius))
		assert.LessOrEqual(t, p.X, float64(PuddleSpread))
		assert.GreaterOrEqual(t, p.X, float64(-PuddleSpread))
	}

	for _, b := range w.Buildings {
		assert.Equal(t, b.Y, SampleTerrain(b.X, b.Z, w.Puddles).Height, "building snapped to terrain")
		assert.Equal(t, float64(BuildingWidth), b.Width)
		assert.Equal(t, float64(BuildingDepth), b.Depth)
		assert.Equal(t, float64(BuildingHeight), b.Height)
	}
}

func TestRespawn_ReplacesCollections(t *testing.T) {
	w := NewWorld(7)
	w.Respawn()
	first := append([]Puddle(nil), w.Puddles...)

	w.Respawn()
	require.Len(t, w.Puddles, PuddleCount)
	assert.NotEqual(t, first, w.Puddles, "respawn draws fresh positions")
}
