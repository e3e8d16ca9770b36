package game

import "math"

// Building is a static axis-aligned obstacle. Immutable after spawn; Y is
// snapped to terrain height at spawn time.
type Building struct {
	X, Y, Z float64
	Width   float64
	Depth   float64
	Height  float64
}

// World owns the static collections (buildings, puddles) and the streamed
// chunk map. Mutated only from the simulation tick; no locking needed.
type World struct {
	Puddles   []Puddle
	Buildings []Building

	Chunks  map[ChunkKey]*Chunk
	Retired []chunkGL // GL handles of evicted chunks, drained by the renderer

	rng *Rand
}

func NewWorld(seed uint64) *World {
	return &World{
		Chunks: make(map[ChunkKey]*Chunk),
		rng:    NewRand(splitmix64(seed)),
	}
}

// Respawn regenerates puddles and buildings from the world RNG. Called on
// every game (re)start.
func (w *World) Respawn() {
	w.spawnPuddles()
	w.spawnBuildings()
}

func (w *World) spawnPuddles() {
	w.Puddles = w.Puddles[:0]
	for i := 0; i < PuddleCount; i++ {
		w.Puddles = append(w.Puddles, Puddle{
			X:      w.rng.RangeF(-PuddleSpread, PuddleSpread),
			Z:      w.rng.RangeF(-PuddleSpread, PuddleSpread),
			Radius: w.rng.RangeF(PuddleMinRadius, PuddleMaxRadius),
		})
	}
}

func (w *World) spawnBuildings() {
	w.Buildings = w.Buildings[:0]
	for i := 0; i < BuildingCount; i++ {
		x := w.rng.RangeF(-BuildingSpread, BuildingSpread)
		z := w.rng.RangeF(-BuildingSpread, BuildingSpread)
		w.Buildings = append(w.Buildings, Building{
			X:      x,
			Y:      SampleTerrain(x, z, w.Puddles).Height,
			Z:      z,
			Width:  BuildingWidth,
			Depth:  BuildingDepth,
			Height: BuildingHeight,
		})
	}
}

// Sample classifies a world coordinate against the current puddle set.
func (w *World) Sample(x, z float64) TerrainInfo {
	return SampleTerrain(x, z, w.Puddles)
}

// ChunkCoord returns the chunk grid cell containing a world coordinate.
func ChunkCoord(x, z float64) ChunkKey {
	return ChunkKey{
		X: int(math.Floor(x / ChunkWorldSize)),
		Z: int(math.Floor(z / ChunkWorldSize)),
	}
}

// EnsureChunks loads every chunk within ChunkRadius of the player's cell and
// evicts chunks beyond ChunkRadius+ChunkEvictionSlack. The slack keeps the
// boundary from thrashing as the player crosses cell edges. Idempotent for a
// stationary player.
func (w *World) EnsureChunks(playerX, playerZ float64) {
	center := ChunkCoord(playerX, playerZ)

	for z := center.Z - ChunkRadius; z <= center.Z+ChunkRadius; z++ {
		for x := center.X - ChunkRadius; x <= center.X+ChunkRadius; x++ {
			key := ChunkKey{X: x, Z: z}
			if _, ok := w.Chunks[key]; !ok {
				w.Chunks[key] = NewChunk(key)
			}
		}
	}

	for key, c := range w.Chunks {
		dx := absI(key.X - center.X)
		dz := absI(key.Z - center.Z)
		if dx > ChunkRadius+ChunkEvictionSlack || dz > ChunkRadius+ChunkEvictionSlack {
			if c.VAO != 0 {
				w.Retired = append(w.Retired, chunkGL{VAO: c.VAO, VBO: c.VBO, EBO: c.EBO})
			}
			delete(w.Chunks, key)
		}
	}
}
