package game

import "math"

// TerrainType is the gameplay classification of a point on the ground.
type TerrainType int

const (
	TerrainRoad TerrainType = iota
	TerrainGrass
	TerrainDirt
	TerrainPuddle
)

func (t TerrainType) String() string {
	switch t {
	case TerrainRoad:
		return "ROAD"
	case TerrainGrass:
		return "GRASS"
	case TerrainDirt:
		return "DIRT"
	case TerrainPuddle:
		return "PUDDLE"
	}
	return "UNKNOWN"
}

// SpeedMult returns the terrain speed modifier. Strictly decreasing:
// road > grass > dirt > puddle.
func (t TerrainType) SpeedMult() float64 {
	switch t {
	case TerrainRoad:
		return 1.5
	case TerrainGrass:
		return 0.5
	case TerrainDirt:
		return 0.3
	case TerrainPuddle:
		return 0.1
	}
	return 1.0
}

// SteerMult returns the terrain steering modifier.
func (t TerrainType) SteerMult() float64 {
	switch t {
	case TerrainRoad:
		return 1.2
	case TerrainGrass:
		return 0.7
	case TerrainDirt:
		return 0.5
	case TerrainPuddle:
		return 0.15
	}
	return 1.0
}

// TerrainInfo is the pure sampling result at a world coordinate. It is never
// stored; callers recompute it whenever needed.
type TerrainInfo struct {
	Height float64
	Type   TerrainType
}

// Puddle is a circular slick zone. Immutable after spawn.
type Puddle struct {
	X, Z   float64
	Radius float64
}

// SampleTerrain classifies a world coordinate. Height bands decide the type
// unless a puddle covers the point; the first matching puddle wins.
func SampleTerrain(x, z float64, puddles []Puddle) TerrainInfo {
	h := TerrainHeight(x, z)

	var t TerrainType
	switch {
	case h < RoadMaxHeight:
		t = TerrainRoad
	case h < GrassMaxHeight:
		t = TerrainGrass
	default:
		t = TerrainDirt
	}

	for _, p := range puddles {
		if math.Hypot(x-p.X, z-p.Z) < p.Radius {
			t = TerrainPuddle
			break
		}
	}

	return TerrainInfo{Height: h, Type: t}
}
