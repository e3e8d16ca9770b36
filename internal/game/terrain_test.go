package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findPointWithHeight scans the height field for a point whose height falls
// inside [lo, hi).
func findPointWithHeight(t *testing.T, lo, hi float64) (float64, float64) {
	t.Helper()
	for x := -400.0; x <= 400.0; x += 3.1 {
		for z := -400.0; z <= 400.0; z += 3.1 {
			h := TerrainHeight(x, z)
			if h >= lo && h < hi {
				return x, z
			}
		}
	}
	t.Fatalf("no terrain point found with height in [%v, %v)", lo, hi)
	return 0, 0
}

func TestSampleTerrain_HeightBands(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		want   TerrainType
	}{
		{"road below low threshold", 0.0, RoadMaxHeight, TerrainRoad},
		{"grass in mid band", RoadMaxHeight, GrassMaxHeight, TerrainGrass},
		{"dirt above mid threshold", GrassMaxHeight, 10.0, TerrainDirt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, z := findPointWithHeight(t, tt.lo, tt.hi)
			info := SampleTerrain(x, z, nil)
			assert.Equal(t, tt.want, info.Type)
			assert.Equal(t, TerrainHeight(x, z), info.Height)
		})
	}
}

func TestSampleTerrain_PuddleOverridesHeightBand(t *testing.T) {
	// A puddle forces its classification regardless of the underlying band.
	x, z := findPointWithHeight(t, GrassMaxHeight, 10.0)
	puddles := []Puddle{{X: x, Z: z, Radius: 4.0}}

	info := SampleTerrain(x, z, puddles)
	assert.Equal(t, TerrainPuddle, info.Type)

	// Height is still the height-field value.
	assert.Equal(t, TerrainHeight(x, z), info.Height)

	// Just outside the radius the band classification returns.
	outside := SampleTerrain(x+4.5, z, puddles)
	assert.NotEqual(t, TerrainPuddle, outside.Type)
}

func TestSampleTerrain_PuddleBoundaryIsExclusive(t *testing.T) {
	puddles := []Puddle{{X: 0, Z: 0, Radius: 2.0}}
	inside := SampleTerrain(1.9, 0, puddles)
	atEdge := SampleTerrain(2.0, 0, puddles)
	assert.Equal(t, TerrainPuddle, inside.Type)
	assert.NotEqual(t, TerrainPuddle, atEdge.Type)
}

func TestTerrainMultipliers_StrictlyDecreasing(t *testing.T) {
	order := []TerrainType{TerrainRoad, TerrainGrass, TerrainDirt, TerrainPuddle}
	for i := 1; i < len(order); i++ {
		require.Greater(t, order[i-1].SpeedMult(), order[i].SpeedMult())
		require.Greater(t, order[i-1].SteerMult(), order[i].SteerMult())
	}
}
