package game

import "math"

// latticeHash maps integer lattice coordinates to a pseudo-random value in
// [0, 1]. Fixed multiply-xor-shift-multiply mix over wrapping 32-bit
// arithmetic; terrain, physics, and rendering all depend on this being
// identical for a given (x, z) on every call.
func latticeHash(x, z int) float64 {
	h := uint32(int32(x))*374761393 + uint32(int32(z))*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return float64(h&0x7fffffff) / float64(0x7fffffff)
}

// smoothstep is the cubic blend 3t²-2t³, giving C¹ continuity at lattice
// boundaries.
func smoothstep(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// valueNoise is 2D value noise: the four surrounding lattice corners are
// hashed and bilinearly interpolated with smoothstep weights.
func valueNoise(x, z float64) float64 {
	xi := int(math.Floor(x))
	zi := int(math.Floor(z))
	xf := x - float64(xi)
	zf := z - float64(zi)

	a := latticeHash(xi, zi)
	b := latticeHash(xi+1, zi)
	c := latticeHash(xi, zi+1)
	d := latticeHash(xi+1, zi+1)

	u := smoothstep(xf)
	v := smoothstep(zf)

	return a*(1-u)*(1-v) + b*u*(1-v) + c*(1-u)*v + d*u*v
}

// TerrainHeight samples the infinite height field at a world coordinate.
// Three octaves at doubling frequency and falling amplitude.
func TerrainHeight(x, z float64) float64 {
	h := valueNoise(x*NoiseScale, z*NoiseScale) * OctaveAmp0
	h += valueNoise(x*NoiseScale*2, z*NoiseScale*2) * OctaveAmp1
	h += valueNoise(x*NoiseScale*4, z*NoiseScale*4) * OctaveAmp2
	return h
}
