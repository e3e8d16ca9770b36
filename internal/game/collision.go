package game

import "math"

// hitsBuilding reports whether a point is inside the building's footprint
// expanded by the car collision radius on all sides.
func hitsBuilding(x, z float64, b Building) bool {
	minX := b.X - b.Width/2 - CarCollisionRadius
	maxX := b.X + b.Width/2 + CarCollisionRadius
	minZ := b.Z - b.Depth/2 - CarCollisionRadius
	maxZ := b.Z + b.Depth/2 + CarCollisionRadius
	return x >= minX && x <= maxX && z >= minZ && z <= maxZ
}

// firstHit returns the first building (iteration order) whose expanded box
// contains the point, or nil. The resolver reverts the whole move on any
// hit, so no minimum-penetration search is needed.
func firstHit(x, z float64, buildings []Building) *Building {
	for i := range buildings {
		if hitsBuilding(x, z, buildings[i]) {
			return &buildings[i]
		}
	}
	return nil
}

func clearOfBuildings(x, z float64, buildings []Building) bool {
	return firstHit(x, z, buildings) == nil
}

// ResolveCollision corrects a tentative move against the building list.
// If the new position is inside any expanded box the whole move is reverted
// and speed is damped; each axis of the intended displacement is then retried
// independently from the old position, so a car blocked on one axis keeps
// sliding along the other.
func ResolveCollision(oldX, oldZ, newX, newZ, rotation, speed, dt float64, buildings []Building) (x, z, outSpeed float64, hit *Building) {
	hit = firstHit(newX, newZ, buildings)
	if hit == nil {
		return newX, newZ, speed, nil
	}

	x, z = oldX, oldZ
	outSpeed = speed * CollisionSpeedKeep

	slideX := oldX + math.Sin(rotation)*outSpeed*dt
	if clearOfBuildings(slideX, oldZ, buildings) {
		x = slideX
	}
	slideZ := oldZ + math.Cos(rotation)*outSpeed*dt
	if clearOfBuildings(oldX, slideZ, buildings) {
		z = slideZ
	}
	return x, z, outSpeed, hit
}
