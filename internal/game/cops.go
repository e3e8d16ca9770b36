package game

import (
	"math"

	"github.com/rs/zerolog"
)

// PoliceCar is a pursuer. Heading and speed are driven purely by the
// player's relative position; terrain speed modifiers are intentionally not
// applied (asymmetry favors the player).
type PoliceCar struct {
	X, Y, Z  float64
	Rotation float64
	Speed    float64
}

// Update steers toward the target with proportional turning and
// distance-dependent target speed. Within PoliceEngageDist the turn/speed
// update is skipped entirely, which also guards the degenerate normalize
// when pursuer and player coincide.
func (p *PoliceCar) Update(dt float64, targetX, targetZ float64, world *World) {
	dx := targetX - p.X
	dz := targetZ - p.Z
	dist := math.Hypot(dx, dz)

	if dist > PoliceEngageDist {
		targetRot := math.Atan2(dx, dz)
		p.Rotation += angDiff(p.Rotation, targetRot) * PoliceTurnRate * dt

		// Slower when close, so pursuers don't orbit the player.
		targetSpeed := PoliceNearSpeed
		if dist > PoliceFarDist {
			targetSpeed = PoliceFarSpeed
		}
		p.Speed += (targetSpeed - p.Speed) * PoliceSpeedRate * dt
	}

	p.X, p.Z = advanceHeading(p.X, p.Z, p.Rotation, p.Speed, dt)
	p.Y = TerrainHeight(p.X, p.Z) + CarRideHeight
}

// Bullet is a straight-line ballistic projectile; it does not track after
// launch.
type Bullet struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	Lifetime   float64
}

// PoliceSystem owns pursuers and bullets and runs the encounter: timed
// spawns, timed shots, proximity hits, and score penalties.
type PoliceSystem struct {
	Cars    []PoliceCar
	Bullets []Bullet

	SpawnTimer float64
	ShootTimer float64

	rng *Rand
	log zerolog.Logger
}

func NewPoliceSystem(seed uint64, log zerolog.Logger) *PoliceSystem {
	return &PoliceSystem{
		rng: NewRand(splitmix64(seed ^ 0xC095)),
		log: log,
	}
}

// Reset clears pursuers and bullets for a game (re)start.
func (ps *PoliceSystem) Reset() {
	ps.Cars = ps.Cars[:0]
	ps.Bullets = ps.Bullets[:0]
	ps.SpawnTimer = 0
	ps.ShootTimer = 0
}

// spawn places a new pursuer at a fixed radial distance from the player at a
// uniformly random angle.
func (ps *PoliceSystem) spawn(car *Car) {
	a := ps.rng.RangeF(0, 2*math.Pi)
	x := car.X + math.Cos(a)*PoliceSpawnDist
	z := car.Z + math.Sin(a)*PoliceSpawnDist
	ps.Cars = append(ps.Cars, PoliceCar{
		X: x,
		Y: TerrainHeight(x, z) + CarRideHeight,
		Z: z,
	})
}

// Update advances pursuit and projectiles and resolves hits against the
// player. Hit checks run before expired bullets are pruned.
func (ps *PoliceSystem) Update(dt float64, car *Car, world *World, session *GameSession) {
	ps.SpawnTimer += dt
	if ps.SpawnTimer > PoliceSpawnPeriod && len(ps.Cars) < PoliceMaxCars {
		ps.spawn(car)
		ps.SpawnTimer = 0
	}

	for i := range ps.Cars {
		cop := &ps.Cars[i]
		cop.Update(dt, car.X, car.Z, world)

		if math.Hypot(cop.X-car.X, cop.Z-car.Z) < PoliceHitDist {
			session.Penalize(PoliceHitPenalty)
			// Soft reset: relocate instead of despawning, so pursuers
			// don't accumulate.
			cop.X = car.X + PoliceResetOffsetX
			cop.Z = car.Z + PoliceResetOffsetZ
			ps.log.Info().Float64("penalty", PoliceHitPenalty).Msg("hit by police")
		}
	}

	ps.ShootTimer += dt
	if ps.ShootTimer > ShootPeriod && len(ps.Cars) > 0 {
		if ps.shoot(&ps.Cars[0], car) {
			ps.ShootTimer = 0
		}
	}

	for i := range ps.Bullets {
		b := &ps.Bullets[i]
		b.X += b.VX * dt
		b.Y += b.VY * dt
		b.Z += b.VZ * dt
		b.Lifetime -= dt

		dx := b.X - car.X
		dy := b.Y - car.Y
		dz := b.Z - car.Z
		if math.Sqrt(dx*dx+dy*dy+dz*dz) < BulletHitDist {
			session.Penalize(BulletHitPenalty)
			b.Lifetime = 0
			ps.log.Info().Float64("penalty", BulletHitPenalty).Msg("shot")
		}
	}

	live := ps.Bullets[:0]
	for _, b := range ps.Bullets {
		if b.Lifetime > 0 {
			live = append(live, b)
		}
	}
	ps.Bullets = live
}

// shoot fires from the given pursuer toward the player's current position.
// Returns false without firing when the two coincide (undefined direction).
func (ps *PoliceSystem) shoot(cop *PoliceCar, car *Car) bool {
	dx := car.X - cop.X
	dy := car.Y - cop.Y
	dz := car.Z - cop.Z
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if dist < 1e-6 {
		return false
	}

	ps.Bullets = append(ps.Bullets, Bullet{
		X:        cop.X,
		Y:        cop.Y + BulletMuzzleY,
		Z:        cop.Z,
		VX:       dx / dist * BulletSpeed,
		VY:       dy / dist * BulletSpeed,
		VZ:       dz / dist * BulletSpeed,
		Lifetime: BulletLifetime,
	})
	return true
}
