package game

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoliceCar_ConvergesOnTarget(t *testing.T) {
	w := emptyWorld()
	cop := &PoliceCar{X: 60, Z: 0}

	// Starts heading the wrong way; proportional steering must swing it
	// around and close the whole gap within ten simulated seconds.
	reached := false
	for i := 0; i < 600; i++ {
		cop.Update(0.016, 0, 0, w)
		if math.Hypot(cop.X, cop.Z) <= PoliceEngageDist {
			reached = true
			break
		}
	}
	require.True(t, reached, "pursuer never reached the target, final distance %.2f",
		math.Hypot(cop.X, cop.Z))
	assert.InDelta(t, -math.Pi/2, cop.Rotation, 0.5, "heading settled toward the -X approach")
}

func TestPoliceCar_TargetSpeedByDistance(t *testing.T) {
	w := emptyWorld()

	far := &PoliceCar{X: 200, Z: 0}
	near := &PoliceCar{X: 20, Z: 0}
	for i := 0; i < 500; i++ {
		far.Update(0.016, 0, 0, w)
		near.Update(0.016, 0, 0, w)
	}
	// far stays beyond PoliceFarDist for long enough to settle at the chase
	// speed; near settles at the approach speed.
	assert.Greater(t, far.Speed, PoliceNearSpeed)
	assert.InDelta(t, PoliceNearSpeed, near.Speed, 1.0)
}

func TestPoliceCar_EngagedSkipsSteering(t *testing.T) {
	w := emptyWorld()
	cop := &PoliceCar{X: 5, Z: 5, Rotation: 1.0}

	cop.Update(0.016, 5, 5, w)

	assert.Equal(t, 1.0, cop.Rotation, "no turn inside engage distance")
	assert.False(t, math.IsNaN(cop.X) || math.IsNaN(cop.Z), "coincident target must not produce NaN")
}

func newTestPolice() *PoliceSystem {
	return NewPoliceSystem(7, zerolog.Nop())
}

func TestPoliceSystem_SpawnTimingAndCap(t *testing.T) {
	ps := newTestPolice()
	car := newTestCar()
	w := emptyWorld()
	s := NewGameSession()

	elapsed := 0.0
	for elapsed < PoliceSpawnPeriod*(PoliceMaxCars+3) {
		ps.Update(0.1, car, w, s)
		elapsed += 0.1
	}
	assert.Len(t, ps.Cars, PoliceMaxCars, "spawns stop at the cap")
}

func TestPoliceSystem_SpawnsAtFixedRadius(t *testing.T) {
	ps := newTestPolice()
	car := newTestCar()
	car.X, car.Z = 100, -40

	ps.spawn(car)
	require.Len(t, ps.Cars, 1)
	cop := ps.Cars[0]
	assert.InDelta(t, PoliceSpawnDist, math.Hypot(cop.X-car.X, cop.Z-car.Z), 1e-9)
	assert.InDelta(t, TerrainHeight(cop.X, cop.Z)+CarRideHeight, cop.Y, 1e-9)
}

func TestPoliceSystem_HitPenalizesAndRelocates(t *testing.T) {
	ps := newTestPolice()
	car := newTestCar()
	w := emptyWorld()
	s := NewGameSession()
	s.Started = true
	s.SurvivalTime = 20

	ps.Cars = append(ps.Cars, PoliceCar{X: car.X + 1, Z: car.Z})
	ps.Update(0.001, car, w, s)

	assert.InDelta(t, 15, s.SurvivalTime, 1e-6, "ramming costs five seconds")
	cop := ps.Cars[0]
	assert.Greater(t, math.Hypot(cop.X-car.X, cop.Z-car.Z), PoliceHitDist,
		"relocated pursuer is out of hit range")
	assert.Len(t, ps.Cars, 1, "relocate, not despawn")
}

func TestPoliceSystem_PenaltyFloorsAtZero(t *testing.T) {
	s := NewGameSession()
	s.Started = true
	s.SurvivalTime = 2
	s.HighScore = 30

	s.Penalize(PoliceHitPenalty)
	assert.Equal(t, 0.0, s.SurvivalTime)
	assert.Equal(t, 30.0, s.HighScore, "high score is untouched by penalties")
}

func TestPoliceSystem_ShootAimsAtPlayer(t *testing.T) {
	ps := newTestPolice()
	car := newTestCar()
	cop := &PoliceCar{X: 30, Y: car.Y, Z: 0}

	require.True(t, ps.shoot(cop, car))
	require.Len(t, ps.Bullets, 1)
	b := ps.Bullets[0]

	assert.Equal(t, cop.X, b.X)
	assert.Equal(t, cop.Y+BulletMuzzleY, b.Y)
	assert.InDelta(t, BulletSpeed, math.Sqrt(b.VX*b.VX+b.VY*b.VY+b.VZ*b.VZ), 1e-9)
	assert.Less(t, b.VX, 0.0, "bullet flies toward the player on -X")
	assert.Equal(t, BulletLifetime, b.Lifetime)
}

func TestPoliceSystem_ShootRefusesCoincidentTarget(t *testing.T) {
	ps := newTestPolice()
	car := newTestCar()
	cop := &PoliceCar{X: car.X, Y: car.Y, Z: car.Z}

	assert.False(t, ps.shoot(cop, car))
	assert.Empty(t, ps.Bullets)
}

func TestPoliceSystem_BulletsExpire(t *testing.T) {
	ps := newTestPolice()
	car := newTestCar()
	car.X = 10_000 // out of everything's reach
	w := emptyWorld()
	s := NewGameSession()

	ps.Bullets = append(ps.Bullets, Bullet{X: 0, Y: 1, Z: 0, VX: 1, Lifetime: 0.5})
	ps.Update(0.4, car, w, s)
	require.Len(t, ps.Bullets, 1)
	ps.Update(0.2, car, w, s)
	assert.Empty(t, ps.Bullets, "expired bullets are pruned")
}

func TestPoliceSystem_BulletHitChecksBeforePrune(t *testing.T) {
	// A bullet whose lifetime runs out on the same tick it reaches the player
	// must still score the hit.
	ps := newTestPolice()
	car := newTestCar()
	w := emptyWorld()
	s := NewGameSession()
	s.Started = true
	s.SurvivalTime = 10

	ps.Bullets = append(ps.Bullets, Bullet{
		X: car.X + 1, Y: car.Y, Z: car.Z,
		Lifetime: 0.01,
	})
	ps.Update(0.05, car, w, s)

	assert.InDelta(t, 10-BulletHitPenalty, s.SurvivalTime, 1e-6)
	assert.Empty(t, ps.Bullets)
}

func TestPoliceSystem_ResetClearsEncounter(t *testing.T) {
	ps := newTestPolice()
	ps.Cars = append(ps.Cars, PoliceCar{X: 1})
	ps.Bullets = append(ps.Bullets, Bullet{Lifetime: 1})
	ps.SpawnTimer = 3
	ps.ShootTimer = 1

	ps.Reset()

	assert.Empty(t, ps.Cars)
	assert.Empty(t, ps.Bullets)
	assert.Zero(t, ps.SpawnTimer)
	assert.Zero(t, ps.ShootTimer)
}
