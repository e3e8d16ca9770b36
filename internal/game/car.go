package game

import (
	"math"

	"github.com/rs/zerolog"
)

// Controls is the per-tick input snapshot the player car consumes.
type Controls struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Drift    bool
}

// Car is the player vehicle. Y is re-derived from the terrain sampler every
// tick, never integrated.
type Car struct {
	X, Y, Z    float64
	Rotation   float64 // yaw, radians
	Speed      float64
	SteerAngle float64
	DriftAngle float64 // cosmetic lagging yaw offset
	IsDrifting bool

	// Terrain debug reporting state (instead of function statics).
	lastTerrain TerrainType
	debugTimer  float64

	log zerolog.Logger
}

func NewCar(log zerolog.Logger) *Car {
	return &Car{
		Y:   TerrainHeight(0, 0) + CarRideHeight,
		log: log,
	}
}

// Update advances one physics tick: terrain sampling, speed and steering
// integration, heading advance, and building collision.
func (c *Car) Update(dt float64, ctl Controls, world *World) {
	info := world.Sample(c.X, c.Z)
	c.Y = info.Height + CarRideHeight

	speedMult := info.Type.SpeedMult()
	steerMult := info.Type.SteerMult()
	drift := ctl.Drift
	if info.Type == TerrainPuddle {
		drift = true // puddles force a slide regardless of input
	}

	c.debugTimer += dt
	if info.Type != c.lastTerrain || c.debugTimer > 1.0 {
		c.log.Debug().
			Str("terrain", info.Type.String()).
			Float64("speedMult", speedMult).
			Float64("speed", c.Speed).
			Msg("terrain")
		c.lastTerrain = info.Type
		c.debugTimer = 0
	}

	c.IsDrifting = drift
	steerRate := SteerRate
	if drift {
		steerRate = SteerRateDrift
	}
	steerRate *= steerMult

	if ctl.Forward {
		c.Speed += CarAccel * speedMult * dt
	}
	if ctl.Backward {
		c.Speed -= CarBrake * speedMult * dt
	}

	// Coasting friction, heavier on slow terrain; snap to zero under the
	// epsilon so the car doesn't crawl forever.
	if !ctl.Forward && !ctl.Backward {
		terrainFriction := CarFriction * (2.0 - speedMult)
		if c.Speed > 0 {
			c.Speed -= terrainFriction * dt
		}
		if c.Speed < 0 {
			c.Speed += terrainFriction * dt
		}
		if math.Abs(c.Speed) < CarSpeedEps {
			c.Speed = 0
		}
	}

	// Moving from fast terrain onto slow terrain leaves speed above the new
	// cap; pull toward it smoothly, then clamp so the invariant holds exactly.
	terrainMax := CarMaxSpeed * speedMult
	if c.Speed > terrainMax {
		c.Speed -= (c.Speed - terrainMax) * OverspeedDecayRate * dt
	}
	if c.Speed < -terrainMax*0.5 {
		c.Speed -= (c.Speed + terrainMax*0.5) * OverspeedDecayRate * dt
	}
	c.Speed = clampF(c.Speed, -terrainMax*0.5, terrainMax)

	switch {
	case ctl.Left:
		c.SteerAngle = steerRate
	case ctl.Right:
		c.SteerAngle = -steerRate
	default:
		c.SteerAngle = 0
	}

	// No spinning in place: rotation only advances while actually moving.
	if math.Abs(c.Speed) > CarSpeedEps {
		turnRate := 1.0
		if c.IsDrifting {
			turnRate = DriftTurnRate
		}
		c.Rotation += c.SteerAngle * dt * (c.Speed / CarMaxSpeed) * turnRate
	}

	if c.IsDrifting {
		c.DriftAngle += (c.SteerAngle*DriftAngleGain - c.DriftAngle) * DriftAngleRate * dt
	} else {
		c.DriftAngle *= 0.9
	}

	oldX, oldZ := c.X, c.Z
	newX, newZ := advanceHeading(c.X, c.Z, c.Rotation, c.Speed, dt)

	x, z, speed, hit := ResolveCollision(oldX, oldZ, newX, newZ, c.Rotation, c.Speed, dt, world.Buildings)
	if hit != nil {
		c.log.Info().
			Float64("x", hit.X).
			Float64("z", hit.Z).
			Msg("bumped into building")
	}
	c.X, c.Z, c.Speed = x, z, speed
}
