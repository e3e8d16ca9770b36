package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the chase camera: a fixed offset behind and above the player
// along its heading, looking at a point just above the car.
type Camera struct {
	X, Y, Z                   float64
	LookAtX, LookAtY, LookAtZ float64
}

// Follow places the camera relative to the player car.
func (c *Camera) Follow(car *Car) {
	c.X = car.X - math.Sin(car.Rotation)*CamDistance
	c.Y = car.Y + CamHeight
	c.Z = car.Z - math.Cos(car.Rotation)*CamDistance
	c.LookAtX = car.X
	c.LookAtY = car.Y + 1.0
	c.LookAtZ = car.Z
}

// View returns the look-at matrix for the current pose.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAt(
		float32(c.X), float32(c.Y), float32(c.Z),
		float32(c.LookAtX), float32(c.LookAtY), float32(c.LookAtZ),
		0, 1, 0,
	)
}

// Projection returns the perspective matrix for the given framebuffer size.
func (c *Camera) Projection(fbW, fbH int) mgl32.Mat4 {
	aspect := float32(fbW) / float32(fbH)
	return mgl32.Perspective(mgl32.DegToRad(CamFovDeg), aspect, CamNear, CamFar)
}
