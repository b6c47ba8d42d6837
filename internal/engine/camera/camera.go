// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch is clamped short of the poles to avoid gimbal flip.
const (
	MinPitch = -89.0
	MaxPitch = 89.0
)

// FPSCamera is a first-person camera driven by relative cursor motion.
// Yaw and Pitch are in degrees.
type FPSCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32
	FOV   float32

	// Sensitivity scales raw cursor deltas before they are applied.
	Sensitivity float32

	lastX      float32
	lastY      float32
	firstMouse bool
}

// NewFPSCamera creates a camera at the origin looking down -Z.
func NewFPSCamera() *FPSCamera {
	c := &FPSCamera{
		Position:    mgl32.Vec3{0, 0, 3},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90.0,
		Pitch:       0.0,
		FOV:         45.0,
		Sensitivity: 0.1,
		firstMouse:  true,
	}
	c.updateVectors()
	return c
}

// OnMouseMove integrates a cursor position sample into yaw/pitch.
// The first sample only primes the reference position, so it never
// produces a rotation jump.
func (c *FPSCamera) OnMouseMove(xpos, ypos float64) {
	x, y := float32(xpos), float32(ypos)

	if c.firstMouse {
		c.lastX = x
		c.lastY = y
		c.firstMouse = false
	}

	dx := x - c.lastX
	// screen Y grows downward, pitch grows upward
	dy := c.lastY - y
	c.lastX = x
	c.lastY = y

	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < MinPitch {
		c.Pitch = MinPitch
	}

	c.updateVectors()
}

// updateVectors recomputes Front from the yaw/pitch spherical angles
// and rederives Right and Up from it.
func (c *FPSCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// ViewMatrix returns the look-at matrix for the current orientation.
func (c *FPSCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns a perspective projection for the given
// aspect ratio.
func (c *FPSCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, 0.1, 100.0)
}
