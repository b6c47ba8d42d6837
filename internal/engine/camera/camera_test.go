package camera

import (
	gomath "math"
	"testing"
)

func TestFirstMouseSampleProducesNoRotation(t *testing.T) {
	c := NewFPSCamera()
	yaw, pitch := c.Yaw, c.Pitch

	// first sample at an arbitrary position only primes the reference
	c.OnMouseMove(1234.5, -678.9)

	if c.Yaw != yaw || c.Pitch != pitch {
		t.Errorf("first sample rotated the camera: yaw %f->%f pitch %f->%f",
			yaw, c.Yaw, pitch, c.Pitch)
	}
	if c.firstMouse {
		t.Error("firstMouse should be cleared after the first sample")
	}
}

func TestMouseMoveIntegratesDeltas(t *testing.T) {
	c := NewFPSCamera()
	c.OnMouseMove(100, 100)

	// +10 in x adds yaw, +10 in screen y (downward) subtracts pitch
	c.OnMouseMove(110, 110)

	wantYaw := float32(-90.0 + 10*c.Sensitivity)
	wantPitch := float32(0.0 - 10*c.Sensitivity)
	if c.Yaw != wantYaw {
		t.Errorf("yaw = %f, want %f", c.Yaw, wantYaw)
	}
	if c.Pitch != wantPitch {
		t.Errorf("pitch = %f, want %f", c.Pitch, wantPitch)
	}
}

func TestPitchClampUp(t *testing.T) {
	c := NewFPSCamera()
	c.OnMouseMove(0, 0)

	// drag far upward across many samples
	for i := 1; i <= 50; i++ {
		c.OnMouseMove(0, float64(-100*i))
	}

	if c.Pitch != MaxPitch {
		t.Errorf("pitch = %f, want exactly %f", c.Pitch, float32(MaxPitch))
	}
}

func TestPitchClampDown(t *testing.T) {
	c := NewFPSCamera()
	c.OnMouseMove(0, 0)

	for i := 1; i <= 50; i++ {
		c.OnMouseMove(0, float64(100*i))
	}

	if c.Pitch != MinPitch {
		t.Errorf("pitch = %f, want exactly %f", c.Pitch, float32(MinPitch))
	}
}

func TestFrontStaysNormalized(t *testing.T) {
	c := NewFPSCamera()
	c.OnMouseMove(0, 0)

	positions := [][2]float64{{50, 20}, {-30, 400}, {900, -250}, {5, 5}}
	for _, p := range positions {
		c.OnMouseMove(p[0], p[1])
		length := gomath.Sqrt(float64(c.Front.Dot(c.Front)))
		if gomath.Abs(length-1.0) > 1e-5 {
			t.Errorf("front length = %f after move to %v, want 1", length, p)
		}
	}
}

func TestRightAndUpFollowFront(t *testing.T) {
	c := NewFPSCamera()
	c.OnMouseMove(0, 0)
	c.OnMouseMove(250, -80)

	if dot := c.Front.Dot(c.Right); gomath.Abs(float64(dot)) > 1e-5 {
		t.Errorf("right not orthogonal to front, dot = %f", dot)
	}
	if dot := c.Front.Dot(c.Up); gomath.Abs(float64(dot)) > 1e-5 {
		t.Errorf("up not orthogonal to front, dot = %f", dot)
	}
	if dot := c.Right.Dot(c.Up); gomath.Abs(float64(dot)) > 1e-5 {
		t.Errorf("right not orthogonal to up, dot = %f", dot)
	}
}

func TestDefaultLooksDownNegativeZ(t *testing.T) {
	c := NewFPSCamera()

	if gomath.Abs(float64(c.Front.Z()+1)) > 1e-5 {
		t.Errorf("front = %v, want looking down -Z", c.Front)
	}
	if gomath.Abs(float64(c.Right.X()-1)) > 1e-5 {
		t.Errorf("right = %v, want +X", c.Right)
	}
}

func TestViewMatrixTranslatesPosition(t *testing.T) {
	c := NewFPSCamera()
	view := c.ViewMatrix()

	// view of a camera at (0,0,3) looking down -Z moves the world -3 in z
	if gomath.Abs(float64(view.At(2, 3)+3)) > 1e-5 {
		t.Errorf("unexpected view translation: %f", view.At(2, 3))
	}
}

func TestProjectionMatrixFOV(t *testing.T) {
	c := NewFPSCamera()
	proj := c.ProjectionMatrix(4.0 / 3.0)

	// m[1][1] = 1/tan(fov/2)
	want := 1.0 / gomath.Tan(float64(c.FOV)*gomath.Pi/180/2)
	if gomath.Abs(float64(proj.At(1, 1))-want) > 1e-4 {
		t.Errorf("proj[1][1] = %f, want %f", proj.At(1, 1), want)
	}
}
