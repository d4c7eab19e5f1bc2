package scene

import (
	"parallax-demo/math"
)

// Camera orbits the display surface from a fixed eye point. Mouse drags
// accumulate yaw and pitch in degrees; the rotation is applied to the model,
// not the eye, so the view matrix itself never changes.
type Camera struct {
	Yaw   float32 // degrees, around world Y
	Pitch float32 // degrees, around world X

	Eye    math.Vec3
	Target math.Vec3
}

func NewCamera() *Camera {
	return &Camera{
		Pitch:  -20,
		Eye:    math.Vec3{X: 0, Y: 0, Z: 35},
		Target: math.Vec3Zero,
	}
}

// Orbit adds raw pixel deltas to the orbit angles: one pixel is one degree.
func (c *Camera) Orbit(dx, dy float32) {
	c.Yaw += dx
	c.Pitch += dy
}

// ViewMatrix returns the fixed look-at transform, before any user rotation.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Eye, c.Target, math.Vec3Up)
}

// ModelViewMatrix composes the user yaw/pitch rotation with the view:
// vertices are rotated around Y by yaw, then around X by pitch, then carried
// into eye space. The result is rigid, so InvertRigid applies.
func (c *Camera) ModelViewMatrix() math.Mat4 {
	rotY := math.Mat4RotationY(math.DegToRad(c.Yaw))
	rotX := math.Mat4RotationX(math.DegToRad(c.Pitch))
	return rotY.Mul(rotX).Mul(c.ViewMatrix())
}
