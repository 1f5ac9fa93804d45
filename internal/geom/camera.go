package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles a target at a fixed distance, advancing by a fixed
// angle each frame.
type OrbitCamera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	Axis   mgl32.Vec3
	Step   float32 // radians per Advance

	FovY   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewOrbitCamera returns the spinning cube camera: eye at (4,4,4) looking
// at the origin, turning 0.1/pi radians per frame around +Y.
func NewOrbitCamera(aspect float32) *OrbitCamera {
	return &OrbitCamera{
		Eye:    mgl32.Vec3{4, 4, 4},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Axis:   mgl32.Vec3{0, 1, 0},
		Step:   0.1 / math.Pi,
		FovY:   45,
		Aspect: aspect,
		Near:   0.1,
		Far:    100,
	}
}

// Advance rotates the eye one step around the axis.
func (c *OrbitCamera) Advance() {
	c.Eye = mgl32.QuatRotate(c.Step, c.Axis.Normalize()).Rotate(c.Eye)
}

// Projection returns the perspective matrix.
func (c *OrbitCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// View returns the look-at matrix for the current eye position.
func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// ProjectionView returns Projection * View, ready for a mat4 uniform.
func (c *OrbitCamera) ProjectionView() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}
