package scenegraph

import "github.com/go-gl/mathgl/mgl32"

// Camera defaults
const (
	DefaultFovy = 60.0 * (3.14159265358979 / 180.0)
	DefaultNear = 0.01
	DefaultFar  = 1000.0
)

// Camera is a perspective camera looking down the -Z axis of its transform.
type Camera struct {
	Transform *Transform
	Fovy      float32 // vertical field of view, radians
	Aspect    float32
	Near      float32
	Far       float32
}

// NewCamera attaches a camera with default projection parameters to t.
func NewCamera(t *Transform) *Camera {
	return &Camera{
		Transform: t,
		Fovy:      DefaultFovy,
		Aspect:    1,
		Near:      DefaultNear,
		Far:       DefaultFar,
	}
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.Fovy, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns world-to-clip.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.Transform.WorldToLocal())
}
