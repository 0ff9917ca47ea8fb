// Package scenegraph holds the named-node transform hierarchy, cameras
// and drawables that a game mode animates and the renderer draws.
package scenegraph

import "github.com/go-gl/mathgl/mgl32"

// Transform is a named node: position, rotation and scale relative to its parent.
type Transform struct {
	Name     string
	Parent   *Transform
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewTransform creates a transform at the origin with identity rotation and unit scale.
func NewTransform(name string) *Transform {
	return &Transform{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// LocalToParent returns T * R * S.
func (t *Transform) LocalToParent() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Normalize().Mat4()).Mul4(scale)
}

// ParentToLocal returns the inverse of LocalToParent, S^-1 * R^-1 * T^-1.
func (t *Transform) ParentToLocal() mgl32.Mat4 {
	inv := func(v float32) float32 {
		if v == 0 {
			return 0
		}
		return 1 / v
	}
	scale := mgl32.Scale3D(inv(t.Scale.X()), inv(t.Scale.Y()), inv(t.Scale.Z()))
	translate := mgl32.Translate3D(-t.Position.X(), -t.Position.Y(), -t.Position.Z())
	return scale.Mul4(t.Rotation.Normalize().Conjugate().Mat4()).Mul4(translate)
}

// LocalToWorld composes LocalToParent up the parent chain.
func (t *Transform) LocalToWorld() mgl32.Mat4 {
	m := t.LocalToParent()
	for p := t.Parent; p != nil; p = p.Parent {
		m = p.LocalToParent().Mul4(m)
	}
	return m
}

// WorldToLocal composes ParentToLocal down from the root.
func (t *Transform) WorldToLocal() mgl32.Mat4 {
	m := t.ParentToLocal()
	for p := t.Parent; p != nil; p = p.Parent {
		m = m.Mul4(p.ParentToLocal())
	}
	return m
}

// WorldPosition returns the node origin in world space.
func (t *Transform) WorldPosition() mgl32.Vec3 {
	return t.LocalToWorld().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}
