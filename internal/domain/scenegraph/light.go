package scenegraph

import "github.com/go-gl/mathgl/mgl32"

// LightKind selects the shading model of a light.
type LightKind int

const (
	LightPoint LightKind = iota
	LightHemisphere
	LightSpot
	LightDirectional
)

// String returns the string representation of the light kind
func (k LightKind) String() string {
	switch k {
	case LightPoint:
		return "Point"
	case LightHemisphere:
		return "Hemisphere"
	case LightSpot:
		return "Spot"
	case LightDirectional:
		return "Directional"
	default:
		return "Unknown"
	}
}

// Light is the single scene light uniform.
type Light struct {
	Kind      LightKind
	Direction mgl32.Vec3 // direction the light travels
	Energy    mgl32.Vec3 // per-channel intensity
}

// Intensity returns the per-channel light reaching a surface with world normal n.
func (l Light) Intensity(n mgl32.Vec3) mgl32.Vec3 {
	dir := l.Direction
	if dir.Len() == 0 {
		return l.Energy
	}
	nl := n.Normalize().Dot(dir.Normalize().Mul(-1))
	var f float32
	switch l.Kind {
	case LightHemisphere:
		f = nl*0.5 + 0.5
	default:
		if nl > 0 {
			f = nl
		}
	}
	return l.Energy.Mul(f)
}
