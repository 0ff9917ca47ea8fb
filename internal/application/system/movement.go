package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/balloon/internal/domain/entity"
)

// Movement tuning, in world units per frame
const (
	speedPerStep = 0.005
	speedSteps   = 7.0
	minSpeed     = 0.025
)

// MoveSpeed is the per-frame step for the given number of collected pickups:
// 0.005 * (7 - collected), never below 0.025.
func MoveSpeed(collected int) float32 {
	return max(float32(speedPerStep)*(speedSteps-float32(collected)), minSpeed)
}

// Displacement maps the held buttons to a per-frame move.
// Left/right drive Y, up/down drive X (up is -X). Opposite keys cancel.
func Displacement(left, right, up, down entity.Button, speed float32) mgl32.Vec3 {
	var move mgl32.Vec3
	if left.Exclusive(right) {
		move[1] = -speed
	}
	if right.Exclusive(left) {
		move[1] = speed
	}
	if down.Exclusive(up) {
		move[0] = speed
	}
	if up.Exclusive(down) {
		move[0] = -speed
	}
	return move
}

// WithinRadius reports whether a and b are at most radius apart (boundary inclusive)
func WithinRadius(a, b mgl32.Vec3, radius float32) bool {
	d := a.Sub(b)
	return d.Dot(d) <= radius*radius
}
