package playing

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/balloon/internal/domain/scenegraph"
)

// Node names the controller binds to
const (
	nodeBalloon = "Cube"
	nodeKnot    = "Knot"
	nodeNeedle  = "Needle"
)

var (
	// ErrNodeNotFound is returned when a required node is missing from the scene
	ErrNodeNotFound = errors.New("node not found")
	// ErrCameraCount is returned when the scene does not have exactly one camera
	ErrCameraCount = errors.New("expected exactly one camera")
)

// Bindings are the scene references a PlayMode animates and tests against.
// They are resolved once and never re-looked-up.
type Bindings struct {
	Balloon *scenegraph.Transform
	Knot    *scenegraph.Transform
	Camera  *scenegraph.Camera

	// Collectibles and Needle hold positions only. A node missing from the
	// scene leaves its slot at the origin.
	Collectibles [collectibleCount]mgl32.Vec3
	Needle       mgl32.Vec3
}

// CollectibleName returns the node name of the i-th (0-based) collectible
func CollectibleName(i int) string {
	return fmt.Sprintf("Collectible%d", i+1)
}

// Resolve binds the balloon, knot, camera, collectibles and needle of s.
// When names repeat, the last node wins.
func Resolve(s *scenegraph.Scene) (Bindings, error) {
	var b Bindings

	for _, t := range s.Transforms {
		switch t.Name {
		case nodeBalloon:
			b.Balloon = t
		case nodeKnot:
			b.Knot = t
		case nodeNeedle:
			b.Needle = t.Position
		default:
			for i := range b.Collectibles {
				if t.Name == CollectibleName(i) {
					b.Collectibles[i] = t.Position
					break
				}
			}
		}
	}

	if b.Balloon == nil {
		return Bindings{}, fmt.Errorf("%w: %s", ErrNodeNotFound, nodeBalloon)
	}
	if b.Knot == nil {
		return Bindings{}, fmt.Errorf("%w: %s", ErrNodeNotFound, nodeKnot)
	}
	if len(s.Cameras) != 1 {
		return Bindings{}, fmt.Errorf("%w: scene has %d", ErrCameraCount, len(s.Cameras))
	}
	b.Camera = s.Cameras[0]

	return b, nil
}
