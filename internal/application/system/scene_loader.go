package system

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/balloon/internal/domain/scenegraph"
	"github.com/younwookim/balloon/internal/infrastructure/config"
)

// Scene loading errors
var (
	ErrDuplicateNode = errors.New("duplicate node name")
	ErrUnknownParent = errors.New("unknown parent node")
	ErrUnknownShape  = errors.New("unknown mesh shape")
	ErrUnknownNode   = errors.New("camera references unknown node")
)

const defaultSphereSegments = 16

// LoadScene converts a SceneConfig into a scene graph
func LoadScene(cfg *config.SceneConfig) (*scenegraph.Scene, error) {
	s := &scenegraph.Scene{Name: cfg.Name}
	byName := make(map[string]*scenegraph.Transform, len(cfg.Nodes))

	for _, n := range cfg.Nodes {
		if _, dup := byName[n.Name]; dup {
			return nil, fmt.Errorf("scene %s: %w: %q", cfg.Name, ErrDuplicateNode, n.Name)
		}

		t := scenegraph.NewTransform(n.Name)
		t.Position = mgl32.Vec3(n.Position)
		if n.Rotation != nil {
			r := n.Rotation
			t.Rotation = mgl32.Quat{W: r[0], V: mgl32.Vec3{r[1], r[2], r[3]}}.Normalize()
		}
		if n.Scale != nil {
			t.Scale = mgl32.Vec3(*n.Scale)
		}

		byName[n.Name] = t
		s.Transforms = append(s.Transforms, t)

		if n.Mesh != nil {
			mesh, err := buildMesh(n.Name, n.Mesh)
			if err != nil {
				return nil, fmt.Errorf("scene %s: node %q: %w", cfg.Name, n.Name, err)
			}
			s.Drawables = append(s.Drawables, scenegraph.Drawable{Transform: t, Mesh: mesh})
		}
	}

	// Parents may be declared after their children
	for _, n := range cfg.Nodes {
		if n.Parent == "" {
			continue
		}
		parent, ok := byName[n.Parent]
		if !ok {
			return nil, fmt.Errorf("scene %s: node %q: %w: %q", cfg.Name, n.Name, ErrUnknownParent, n.Parent)
		}
		byName[n.Name].Parent = parent
	}

	for _, c := range cfg.Cameras {
		t, ok := byName[c.Node]
		if !ok {
			return nil, fmt.Errorf("scene %s: %w: %q", cfg.Name, ErrUnknownNode, c.Node)
		}
		cam := scenegraph.NewCamera(t)
		if c.FovyDeg > 0 {
			cam.Fovy = mgl32.DegToRad(c.FovyDeg)
		}
		if c.Near > 0 {
			cam.Near = c.Near
		}
		if c.Far > 0 {
			cam.Far = c.Far
		}
		s.Cameras = append(s.Cameras, cam)
	}

	return s, nil
}

func buildMesh(name string, m *config.MeshConfig) (*scenegraph.Mesh, error) {
	c := color.RGBA{R: m.Color[0], G: m.Color[1], B: m.Color[2], A: 255}
	switch m.Shape {
	case "box":
		return scenegraph.Box(name, mgl32.Vec3(m.Size), c), nil
	case "sphere":
		segments := m.Segments
		if segments == 0 {
			segments = defaultSphereSegments
		}
		return scenegraph.Sphere(name, m.Size[0], segments, c), nil
	case "octahedron":
		return scenegraph.Octahedron(name, m.Size[0], c), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, m.Shape)
	}
}
