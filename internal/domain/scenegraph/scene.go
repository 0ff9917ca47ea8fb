package scenegraph

// Drawable pairs a transform with the mesh drawn at it.
type Drawable struct {
	Transform *Transform
	Mesh      *Mesh
}

// Scene owns the transforms, cameras and drawables of one level.
type Scene struct {
	Name       string
	Transforms []*Transform
	Cameras    []*Camera
	Drawables  []Drawable
}

// Lookup returns the first transform with the given name.
func (s *Scene) Lookup(name string) (*Transform, bool) {
	for _, t := range s.Transforms {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Clone deep-copies transforms and cameras so the copy can be animated
// without touching s. Meshes are shared.
func (s *Scene) Clone() *Scene {
	remap := make(map[*Transform]*Transform, len(s.Transforms))
	out := &Scene{
		Name:       s.Name,
		Transforms: make([]*Transform, len(s.Transforms)),
		Cameras:    make([]*Camera, len(s.Cameras)),
		Drawables:  make([]Drawable, len(s.Drawables)),
	}
	for i, t := range s.Transforms {
		c := *t
		out.Transforms[i] = &c
		remap[t] = &c
	}
	for _, t := range out.Transforms {
		if t.Parent != nil {
			t.Parent = remap[t.Parent]
		}
	}
	for i, cam := range s.Cameras {
		c := *cam
		c.Transform = remap[cam.Transform]
		out.Cameras[i] = &c
	}
	for i, d := range s.Drawables {
		out.Drawables[i] = Drawable{Transform: remap[d.Transform], Mesh: d.Mesh}
	}
	return out
}
