// Package render draws scene graphs and text overlays onto ebiten images
// with a small software 3D pipeline.
package render

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/balloon/internal/domain/scenegraph"
)

// Face is one projected, shaded triangle ready for rasterization
type Face struct {
	Points [3]mgl32.Vec2 // screen pixels, y down
	Depth  float32       // mean view distance
	Color  color.RGBA
}

// ProjectScene appends the visible faces of every drawable in s to faces.
// Back faces and triangles reaching behind the near plane are dropped.
// Faces come out in scene order.
func ProjectScene(faces []Face, s *scenegraph.Scene, cam *scenegraph.Camera, light scenegraph.Light, width, height int) []Face {
	viewProj := cam.ViewProjection()
	eye := cam.Transform.WorldPosition()

	for _, d := range s.Drawables {
		if d.Mesh == nil || d.Transform == nil {
			continue
		}
		model := d.Transform.LocalToWorld()
		for _, tri := range d.Mesh.Triangles {
			var world [3]mgl32.Vec3
			for i, idx := range tri {
				v := d.Mesh.Vertices[idx]
				world[i] = model.Mul4x1(v.Vec4(1)).Vec3()
			}

			normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
			if normal.Dot(eye.Sub(world[0])) <= 0 {
				continue
			}

			face, ok := projectTriangle(world, viewProj, cam.Near, width, height)
			if !ok {
				continue
			}
			face.Color = shade(d.Mesh.Color, light.Intensity(normal))
			faces = append(faces, face)
		}
	}
	return faces
}

func projectTriangle(world [3]mgl32.Vec3, viewProj mgl32.Mat4, near float32, width, height int) (Face, bool) {
	var f Face
	for i, p := range world {
		clip := viewProj.Mul4x1(p.Vec4(1))
		if clip.W() < near {
			return Face{}, false
		}
		ndc := clip.Vec3().Mul(1 / clip.W())
		f.Points[i] = NDCToScreen(ndc.X(), ndc.Y(), width, height)
		f.Depth += clip.W() / 3
	}
	return f, true
}

// NDCToScreen maps normalized device coordinates to pixels, y down
func NDCToScreen(x, y float32, width, height int) mgl32.Vec2 {
	return mgl32.Vec2{
		(x + 1) * 0.5 * float32(width),
		(1 - y) * 0.5 * float32(height),
	}
}

// SortFaces orders faces far to near so later faces cover earlier ones
func SortFaces(faces []Face) {
	slices.SortStableFunc(faces, func(a, b Face) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}

func shade(base color.RGBA, light mgl32.Vec3) color.RGBA {
	ch := func(c uint8, l float32) uint8 {
		v := float32(c) * l
		if v > 255 {
			return 255
		}
		if v < 0 {
			return 0
		}
		return uint8(v)
	}
	return color.RGBA{
		R: ch(base.R, light.X()),
		G: ch(base.G, light.Y()),
		B: ch(base.B, light.Z()),
		A: base.A,
	}
}
