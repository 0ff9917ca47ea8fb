package scenegraph

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle list with a flat base color.
// Triangles wind counter-clockwise when seen from outside.
type Mesh struct {
	Name      string
	Vertices  []mgl32.Vec3
	Triangles [][3]int
	Color     color.RGBA
}

// FaceNormal returns the unnormalized normal of triangle i in mesh space.
func (m *Mesh) FaceNormal(i int) mgl32.Vec3 {
	tri := m.Triangles[i]
	a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
	return b.Sub(a).Cross(c.Sub(a))
}

// Box builds an axis-aligned box centered on the origin.
func Box(name string, size mgl32.Vec3, c color.RGBA) *Mesh {
	h := size.Mul(0.5)
	verts := make([]mgl32.Vec3, 8)
	for i := range verts {
		v := mgl32.Vec3{-h.X(), -h.Y(), -h.Z()}
		if i&1 != 0 {
			v[0] = h.X()
		}
		if i&2 != 0 {
			v[1] = h.Y()
		}
		if i&4 != 0 {
			v[2] = h.Z()
		}
		verts[i] = v
	}
	quads := [][4]int{
		{0, 2, 6, 4}, // -x
		{1, 5, 7, 3}, // +x
		{0, 4, 5, 1}, // -y
		{2, 3, 7, 6}, // +y
		{0, 1, 3, 2}, // -z
		{4, 6, 7, 5}, // +z
	}
	tris := make([][3]int, 0, 12)
	for _, q := range quads {
		tris = append(tris, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
	}
	return orientOutward(&Mesh{Name: name, Vertices: verts, Triangles: tris, Color: c})
}

// Octahedron builds a regular octahedron with the given circumradius.
func Octahedron(name string, radius float32, c color.RGBA) *Mesh {
	verts := []mgl32.Vec3{
		{radius, 0, 0}, {-radius, 0, 0},
		{0, radius, 0}, {0, -radius, 0},
		{0, 0, radius}, {0, 0, -radius},
	}
	tris := [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	return orientOutward(&Mesh{Name: name, Vertices: verts, Triangles: tris, Color: c})
}

// Sphere builds a UV sphere around the Z axis. segments is clamped to at least 3.
func Sphere(name string, radius float32, segments int, c color.RGBA) *Mesh {
	if segments < 3 {
		segments = 3
	}
	rings := segments / 2
	if rings < 2 {
		rings = 2
	}

	verts := []mgl32.Vec3{{0, 0, radius}}
	for r := 1; r < rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		z := radius * float32(math.Cos(phi))
		rr := radius * float32(math.Sin(phi))
		for s := 0; s < segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			verts = append(verts, mgl32.Vec3{
				rr * float32(math.Cos(theta)),
				rr * float32(math.Sin(theta)),
				z,
			})
		}
	}
	bottom := len(verts)
	verts = append(verts, mgl32.Vec3{0, 0, -radius})

	ring := func(r, s int) int { return 1 + (r-1)*segments + s%segments }

	var tris [][3]int
	for s := 0; s < segments; s++ {
		tris = append(tris, [3]int{0, ring(1, s), ring(1, s+1)})
	}
	for r := 1; r < rings-1; r++ {
		for s := 0; s < segments; s++ {
			a, b := ring(r, s), ring(r, s+1)
			c2, d := ring(r+1, s), ring(r+1, s+1)
			tris = append(tris, [3]int{a, c2, d}, [3]int{a, d, b})
		}
	}
	for s := 0; s < segments; s++ {
		tris = append(tris, [3]int{bottom, ring(rings-1, s+1), ring(rings-1, s)})
	}
	return orientOutward(&Mesh{Name: name, Vertices: verts, Triangles: tris, Color: c})
}

// orientOutward flips triangles of a convex, origin-centered mesh so that
// every face normal points away from the origin.
func orientOutward(m *Mesh) *Mesh {
	for i, tri := range m.Triangles {
		centroid := m.Vertices[tri[0]].Add(m.Vertices[tri[1]]).Add(m.Vertices[tri[2]])
		if m.FaceNormal(i).Dot(centroid) < 0 {
			m.Triangles[i] = [3]int{tri[0], tri[2], tri[1]}
		}
	}
	return m
}
