package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/balloon/internal/infrastructure/config"
)

func createTestSceneConfig() *config.SceneConfig {
	return &config.SceneConfig{
		Name: "test",
		Nodes: []config.NodeConfig{
			{Name: "Cube", Parent: "Root", Position: [3]float32{1, 2, 3},
				Mesh: &config.MeshConfig{Shape: "sphere", Size: [3]float32{0.5}, Color: [3]uint8{255, 0, 0}}},
			{Name: "Root", Scale: &[3]float32{2, 2, 2}},
			{Name: "Knot", Rotation: &[4]float32{0, 0, 0, 2},
				Mesh: &config.MeshConfig{Shape: "octahedron", Size: [3]float32{0.1}}},
			{Name: "Needle", Mesh: &config.MeshConfig{Shape: "box", Size: [3]float32{0.1, 0.1, 2}}},
			{Name: "Camera", Position: [3]float32{0, 0, 10}},
		},
		Cameras: []config.CameraConfig{{Node: "Camera", FovyDeg: 45}},
	}
}

func TestLoadScene(t *testing.T) {
	s, err := LoadScene(createTestSceneConfig())
	require.NoError(t, err)

	assert.Equal(t, "test", s.Name)
	assert.Len(t, s.Transforms, 5)
	assert.Len(t, s.Drawables, 3)
	require.Len(t, s.Cameras, 1)

	cube, ok := s.Lookup("Cube")
	require.True(t, ok)
	root, _ := s.Lookup("Root")
	assert.Same(t, root, cube.Parent, "parent declared after child still resolves")
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cube.Position)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, root.Scale)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, cube.Scale, "scale defaults to 1")

	knot, _ := s.Lookup("Knot")
	assert.InDelta(t, 1, knot.Rotation.V.Z(), 1e-6, "rotation is normalized")
	assert.Equal(t, mgl32.QuatIdent(), cube.Rotation)

	cam := s.Cameras[0]
	assert.Equal(t, "Camera", cam.Transform.Name)
	assert.InDelta(t, mgl32.DegToRad(45), cam.Fovy, 1e-6)
	assert.InDelta(t, 0.01, cam.Near, 1e-6)
}

func TestLoadScene_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.SceneConfig)
		want   error
	}{
		{"duplicate", func(c *config.SceneConfig) {
			c.Nodes = append(c.Nodes, config.NodeConfig{Name: "Cube"})
		}, ErrDuplicateNode},
		{"unknown parent", func(c *config.SceneConfig) {
			c.Nodes[0].Parent = "Nowhere"
		}, ErrUnknownParent},
		{"unknown shape", func(c *config.SceneConfig) {
			c.Nodes[0].Mesh.Shape = "teapot"
		}, ErrUnknownShape},
		{"camera node", func(c *config.SceneConfig) {
			c.Cameras[0].Node = "Ghost"
		}, ErrUnknownNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestSceneConfig()
			tt.mutate(cfg)
			_, err := LoadScene(cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadScene_ShippedScene(t *testing.T) {
	cfg, err := config.NewLoader("../../../cmd/balloon/configs").LoadScene("balloon")
	require.NoError(t, err)

	s, err := LoadScene(cfg)
	require.NoError(t, err)
	assert.Len(t, s.Cameras, 1)

	for _, name := range []string{"Cube", "Knot", "Needle", "Collectible1", "Collectible8"} {
		_, ok := s.Lookup(name)
		assert.True(t, ok, name)
	}
}
