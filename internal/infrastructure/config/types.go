package config

import "github.com/younwookim/balloon/internal/infrastructure/logger"

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Scene   string        `yaml:"scene"`
	Log     logger.Config `yaml:"log"`
}

// DisplayConfig configures the window and tick rate
type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Framerate    int    `yaml:"framerate"`
}

// SceneConfig is the root config for scenes/<name>.yaml
type SceneConfig struct {
	Name    string         `yaml:"name"`
	Nodes   []NodeConfig   `yaml:"nodes"`
	Cameras []CameraConfig `yaml:"cameras"`
}

// NodeConfig describes one named transform.
// Rotation is (w, x, y, z); omitted rotation and scale mean identity.
type NodeConfig struct {
	Name     string      `yaml:"name"`
	Parent   string      `yaml:"parent,omitempty"`
	Position [3]float32  `yaml:"position"`
	Rotation *[4]float32 `yaml:"rotation,omitempty"`
	Scale    *[3]float32 `yaml:"scale,omitempty"`
	Mesh     *MeshConfig `yaml:"mesh,omitempty"`
}

// MeshConfig selects a procedural mesh for a node
type MeshConfig struct {
	Shape    string     `yaml:"shape"` // box, sphere or octahedron
	Size     [3]float32 `yaml:"size"`  // box extents; sphere/octahedron use Size[0] as radius
	Segments int        `yaml:"segments,omitempty"`
	Color    [3]uint8   `yaml:"color"`
}

// CameraConfig attaches a camera to a node
type CameraConfig struct {
	Node    string  `yaml:"node"`
	FovyDeg float32 `yaml:"fovyDeg,omitempty"`
	Near    float32 `yaml:"near,omitempty"`
	Far     float32 `yaml:"far,omitempty"`
}
