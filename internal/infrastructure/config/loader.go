package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/balloon/internal/infrastructure/logger"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml and fills in defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	cfg := GameConfig{Log: logger.DefaultConfig()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}

	if cfg.Display.ScreenWidth <= 0 || cfg.Display.ScreenHeight <= 0 {
		return nil, fmt.Errorf("game.yaml: invalid screen size %dx%d", cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	}
	if cfg.Display.Framerate <= 0 {
		cfg.Display.Framerate = 60
	}
	if cfg.Scene == "" {
		return nil, fmt.Errorf("game.yaml: scene is required")
	}

	return &cfg, nil
}

// LoadScene loads a scene YAML file
func (l *Loader) LoadScene(name string) (*SceneConfig, error) {
	path := "scenes/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
	}

	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	return &cfg, nil
}

// LoadAll loads game.yaml and the scene it names
func (l *Loader) LoadAll() (*GameConfig, *SceneConfig, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, nil, err
	}

	scene, err := l.LoadScene(game.Scene)
	if err != nil {
		return nil, nil, err
	}

	return game, scene, nil
}
