package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/balloon/internal/application/game"
	"github.com/younwookim/balloon/internal/application/replay"
	"github.com/younwookim/balloon/internal/application/scene/playing"
	"github.com/younwookim/balloon/internal/application/system"
	"github.com/younwookim/balloon/internal/infrastructure/config"
	"github.com/younwookim/balloon/internal/infrastructure/logger"
)

var errRecordAndReplay = errors.New("-record and -replay are mutually exclusive")

// options holds the command line flags
type options struct {
	recordPath string
	replayPath string
	logLevel   string

	// setCursorMode is passed to the play mode; nil means ebiten's
	setCursorMode func(ebiten.CursorModeType)
}

// loadConfig reads game.yaml and its scene from the configs tree
func loadConfig(fsys fs.FS) (*config.GameConfig, *config.SceneConfig, error) {
	loader := config.NewFSLoader(fsys, "configs")
	return loader.LoadAll()
}

// newLogger builds the game logger. A non-empty level overrides game.yaml.
func newLogger(cfg logger.Config, level string) (*zap.Logger, error) {
	if level != "" {
		cfg.Level = level
	}
	return logger.New(cfg)
}

// newGame loads the scene once and wires the play mode into the game loop
func newGame(cfg *config.GameConfig, sceneCfg *config.SceneConfig, opts options, log *zap.Logger) (*game.Game, error) {
	if opts.recordPath != "" && opts.replayPath != "" {
		return nil, errRecordAndReplay
	}

	sc, err := system.LoadScene(sceneCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	modeOpts := playing.Options{
		Logger:        log,
		RecordPath:    opts.recordPath,
		Viewport:      image.Pt(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		SetCursorMode: opts.setCursorMode,
	}

	if opts.replayPath != "" {
		data, err := replay.LoadReplay(opts.replayPath)
		if err != nil {
			return nil, err
		}
		if data.Scene != sc.Name {
			log.Warn("Replay was recorded in another scene",
				zap.String("recorded", data.Scene),
				zap.String("scene", sc.Name),
			)
		}
		modeOpts.Replayer = replay.NewReplayer(*data)
		log.Info("Replaying",
			zap.String("path", opts.replayPath),
			zap.String("session", data.Session),
			zap.Int("frames", len(data.Frames)),
		)
	} else {
		modeOpts.Input = system.NewInputSystem()
	}

	mode, err := playing.New(sc, modeOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start play mode: %w", err)
	}

	g := game.New(mode, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(1.0 / float64(cfg.Display.Framerate))
	return g, nil
}
