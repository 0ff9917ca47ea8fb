package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/balloon/internal/application/replay"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recording (e.g., -replay replay.json)")
	levelFlag := flag.String("log-level", "", "Override the log level in game.yaml (debug, info, warn, error)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get config subfs: %v\n", err)
		os.Exit(1)
	}
	cfg, sceneCfg, err := loadConfig(fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log, *levelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	g, err := newGame(cfg, sceneCfg, options{
		recordPath: *recordFlag,
		replayPath: *replayFlag,
	}, log)
	if err != nil {
		log.Fatal("Failed to create game", zap.Error(err))
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Shutdown()
	if err != nil && !errors.Is(err, replay.ErrFinished) {
		log.Fatal("Game stopped", zap.Error(err))
	}
}
