package main

import (
	"errors"
	"flag"
	stdlog "log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"cellular/internal/audio"
	"cellular/internal/clock"
	"cellular/internal/config"
	"cellular/internal/gamemode"
	"cellular/internal/log"
	"cellular/internal/render"
	"cellular/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	flag.Parse()

	// 1. Configuration and logging
	cfg, err := config.Load(*configPath)
	if err != nil {
		stdlog.Fatal(err)
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		stdlog.Fatal(err)
	}
	logger, err := log.New(level, cfg.Log.Outputs...)
	if err != nil {
		stdlog.Fatal(err)
	}
	defer logger.Sync()

	seed, ok := cfg.RandSeed()
	if !ok {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", zap.String("config", *configPath), zap.Int64("seed", seed))

	// 2. Audio, optional
	var sink audio.Sink = audio.Nop{}
	if player, err := audio.NewPlayer(cfg.Audio); err != nil {
		if !errors.Is(err, audio.ErrUnavailable) || cfg.Audio.Enabled {
			logger.Warn("audio disabled", zap.Error(err))
		}
	} else {
		sink = player
	}

	// 3. Session
	world := sim.New(cfg, rand.New(rand.NewSource(seed)))
	clk := clock.New(clock.System(), cfg.Clock.MinFPS, cfg.Clock.MaxFPS)
	session := gamemode.New(world, clk, sink, logger)
	game := NewGame(session, render.New(cfg.Window.Width, cfg.Window.Height), cfg.Window.Width, cfg.Window.Height)

	// 4. Window
	ebiten.SetWindowSize(int(float64(cfg.Window.Width)*cfg.Window.Scale), int(float64(cfg.Window.Height)*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(cfg.Clock.MaxFPS))

	// 5. Run loop
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
