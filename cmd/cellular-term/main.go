// Command cellular-term plays Cellular Contamination in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cellular/internal/audio"
	"cellular/internal/audio/speaker"
	"cellular/internal/clock"
	"cellular/internal/config"
	"cellular/internal/gamemode"
	"cellular/internal/log"
	"cellular/internal/sim"
	"cellular/internal/terminal"
)

var errQuit = errors.New("quit")

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	logPath := flag.String("log", "cellular-term.log", "log file (the terminal owns stderr)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := run(*configPath, *logPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "cellular-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, mute bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, err := log.New(level, logPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	seed, ok := cfg.RandSeed()
	if !ok {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", zap.String("config", configPath), zap.Int64("seed", seed))

	var sink audio.Sink = audio.Nop{}
	if !mute {
		if sp, err := speaker.New(cfg.Audio); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			sink = sp
			defer sp.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	world := sim.New(cfg, rand.New(rand.NewSource(seed)))
	session := gamemode.New(world, clock.New(clock.System(), cfg.Clock.MinFPS, cfg.Clock.MaxFPS), sink, logger)
	view := terminal.NewView(screen, float64(cfg.Window.Width), float64(cfg.Window.Height))
	translator := terminal.NewTranslator(view)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	// PollEvent returns nil once the screen is finalized
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer screen.Fini()
		ticker := time.NewTicker(time.Duration(float64(time.Second) / cfg.Clock.MaxFPS))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
				}
				if translator.Handle(ev) {
					return errQuit
				}
			case <-ticker.C:
				session.Update(translator.Snapshot())
				view.Draw(session)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		logger.Error("terminal loop stopped", zap.Error(err))
		return err
	}
	logger.Info("stopped", zap.Float64("score", session.HUD().Score))
	return nil
}
