// cmd/castle-term/main.go
package main

import (
	"castle-defense/internal/app"
	"castle-defense/internal/audio"
	"castle-defense/internal/defs"
	"castle-defense/internal/term"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const frameInterval = 16 * time.Millisecond

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding speeds, damage, timings and waves")
	logPath := flag.String("log", "castle-term.log", "log file; the terminal is used for drawing")
	mute := flag.Bool("mute", false, "disable sounds")
	flag.Parse()

	if err := run(*tuningPath, *logPath, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func run(tuningPath, logPath string, mute bool) error {
	logger, err := newLogger(logPath)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	tuning := defs.DefaultTuning()
	if tuningPath != "" {
		if tuning, err = defs.LoadTuning(tuningPath); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	game := app.NewGame(app.WithLogger(logger), app.WithTuning(tuning))

	sounds := audio.NewSoundManager()
	sounds.SetMuted(mute)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	} else {
		defer sounds.Cleanup()
	}
	game.EventDispatcher.SubscribeAll(sounds)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	view := term.NewView(screen)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch term.ActionFor(ev) {
				case term.ActionPause:
					game.TogglePause()
				case term.ActionQuit:
					logger.Info("quit", zap.Float64("game_time", game.GetGameTime()))
					return nil
				}
			}
		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			last = now
			game.Update(deltaTime)
			view.Draw(game.Snapshot())
		}
	}
}
