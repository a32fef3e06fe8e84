// cmd/game/main.go
package main

import (
	"castle-defense/internal/app"
	"castle-defense/internal/config"
	"castle-defense/internal/defs"
	"castle-defense/internal/state"
	"castle-defense/pkg/render"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

// Update measures the frame time on every call, paused frames included, so the
// first tick after a resume does not see the paused interval.
func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding speeds, damage, timings and waves")
	fontPath := flag.String("font", "", "TTF/OTF font for the game over text (built-in bitmap font if empty)")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile into this directory")
	flag.Parse()

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.NoShutdownHook).Stop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	tuning := defs.DefaultTuning()
	if *tuningPath != "" {
		tuning, err = defs.LoadTuning(*tuningPath)
		if err != nil {
			logger.Fatal("load tuning", zap.String("path", *tuningPath), zap.Error(err))
		}
	}

	face, err := render.LoadFace(*fontPath, config.GameOverFontSize)
	if err != nil {
		// Игра продолжается без текста game over.
		logger.Warn("font unavailable", zap.String("path", *fontPath), zap.Error(err))
	}

	game := app.NewGame(app.WithLogger(logger), app.WithTuning(tuning))
	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, game, face))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(a); err != nil {
		logger.Error("game loop", zap.Error(err))
	}
}
