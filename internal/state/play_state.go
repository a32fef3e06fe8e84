package state

import (
	"castle-defense/internal/app"
	"castle-defense/internal/config"
	"castle-defense/internal/ui"
	"castle-defense/pkg/render"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// PlayState — основное состояние: симуляция идёт каждый кадр.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.EntityRenderer
	wave     *ui.WaveIndicator
	face     font.Face // nil when the font failed to load
}

var _ State = (*PlayState)(nil)

func NewPlayState(sm *StateMachine, game *app.Game, face font.Face) *PlayState {
	return &PlayState{
		sm:       sm,
		game:     game,
		renderer: render.NewEntityRenderer(),
		wave:     ui.NewWaveIndicator(config.ScreenWidth/2, 40),
		face:     face,
	}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	if pausePressed() {
		s.game.TogglePause()
		s.sm.SetState(NewPauseState(s.sm, s, s.game))
		return
	}

	s.game.Update(deltaTime)

	if s.game.IsOver() {
		s.sm.SetState(NewGameOverState(s, s.face))
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	s.renderer.Draw(screen, snap)
	s.wave.Draw(screen, snap.Wave, s.face)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Wave: %d  Humans: %d  Enemies: %d",
		snap.Wave, s.game.Humans.Len(), s.game.Enemies.Len()))
}

func (s *PlayState) Exit() {}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}
