package state

import (
	"castle-defense/internal/app"
	"castle-defense/internal/config"
	"castle-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует предыдущее состояние под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	game          *app.Game
	icon          *ui.PauseIcon
}

func NewPauseState(sm *StateMachine, prevState State, game *app.Game) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		game:          game,
		icon:          ui.NewPauseIcon(config.ScreenWidth/2, config.ScreenHeight/2-40, 16, config.TextLightColor),
	}
}

func (s *PauseState) Enter() {
	s.icon.Toggle()
}

func (s *PauseState) Update(deltaTime float64) {
	if pausePressed() {
		s.game.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)
	s.icon.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "PAUSED", config.ScreenWidth/2-18, config.ScreenHeight/2)
}

func (s *PauseState) Exit() {}
