package state

import (
	"castle-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const gameOverText = "GAME OVER!"

// GameOverState — статичный экран конца игры поверх последнего кадра.
type GameOverState struct {
	previousState State
	face          font.Face
}

var _ State = (*GameOverState)(nil)

func NewGameOverState(prevState State, face font.Face) *GameOverState {
	return &GameOverState{previousState: prevState, face: face}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	if s.face == nil {
		return
	}
	bounds := text.BoundString(s.face, gameOverText)
	x := config.ScreenWidth/2 - bounds.Dx()/2
	y := config.ScreenHeight/2 + bounds.Dy()/2
	text.Draw(screen, gameOverText, s.face, x, y, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
