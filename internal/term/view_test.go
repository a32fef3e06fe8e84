package term

import (
	"castle-defense/internal/app"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 128x72 cells gives ten world pixels per cell.
func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(128, 72)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestViewDrawsBaseAndGround(t *testing.T) {
	screen := newScreen(t)
	g := app.NewGame()

	NewView(screen).Draw(g.Snapshot())

	// Base building spans x 20..120, y 450..550.
	assert.Equal(t, bodyGlyph, runeAt(screen, 5, 50))
	assert.Equal(t, hpGlyph, runeAt(screen, 2, 44))
	assert.Equal(t, hpGlyph, runeAt(screen, 11, 44))
	assert.Equal(t, groundGlyph, runeAt(screen, 100, 56))
}

func TestViewBanners(t *testing.T) {
	screen := newScreen(t)
	g := app.NewGame()
	g.TogglePause()

	NewView(screen).Draw(g.Snapshot())

	banner := "PAUSED"
	x := (128 - len(banner)) / 2
	for i, r := range banner {
		assert.Equal(t, r, runeAt(screen, x+i, 36))
	}
}

func TestActionFor(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"F9", tcell.NewEventKey(tcell.KeyF9, 0, tcell.ModNone), ActionPause},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPause},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"CtrlC", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ActionFor(tc.ev))
		})
	}
}
