// Package term draws a match snapshot onto a terminal and maps keys to actions.
package term

import (
	"castle-defense/internal/app"
	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const (
	bodyGlyph   = '█'
	groundGlyph = '▀'
	hpGlyph     = '='
)

// View scales the 1280x720 world onto whatever cell grid the screen has.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

func (v *View) col(x float64) int {
	w, _ := v.screen.Size()
	return int(x * float64(w) / config.ScreenWidth)
}

func (v *View) row(y float64) int {
	_, h := v.screen.Size()
	return int(y * float64(h) / config.ScreenHeight)
}

// Draw renders one frame and shows it.
func (v *View) Draw(s app.Snapshot) {
	v.screen.Clear()

	groundStyle := tcell.StyleDefault.Foreground(tcell.FromImageColor(config.GroundColor))
	top := v.row(s.Ground.Position.Y - s.Ground.Size.Y)
	bottom := max(v.row(s.Ground.Position.Y), top+1)
	w, _ := v.screen.Size()
	for y := top; y < bottom; y++ {
		for x := 0; x < w; x++ {
			v.screen.SetContent(x, y, groundGlyph, nil, groundStyle)
		}
	}

	for _, e := range s.Entities {
		v.drawEntity(e, s.Paused)
	}

	v.drawStatus(s)
	v.screen.Show()
}

func (v *View) drawEntity(e app.EntityView, paused bool) {
	style := tcell.StyleDefault.Foreground(kindColor(e.Kind))
	if paused {
		style = style.Dim(true)
	}

	left := v.col(e.Position.X - e.Size.X/2)
	right := max(v.col(e.Position.X+e.Size.X/2), left+1)
	top := v.row(e.Position.Y - e.Size.Y)
	bottom := max(v.row(e.Position.Y), top+1)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			v.screen.SetContent(x, y, bodyGlyph, nil, style)
		}
	}

	// HP bar sits on the row above the body.
	filled := int(float64(right-left)*e.HPFraction + 0.5)
	hpStyle := tcell.StyleDefault.Foreground(tcell.FromImageColor(config.HPBarColor))
	for x := left; x < left+filled; x++ {
		v.screen.SetContent(x, top-1, hpGlyph, nil, hpStyle)
	}
}

func (v *View) drawStatus(s app.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(config.TextLightColor))
	v.drawText(0, 0, fmt.Sprintf("Wave %d  %.1fs", s.Wave, s.GameTime), style)

	var banner string
	switch {
	case s.Over:
		banner = "GAME OVER!"
	case s.Paused:
		banner = "PAUSED"
	default:
		return
	}
	w, h := v.screen.Size()
	v.drawText((w-len(banner))/2, h/2, banner, style.Bold(true))
}

func (v *View) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func kindColor(k component.Kind) tcell.Color {
	switch k {
	case component.KindHuman:
		return tcell.FromImageColor(config.HumanColor)
	case component.KindEnemy:
		return tcell.FromImageColor(config.EnemyColor)
	default:
		return tcell.FromImageColor(config.BuildingColor)
	}
}
