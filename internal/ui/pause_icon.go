// internal/ui/pause_icon.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseIcon рисует две вертикальные полосы, которые «пульсируют» после нажатия.
type PauseIcon struct {
	X, Y       float32
	Size       float32
	Color      color.Color
	LastToggle time.Time
}

func NewPauseIcon(x, y, size float32, c color.Color) *PauseIcon {
	return &PauseIcon{X: x, Y: y, Size: size, Color: c}
}

// Toggle restarts the pulse.
func (p *PauseIcon) Toggle() {
	p.LastToggle = time.Now()
}

// scale decays from 1.3 to 1 within a fraction of a second after Toggle.
func (p *PauseIcon) scale(now time.Time) float32 {
	elapsed := now.Sub(p.LastToggle).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func (p *PauseIcon) Draw(screen *ebiten.Image) {
	rectSize := p.Size * p.scale(time.Now())
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4

	// Левый
	vector.DrawFilledRect(screen, p.X-width-spacing/2, p.Y-height/2, width, height, p.Color, false)
	// Правый
	vector.DrawFilledRect(screen, p.X+spacing/2, p.Y-height/2, width, height, p.Color, false)
}
