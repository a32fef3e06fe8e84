package render

import (
	"castle-defense/internal/app"
	"castle-defense/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EntityRenderer рисует землю, сущности и полоски здоровья.
type EntityRenderer struct{}

func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

// Draw renders a snapshot. Paused snapshots are drawn dimmed.
func (r *EntityRenderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	screen.Fill(config.BackgroundColor)
	r.drawRect(screen, s.Ground, r.tint(config.GroundColor, s.Paused))

	for _, e := range s.Entities {
		r.drawRect(screen, e, r.tint(KindColor(e.Kind), s.Paused))
		r.drawHPBar(screen, e)
	}
}

func (r *EntityRenderer) tint(c color.RGBA, paused bool) color.RGBA {
	if paused {
		return DarkenColor(c)
	}
	return c
}

// drawRect draws a bottom-center anchored rectangle.
func (r *EntityRenderer) drawRect(screen *ebiten.Image, e app.EntityView, c color.Color) {
	x := float32(e.Position.X - e.Size.X/2)
	y := float32(e.Position.Y - e.Size.Y)
	vector.DrawFilledRect(screen, x, y, float32(e.Size.X), float32(e.Size.Y), c, false)
}

func (r *EntityRenderer) drawHPBar(screen *ebiten.Image, e app.EntityView) {
	width := float32(config.HPBarHumanWidth)
	if e.Kind.IsBuilding() {
		width = config.HPBarBuildWidth
	}
	x := float32(e.Position.X) - width/2
	y := float32(e.Position.Y-e.Size.Y) - config.HPBarOffsetY

	vector.DrawFilledRect(screen, x, y, width*float32(e.HPFraction), config.HPBarHeight, config.HPBarColor, false)
	vector.StrokeRect(screen, x, y, width, config.HPBarHeight, config.HPBarOutline, config.HPBarStroke, false)
}
