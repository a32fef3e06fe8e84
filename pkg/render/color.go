// pkg/render/color.go
package render

import (
	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"image/color"
)

// KindColor returns the fill color for an entity kind.
func KindColor(k component.Kind) color.RGBA {
	switch k {
	case component.KindHuman:
		return config.HumanColor
	case component.KindEnemy:
		return config.EnemyColor
	default:
		return config.BuildingColor
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
