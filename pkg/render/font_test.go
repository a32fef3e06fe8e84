package render

import (
	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestLoadFaceDefault(t *testing.T) {
	face, err := LoadFace("", config.GameOverFontSize)
	require.NoError(t, err)
	assert.Equal(t, basicfont.Face7x13, face)
}

func TestLoadFaceMissingFile(t *testing.T) {
	_, err := LoadFace(filepath.Join(t.TempDir(), "nope.ttf"), config.GameOverFontSize)
	assert.Error(t, err)
}

func TestKindColor(t *testing.T) {
	assert.Equal(t, config.HumanColor, KindColor(component.KindHuman))
	assert.Equal(t, config.EnemyColor, KindColor(component.KindEnemy))
	assert.Equal(t, config.BuildingColor, KindColor(component.KindOtherBuilding))
	assert.Equal(t, color.RGBA{0, 127, 0, 255}, DarkenColor(config.HumanColor))
}
