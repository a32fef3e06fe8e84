package app

import (
	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/entity"
	"castle-defense/internal/types"
)

// EntityView is what a renderer needs to draw one entity.
type EntityView struct {
	ID         types.EntityID
	Kind       component.Kind
	Position   types.Vec2 // bottom-center origin
	Size       types.Vec2
	HPFraction float64
	State      string
}

// Snapshot is a read-only copy of the match for the presentation layer.
type Snapshot struct {
	Ground   EntityView
	Entities []EntityView // buildings, then enemies, then humans
	Paused   bool
	Over     bool
	GameTime float64
	Wave     int
}

// Snapshot copies the current positions, sizes and health of every entity.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Ground: EntityView{
			Position: types.Vec2{X: config.ScreenWidth / 2, Y: config.GroundPosY + config.GroundHeight},
			Size:     types.Vec2{X: config.ScreenWidth, Y: config.GroundHeight},
		},
		Entities: make([]EntityView, 0, len(g.Buildings)+g.Enemies.Len()+g.Humans.Len()),
		Paused:   g.IsPaused(),
		Over:     g.IsOver(),
		GameTime: g.gameTime,
		Wave:     g.WaveSystem.Wave(),
	}
	for _, b := range g.Buildings {
		s.Entities = append(s.Entities, viewOf(b, ""))
	}
	for _, e := range g.Enemies.Members() {
		s.Entities = append(s.Entities, viewOf(e, e.StateName()))
	}
	for _, h := range g.Humans.Members() {
		s.Entities = append(s.Entities, viewOf(h, h.StateName()))
	}
	return s
}

func viewOf(d entity.Damageable, state string) EntityView {
	body := d.Body()
	return EntityView{
		ID:         d.ID(),
		Kind:       d.Kind(),
		Position:   body.Position,
		Size:       body.Size,
		HPFraction: d.Fight().Fraction(),
		State:      state,
	}
}
