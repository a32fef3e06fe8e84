package entity

import (
	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/types"
)

// Building — постройка игрока. It has health but no behaviour.
type Building struct {
	id    types.EntityID
	kind  component.Kind
	body  component.Body
	fight component.FightStatus
}

var _ Damageable = (*Building)(nil)

// BuildingID maps a building index to its target id.
func BuildingID(index int) types.EntityID {
	return types.EntityID(index + config.BuildingIDBias)
}

// NewBuilding creates the building at index. Kind must be KindBaseBuilding or KindOtherBuilding.
func NewBuilding(index int, kind component.Kind) *Building {
	return &Building{
		id:   BuildingID(index),
		kind: kind,
		body: component.Body{
			Position: types.Vec2{X: config.BuildingSpawnX, Y: config.GroundPosY},
			Size:     types.Vec2{X: config.BuildingSize, Y: config.BuildingSize},
		},
		fight: component.NewFightStatus(kind, config.BuildingDamage),
	}
}

func (b *Building) ID() types.EntityID            { return b.id }
func (b *Building) Kind() component.Kind          { return b.kind }
func (b *Building) Body() component.Body          { return b.body }
func (b *Building) Fight() *component.FightStatus { return &b.fight }

func (b *Building) SetPosition(pos types.Vec2) { b.body.Position = pos }
