package entity

import (
	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/spatial"
	"castle-defense/internal/types"
)

// humanTarget picks the first rival, by id, whose left edge the defender's
// right edge has crossed. The rival is measured with the defender's own width.
func humanTarget(self component.Body, rivals *spatial.Registry) (types.EntityID, bool) {
	if rivals == nil {
		return 0, false
	}
	half := self.Size.X / 2
	var (
		found  types.EntityID
		hasHit bool
	)
	rivals.Each(func(id types.EntityID, pos types.Vec2) bool {
		if self.Right() > pos.X-half {
			found, hasHit = id, true
			return false
		}
		return true
	})
	return found, hasHit
}

// enemyTarget prefers humans within reach, then buildings by index. Building
// targets are reported as index + BuildingIDBias.
func enemyTarget(self component.Body, humans *spatial.Registry, buildings []types.Vec2) (types.EntityID, bool) {
	half := self.Size.X / 2
	var (
		found  types.EntityID
		hasHit bool
	)
	if humans != nil {
		humans.Each(func(id types.EntityID, pos types.Vec2) bool {
			if self.Left() < pos.X+half {
				found, hasHit = id, true
				return false
			}
			return true
		})
	}
	if hasHit {
		return found, true
	}
	for i, pos := range buildings {
		if self.Left() < pos.X+config.BuildingSize/2 {
			return BuildingID(i), true
		}
	}
	return 0, false
}
