// Package spatial keeps the per-roster index of entity positions.
package spatial

import (
	"castle-defense/internal/types"
	"maps"
	"slices"
)

// Registry maps entity ids to their current position. Iteration is in
// ascending id order so target selection is reproducible.
type Registry struct {
	positions map[types.EntityID]types.Vec2
}

func NewRegistry() *Registry {
	return &Registry{positions: make(map[types.EntityID]types.Vec2)}
}

func (r *Registry) Set(id types.EntityID, pos types.Vec2) {
	r.positions[id] = pos
}

func (r *Registry) Get(id types.EntityID) (types.Vec2, bool) {
	pos, ok := r.positions[id]
	return pos, ok
}

func (r *Registry) Delete(id types.EntityID) {
	delete(r.positions, id)
}

func (r *Registry) Has(id types.EntityID) bool {
	_, ok := r.positions[id]
	return ok
}

func (r *Registry) Len() int {
	return len(r.positions)
}

// IDs returns the registered ids sorted ascending.
func (r *Registry) IDs() []types.EntityID {
	return slices.Sorted(maps.Keys(r.positions))
}

// Each calls fn for every entry in ascending id order until fn returns false.
func (r *Registry) Each(fn func(id types.EntityID, pos types.Vec2) bool) {
	for _, id := range r.IDs() {
		if !fn(id, r.positions[id]) {
			return
		}
	}
}

// Clone returns an independent copy.
func (r *Registry) Clone() *Registry {
	return &Registry{positions: maps.Clone(r.positions)}
}
