package system

import (
	"castle-defense/internal/entity"
	"castle-defense/internal/spatial"
	"castle-defense/internal/types"
)

// Roster — упорядоченный список сущностей одной стороны и их индекс позиций.
// Every member has exactly one registry entry and the registry holds nothing else.
type Roster struct {
	members   []entity.Combatant
	positions *spatial.Registry
}

func NewRoster() *Roster {
	return &Roster{positions: spatial.NewRegistry()}
}

// Add appends c and indexes its position. Duplicate ids are refused.
func (r *Roster) Add(c entity.Combatant) bool {
	if r.positions.Has(c.ID()) {
		return false
	}
	r.members = append(r.members, c)
	r.positions.Set(c.ID(), c.Body().Position)
	return true
}

// Members returns the roster in insertion order. The slice must not be modified.
func (r *Roster) Members() []entity.Combatant {
	return r.members
}

func (r *Roster) Len() int {
	return len(r.members)
}

func (r *Roster) Get(id types.EntityID) (entity.Combatant, bool) {
	for _, m := range r.members {
		if m.ID() == id {
			return m, true
		}
	}
	return nil, false
}

func (r *Roster) Positions() *spatial.Registry {
	return r.positions
}

// Remove drops the given ids from both the member list and the registry.
// It returns how many members were removed.
func (r *Roster) Remove(ids ...types.EntityID) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[types.EntityID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
		r.positions.Delete(id)
	}
	kept := r.members[:0]
	removed := 0
	for _, m := range r.members {
		if _, ok := drop[m.ID()]; ok {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	for i := len(kept); i < len(r.members); i++ {
		r.members[i] = nil
	}
	r.members = kept
	return removed
}

// Consistent reports whether members and registry describe the same id set.
func (r *Roster) Consistent() bool {
	if len(r.members) != r.positions.Len() {
		return false
	}
	for _, m := range r.members {
		if !r.positions.Has(m.ID()) {
			return false
		}
	}
	return true
}
