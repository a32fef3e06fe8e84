package system

import (
	"castle-defense/internal/entity"
	"castle-defense/internal/event"
	"castle-defense/internal/types"
)

// CombatSystem применяет отложенные удары и проводит проход по ростеру.
type CombatSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{eventDispatcher: eventDispatcher}
}

// Resolve applies every queued attack aimed at target through the clamped
// health setter. An id without queued attacks is a no-op.
func (s *CombatSystem) Resolve(target entity.Damageable, queue *event.AttackQueue) int {
	fight := target.Fight()
	return queue.Apply(target.ID(), func(damage float64) {
		fight.TakeDamage(damage)
		if s.eventDispatcher != nil {
			s.eventDispatcher.Emit(event.EntityDamaged, event.DamageInfo{
				ID:     target.ID(),
				Kind:   target.Kind(),
				Damage: damage,
				HP:     fight.HP(),
			})
		}
	})
}

// ResolveBuildings applies the queued attacks aimed at buildings.
func (s *CombatSystem) ResolveBuildings(buildings []*entity.Building, queue *event.AttackQueue) {
	for _, b := range buildings {
		s.Resolve(b, queue)
	}
}

// Sweep visits every member of r once. Members already defeated are returned
// for removal and skipped. The rest take their incoming damage, run their
// behaviour, and queue the attack they deliver this tick into outgoing.
func (s *CombatSystem) Sweep(r *Roster, incoming, outgoing *event.AttackQueue, ctx *entity.Context) []types.EntityID {
	var defeated []types.EntityID
	for _, m := range r.Members() {
		if m.Fight().Defeated() {
			defeated = append(defeated, m.ID())
			continue
		}
		s.Resolve(m, incoming)
		m.Update(ctx)
		if attack, ok := m.PendingAttack(); ok {
			outgoing.Push(attack)
		}
	}
	return defeated
}
