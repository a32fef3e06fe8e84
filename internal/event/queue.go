package event

import "castle-defense/internal/types"

// Attack — отложенный удар: цель и урон. Produced by an attacker during its
// update, consumed once by the resolution pass.
type Attack struct {
	Target types.EntityID
	Damage float64
}

// AttackQueue holds the pending attacks aimed at one side. An id is in the
// pending set exactly when at least one queued attack targets it.
type AttackQueue struct {
	attacks []Attack
	pending map[types.EntityID]struct{}
}

func NewAttackQueue() *AttackQueue {
	return &AttackQueue{pending: make(map[types.EntityID]struct{})}
}

// Push queues an attack.
func (q *AttackQueue) Push(a Attack) {
	q.attacks = append(q.attacks, a)
	q.pending[a.Target] = struct{}{}
}

// Pending reports whether any attack targets id.
func (q *AttackQueue) Pending(id types.EntityID) bool {
	_, ok := q.pending[id]
	return ok
}

func (q *AttackQueue) Len() int {
	return len(q.attacks)
}

// Attacks returns a copy of the queued attacks in push order.
func (q *AttackQueue) Attacks() []Attack {
	out := make([]Attack, len(q.attacks))
	copy(out, q.attacks)
	return out
}

// Apply hands every queued damage for id to fn in push order, then drops
// those attacks and clears id. Returns the number of attacks applied.
func (q *AttackQueue) Apply(id types.EntityID, fn func(damage float64)) int {
	if !q.Pending(id) {
		return 0
	}
	applied := 0
	kept := q.attacks[:0]
	for _, a := range q.attacks {
		if a.Target != id {
			kept = append(kept, a)
			continue
		}
		fn(a.Damage)
		applied++
	}
	q.attacks = kept
	delete(q.pending, id)
	return applied
}

// Clear drops every queued attack, consumed or not.
func (q *AttackQueue) Clear() {
	q.attacks = q.attacks[:0]
	clear(q.pending)
}
