package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) OnEvent(e Event) {
	*r.log = append(*r.log, r.name+":"+string(e.Type))
}

func TestDispatcherOrder(t *testing.T) {
	var log []string
	d := NewDispatcher()
	all := &recorder{name: "all", log: &log}
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	d.SubscribeAll(all)
	d.Subscribe(EntityDamaged, a)
	d.Subscribe(EntityDamaged, b)

	d.Emit(EntityDamaged, DamageInfo{ID: 1})
	d.Emit(WaveStarted, WaveInfo{Number: 1})

	assert.Equal(t, []string{
		"a:EntityDamaged", "b:EntityDamaged", "all:EntityDamaged",
		"all:WaveStarted",
	}, log)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{name: "a", log: &log}
	d.Subscribe(GameOver, a)
	d.Unsubscribe(GameOver, a)
	d.Unsubscribe(GameOver, a)

	d.Emit(GameOver, nil)
	assert.Empty(t, log)
}

func TestAttackQueueApplyOnce(t *testing.T) {
	q := NewAttackQueue()
	q.Push(Attack{Target: 1, Damage: 20})
	q.Push(Attack{Target: 2, Damage: 5})
	q.Push(Attack{Target: 1, Damage: 30})

	var got []float64
	n := q.Apply(1, func(d float64) { got = append(got, d) })
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{20, 30}, got)
	assert.False(t, q.Pending(1))
	assert.True(t, q.Pending(2))
	assert.Equal(t, []Attack{{Target: 2, Damage: 5}}, q.Attacks())

	// Second delivery is a no-op.
	n = q.Apply(1, func(float64) { t.Fatal("applied twice") })
	assert.Equal(t, 0, n)
}

func TestAttackQueueClearIsIdempotent(t *testing.T) {
	q := NewAttackQueue()
	q.Push(Attack{Target: 7, Damage: 1})
	q.Clear()
	q.Clear()

	assert.Equal(t, 0, q.Len())
	assert.False(t, q.Pending(7))
	assert.Empty(t, q.Attacks())

	q.Push(Attack{Target: 7, Damage: 2})
	assert.True(t, q.Pending(7))
	assert.Equal(t, 1, q.Len())
}

func TestAttacksReturnsCopy(t *testing.T) {
	q := NewAttackQueue()
	q.Push(Attack{Target: 1, Damage: 1})
	out := q.Attacks()
	out[0].Damage = 99

	assert.Equal(t, 1.0, q.Attacks()[0].Damage)
}
