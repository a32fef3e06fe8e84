package spatial

import (
	"castle-defense/internal/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryIteratesInIDOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []types.EntityID{42, 3, 17, 0} {
		r.Set(id, types.Vec2{X: float64(id)})
	}

	assert.Equal(t, []types.EntityID{0, 3, 17, 42}, r.IDs())

	var seen []types.EntityID
	r.Each(func(id types.EntityID, pos types.Vec2) bool {
		seen = append(seen, id)
		return id < 17
	})
	assert.Equal(t, []types.EntityID{0, 3, 17}, seen)
}

func TestRegistrySetOverwritesAndDelete(t *testing.T) {
	r := NewRegistry()
	r.Set(1, types.Vec2{X: 10})
	r.Set(1, types.Vec2{X: 20})
	assert.Equal(t, 1, r.Len())

	pos, ok := r.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 20.0, pos.X)

	r.Delete(1)
	r.Delete(1)
	assert.False(t, r.Has(1))
	assert.Equal(t, 0, r.Len())
}

func TestRegistryClone(t *testing.T) {
	r := NewRegistry()
	r.Set(1, types.Vec2{X: 10})
	c := r.Clone()
	c.Set(2, types.Vec2{})
	c.Delete(1)

	assert.True(t, r.Has(1))
	assert.False(t, r.Has(2))
}
