package entity

import (
	"castle-defense/internal/component"
	"castle-defense/internal/event"
	"castle-defense/internal/spatial"
	"castle-defense/internal/types"
	"castle-defense/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 0.02

func newCtx(signal *types.Direction, rivals *spatial.Registry) *Context {
	return &Context{
		DeltaTime:   tick,
		WindowWidth: 1280,
		RivalComing: signal,
		Positions:   spatial.NewRegistry(),
		Rivals:      rivals,
	}
}

func registryWith(id types.EntityID, x float64) *spatial.Registry {
	r := spatial.NewRegistry()
	r.Set(id, types.Vec2{X: x, Y: 550})
	return r
}

func TestIdleDrawPicksDirection(t *testing.T) {
	cases := []struct {
		draw     float64
		positive bool
	}{
		{0.3, true},
		{0.7, false},
	}
	for _, tc := range cases {
		h := NewHuman(1, DefaultHumanProfile())
		h.stateTimer.Advance(3)
		ctx := newCtx(nil, nil)
		ctx.Rand = &utils.FixedSampler{Values: []float64{tc.draw}}

		h.Update(ctx)

		assert.Equal(t, component.HumanWalking, h.State())
		// 1.5 * 0.2, damped by one tick of friction
		assert.InDelta(t, 0.3, abs(h.Velocity()), 0.01)
		assert.Equal(t, tc.positive, h.Velocity() > 0)
		assert.Equal(t, 0.0, h.stateTimer.Elapsed())
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestWalkingReturnsToIdle(t *testing.T) {
	h := NewHuman(1, DefaultHumanProfile())
	h.SetState(component.HumanWalking)
	h.physics.Velocity = 0.3
	h.stateTimer.Advance(1.5)

	h.Update(newCtx(nil, nil))

	assert.Equal(t, component.HumanIdle, h.State())
	assert.Greater(t, h.Body().Position.X, 45.0)
}

func TestRunningWithoutDirectionAborts(t *testing.T) {
	h := NewHuman(1, DefaultHumanProfile())
	h.SetState(component.HumanRunning)
	h.engage(9)

	h.Update(newCtx(nil, registryWith(9, 50)))

	assert.Equal(t, component.HumanWalking, h.State())
	_, hasTarget := h.AttackTarget()
	_, hasDir := h.RivalDir()
	assert.False(t, hasTarget)
	assert.False(t, hasDir)
	assert.Equal(t, 45.0, h.Body().Position.X)
}

func TestSignalLatchesOnce(t *testing.T) {
	h := NewHuman(1, DefaultHumanProfile())
	h.rivalDir = types.Dir(types.Left)

	h.Update(newCtx(types.Dir(types.Right), nil))

	dir, ok := h.RivalDir()
	require.True(t, ok)
	assert.Equal(t, types.Left, dir)
	assert.Equal(t, component.HumanRunning, h.State())
}

func TestHumanAttackCycle(t *testing.T) {
	h := NewHuman(1, DefaultHumanProfile())
	rivals := registryWith(7, 70)
	ctx := newCtx(types.Dir(types.Right), rivals)

	// Idle -> Running -> target in reach within the same tick.
	h.Update(ctx)
	require.Equal(t, component.HumanAttacking, h.State())
	target, ok := h.AttackTarget()
	require.True(t, ok)
	assert.Equal(t, event.Attack{Target: 7, Damage: 20}, target)
	_, pending := h.PendingAttack()
	assert.False(t, pending, "cooldown has not elapsed")

	h.Update(ctx)
	assert.Equal(t, component.HumanAttackWaiting, h.State())

	long := *ctx
	long.DeltaTime = 1.5
	h.Update(&long)
	assert.Equal(t, component.HumanAttacking, h.State())
	attack, pending := h.PendingAttack()
	require.True(t, pending)
	assert.Equal(t, types.EntityID(7), attack.Target)

	// Re-arming restarts the cooldown, so the attack is delivered once per cycle.
	h.Update(ctx)
	assert.Equal(t, component.HumanAttacking, h.State())
	_, pending = h.PendingAttack()
	assert.False(t, pending)
}

func TestHumanDisengagesWhenSignalDisappears(t *testing.T) {
	h := NewHuman(1, DefaultHumanProfile())
	h.SetState(component.HumanAttackWaiting)
	h.rivalDir = types.Dir(types.Right)
	h.engage(7)

	h.Update(newCtx(nil, nil))

	assert.Equal(t, component.HumanWalking, h.State())
	_, hasTarget := h.AttackTarget()
	assert.False(t, hasTarget)
}

func TestHumanTargetPicksLowestID(t *testing.T) {
	self := component.Body{Position: types.Vec2{X: 45}, Size: types.Vec2{X: 30, Y: 50}}
	rivals := spatial.NewRegistry()
	rivals.Set(5, types.Vec2{X: 70})
	rivals.Set(2, types.Vec2{X: 74})
	rivals.Set(1, types.Vec2{X: 500})

	id, ok := humanTarget(self, rivals)
	require.True(t, ok)
	assert.Equal(t, types.EntityID(2), id)

	_, ok = humanTarget(self, registryWith(1, 500))
	assert.False(t, ok)
}

func TestEnemyTargetsBuilding(t *testing.T) {
	self := component.Body{Position: types.Vec2{X: 130}, Size: types.Vec2{X: 30, Y: 50}}
	buildings := []types.Vec2{{X: 70, Y: 550}}

	id, ok := enemyTarget(self, spatial.NewRegistry(), buildings)
	require.True(t, ok)
	assert.Equal(t, types.EntityID(100), id)

	// Humans in reach come first.
	id, ok = enemyTarget(self, registryWith(3, 120), buildings)
	require.True(t, ok)
	assert.Equal(t, types.EntityID(3), id)
}

func TestEnemyAcquisitionWaitsForCooldown(t *testing.T) {
	e := NewEnemy(1, DefaultEnemyProfile())
	e.SetPosition(types.Vec2{X: 700, Y: 550})
	ctx := newCtx(types.Dir(types.Left), registryWith(4, 690))

	e.Update(ctx)
	assert.Equal(t, component.EnemyRunning, e.State())
	assert.Less(t, e.Body().Position.X, 700.0)

	long := *ctx
	long.DeltaTime = 1.5
	e.Update(&long)
	assert.Equal(t, component.EnemyAttacking, e.State())
	attack, pending := e.PendingAttack()
	require.True(t, pending)
	assert.Equal(t, event.Attack{Target: 4, Damage: 20}, attack)
}

func TestEnemyHeadsToMiddle(t *testing.T) {
	e := NewEnemy(1, DefaultEnemyProfile())
	e.SetPosition(types.Vec2{X: 300, Y: 550})
	e.Update(newCtx(types.Dir(types.Left), nil))
	assert.Greater(t, e.Body().Position.X, 300.0)
}

func TestWrap(t *testing.T) {
	h := NewHuman(1, DefaultHumanProfile())
	h.SetPosition(types.Vec2{X: -5})
	h.wrap(1280)
	assert.Equal(t, 1275.0, h.Body().Position.X)

	h.SetPosition(types.Vec2{X: 1285})
	h.wrap(1280)
	assert.Equal(t, 5.0, h.Body().Position.X)

	e := NewEnemy(2, DefaultEnemyProfile())
	e.SetPosition(types.Vec2{X: 1285})
	e.wrap(1280)
	assert.Equal(t, 1285.0, e.Body().Position.X)

	e.SetPosition(types.Vec2{X: -5})
	e.wrap(1280)
	assert.Equal(t, 1275.0, e.Body().Position.X)
}

func TestUpdateWritesPositionIndex(t *testing.T) {
	e := NewEnemy(3, DefaultEnemyProfile())
	ctx := newCtx(types.Dir(types.Left), nil)
	e.Update(ctx)

	pos, ok := ctx.Positions.Get(3)
	require.True(t, ok)
	assert.Equal(t, e.Body().Position, pos)
	// Off-screen enemies keep walking in from the right.
	assert.Greater(t, pos.X, 1280.0)
}

func TestBuildingIDs(t *testing.T) {
	b := NewBuilding(0, component.KindBaseBuilding)
	assert.Equal(t, types.EntityID(100), b.ID())
	assert.Equal(t, 500.0, b.Fight().HP())
	assert.Equal(t, types.EntityID(101), BuildingID(1))
	assert.Equal(t, 300.0, NewBuilding(1, component.KindOtherBuilding).Fight().MaxHP())
}
