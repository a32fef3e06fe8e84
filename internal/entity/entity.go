// Package entity implements the per-tick behaviour of units and buildings.
package entity

import (
	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/defs"
	"castle-defense/internal/event"
	"castle-defense/internal/spatial"
	"castle-defense/internal/types"
	"castle-defense/internal/utils"
)

// Damageable is anything the resolution pass can hit.
type Damageable interface {
	ID() types.EntityID
	Kind() component.Kind
	Body() component.Body
	Fight() *component.FightStatus
}

// Combatant — общий контракт для Human и Enemy.
type Combatant interface {
	Damageable
	Update(ctx *Context)
	// PendingAttack returns the attack to deliver this tick, if the cooldown
	// has elapsed and a target is held.
	PendingAttack() (event.Attack, bool)
	AttackTarget() (event.Attack, bool)
	RivalDir() (types.Direction, bool)
	StateName() string
}

// Context carries everything a unit reads during one tick.
type Context struct {
	DeltaTime   float64
	WindowWidth float64
	// RivalComing is the side the opposing roster approaches from; nil when absent.
	RivalComing *types.Direction
	Positions   *spatial.Registry // own roster
	Rivals      *spatial.Registry // opposing roster
	Buildings   []types.Vec2      // player buildings by index
	Rand        utils.Sampler
}

func (c *Context) draw() float64 {
	if c.Rand == nil {
		return 0
	}
	return c.Rand.Float64()
}

// Profile holds the tunable numbers of one unit kind.
type Profile struct {
	WalkSpeed      float64
	IdleWalkFactor float64
	AttackDamage   float64
	Friction       float64
	IdleDuration   float64
	WalkDuration   float64
	AttackCooldown float64
}

// HumanProfile builds the defender profile from tuning.
func HumanProfile(t defs.Tuning) Profile {
	return Profile{
		WalkSpeed:      t.HumansWalkSpeed,
		IdleWalkFactor: t.HumansIdleWalkSpeedFactor,
		AttackDamage:   t.HumansAttackDamage,
		Friction:       config.HumansFriction,
		IdleDuration:   t.IdleDuration,
		WalkDuration:   t.WalkDuration,
		AttackCooldown: t.AttackCooldown,
	}
}

// EnemyProfile builds the attacker profile from tuning.
func EnemyProfile(t defs.Tuning) Profile {
	return Profile{
		WalkSpeed:      t.EnemyWalkSpeed,
		AttackDamage:   t.EnemyAttackDamage,
		Friction:       config.EnemyFriction,
		IdleDuration:   t.IdleDuration,
		WalkDuration:   t.WalkDuration,
		AttackCooldown: t.AttackCooldown,
	}
}

func DefaultHumanProfile() Profile { return HumanProfile(defs.DefaultTuning()) }
func DefaultEnemyProfile() Profile { return EnemyProfile(defs.DefaultTuning()) }

// behaviour is the kind-specific half of a unit's tick.
type behaviour interface {
	alerted()
	disengage(signal *types.Direction)
	control(ctx *Context)
}

// unit is the state shared by every combatant kind.
type unit struct {
	id           types.EntityID
	kind         component.Kind
	player       bool
	body         component.Body
	fight        component.FightStatus
	physics      component.PhysicalStates
	stateTimer   component.Timer
	attackTimer  component.Timer
	attackTarget *event.Attack
	rivalDir     *types.Direction
	profile      Profile
}

func (u *unit) ID() types.EntityID            { return u.id }
func (u *unit) Kind() component.Kind          { return u.kind }
func (u *unit) Body() component.Body          { return u.body }
func (u *unit) Fight() *component.FightStatus { return &u.fight }

// Velocity returns the free-locomotion velocity.
func (u *unit) Velocity() float64 { return u.physics.Velocity }

// SetPosition places the unit; used by spawners and tests.
func (u *unit) SetPosition(pos types.Vec2) { u.body.Position = pos }

func (u *unit) AttackTarget() (event.Attack, bool) {
	if u.attackTarget == nil {
		return event.Attack{}, false
	}
	return *u.attackTarget, true
}

func (u *unit) RivalDir() (types.Direction, bool) {
	if u.rivalDir == nil {
		return 0, false
	}
	return *u.rivalDir, true
}

func (u *unit) PendingAttack() (event.Attack, bool) {
	if !u.cooldownElapsed() {
		return event.Attack{}, false
	}
	return u.AttackTarget()
}

func (u *unit) cooldownElapsed() bool {
	return u.attackTimer.Over(u.profile.AttackCooldown)
}

// refreshAttack re-arms the held target once the cooldown is over. It reports
// false while the cooldown is still running.
func (u *unit) refreshAttack() bool {
	if !u.cooldownElapsed() {
		return false
	}
	if u.attackTarget != nil {
		u.attackTarget.Damage = u.fight.AttackDamage
		u.attackTimer.Restart()
	}
	return true
}

func (u *unit) engage(target types.EntityID) {
	u.attackTarget = &event.Attack{Target: target, Damage: u.fight.AttackDamage}
}

func (u *unit) drop() {
	u.attackTarget = nil
	u.rivalDir = nil
}

// update runs the shared tick skeleton around the kind-specific hooks.
func (u *unit) update(b behaviour, ctx *Context) {
	u.stateTimer.Advance(ctx.DeltaTime)
	u.attackTimer.Advance(ctx.DeltaTime)

	if ctx.RivalComing != nil {
		if u.rivalDir == nil {
			u.rivalDir = types.Dir(*ctx.RivalComing)
		}
		b.alerted()
	}
	b.disengage(ctx.RivalComing)
	b.control(ctx)
	u.physics.Decay(ctx.DeltaTime)
	u.wrap(ctx.WindowWidth)

	if ctx.Positions != nil {
		ctx.Positions.Set(u.id, u.body.Position)
	}
}

// wrap folds a negative x back from the right edge. Only the player side also
// wraps past the right edge, so enemies can approach from off-screen.
func (u *unit) wrap(width float64) {
	x := u.body.Position.X
	if x < 0 {
		u.body.Position.X = width + x
	}
	if x > width && u.player {
		u.body.Position.X = x - width
	}
}
