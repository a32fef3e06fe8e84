package entity

import (
	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/types"
)

// Enemy — нападающий. Always alert: walks toward the middle of the screen and
// attacks whatever it reaches first.
type Enemy struct {
	unit
	state component.EnemyState
}

var _ Combatant = (*Enemy)(nil)

// NewEnemy creates a running enemy just past the right edge.
func NewEnemy(id types.EntityID, p Profile) *Enemy {
	return &Enemy{
		unit: unit{
			id:   id,
			kind: component.KindEnemy,
			body: component.Body{
				Position: types.Vec2{X: config.EnemySpawnX, Y: config.GroundPosY},
				Size:     types.Vec2{X: config.HumansWidth, Y: config.HumansHeight},
			},
			fight:   component.NewFightStatus(component.KindEnemy, p.AttackDamage),
			physics: component.PhysicalStates{Friction: p.Friction},
			profile: p,
		},
		state: component.EnemyRunning,
	}
}

func (e *Enemy) State() component.EnemyState     { return e.state }
func (e *Enemy) SetState(s component.EnemyState) { e.state = s }
func (e *Enemy) StateName() string               { return e.state.String() }

func (e *Enemy) Update(ctx *Context) {
	e.update(e, ctx)
}

func (e *Enemy) alerted()                   {}
func (e *Enemy) disengage(*types.Direction) {}

func (e *Enemy) control(ctx *Context) {
	switch e.state {
	case component.EnemyRunning:
		step := e.profile.WalkSpeed
		if e.body.Position.X > ctx.WindowWidth/2 {
			step = -step
		}
		e.body.Move(types.Vec2{X: step}, ctx.DeltaTime)
		if !e.cooldownElapsed() {
			return
		}
		if id, ok := enemyTarget(e.body, ctx.Rivals, ctx.Buildings); ok {
			e.state = component.EnemyAttacking
			e.engage(id)
		}
	case component.EnemyAttacking:
		if !e.refreshAttack() {
			e.state = component.EnemyAttackWaiting
		}
	case component.EnemyAttackWaiting:
		if e.cooldownElapsed() {
			e.state = component.EnemyAttacking
		}
	}
}
