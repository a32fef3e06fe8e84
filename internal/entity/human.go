package entity

import (
	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/types"
)

// Human — защитник базы. Wanders while idle, runs at the enemy once alerted.
type Human struct {
	unit
	state component.HumanState
}

var _ Combatant = (*Human)(nil)

// NewHuman creates an idle defender at the default spawn point.
func NewHuman(id types.EntityID, p Profile) *Human {
	return &Human{
		unit: unit{
			id:     id,
			kind:   component.KindHuman,
			player: true,
			body: component.Body{
				Position: types.Vec2{X: config.HumansSpawnX, Y: config.GroundPosY},
				Size:     types.Vec2{X: config.HumansWidth, Y: config.HumansHeight},
			},
			fight:   component.NewFightStatus(component.KindHuman, p.AttackDamage),
			physics: component.PhysicalStates{Friction: p.Friction},
			profile: p,
		},
		state: component.HumanIdle,
	}
}

func (h *Human) State() component.HumanState     { return h.state }
func (h *Human) SetState(s component.HumanState) { h.state = s }
func (h *Human) StateName() string               { return h.state.String() }

func (h *Human) Update(ctx *Context) {
	h.update(h, ctx)
}

func (h *Human) alerted() {
	if h.state == component.HumanIdle || h.state == component.HumanWalking {
		h.state = component.HumanRunning
	}
}

func (h *Human) disengage(signal *types.Direction) {
	if signal == nil && h.state == component.HumanAttackWaiting {
		h.drop()
		h.state = component.HumanWalking
	}
}

func (h *Human) control(ctx *Context) {
	switch h.state {
	case component.HumanIdle:
		if h.stateTimer.Over(h.profile.IdleDuration) {
			h.stateTimer.Restart()
			h.state = component.HumanWalking
			speed := h.profile.WalkSpeed * h.profile.IdleWalkFactor
			if ctx.draw() < 0.5 {
				h.physics.Velocity = speed
			} else {
				h.physics.Velocity = -speed
			}
		}
	case component.HumanWalking:
		h.body.Move(types.Vec2{X: h.physics.Velocity}, ctx.DeltaTime)
		if h.stateTimer.Over(h.profile.WalkDuration) {
			h.stateTimer.Restart()
			h.state = component.HumanIdle
		}
	case component.HumanRunning:
		h.physics.Velocity = h.profile.WalkSpeed
		if h.rivalDir == nil {
			// Nothing to run at: back to wandering.
			h.state = component.HumanWalking
			h.drop()
			return
		}
		step := h.physics.Velocity
		if *h.rivalDir == types.Left {
			step = -step
		}
		h.body.Move(types.Vec2{X: step}, ctx.DeltaTime)
		// No cooldown gate here, unlike Enemy.
		if id, ok := humanTarget(h.body, ctx.Rivals); ok {
			h.state = component.HumanAttacking
			h.engage(id)
		}
	case component.HumanAttacking:
		if !h.refreshAttack() {
			h.state = component.HumanAttackWaiting
		}
	case component.HumanAttackWaiting:
		if h.cooldownElapsed() {
			h.state = component.HumanAttacking
		}
	}
}
