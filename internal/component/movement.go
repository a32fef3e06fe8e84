// component/movement.go
package component

import (
	"castle-defense/internal/config"
	"castle-defense/internal/types"
	"math"
)

// Body — положение и размер прямоугольника сущности.
// Position is the bottom-center origin of the rectangle.
type Body struct {
	Position types.Vec2
	Size     types.Vec2
}

func (b Body) Left() float64  { return b.Position.X - b.Size.X/2 }
func (b Body) Right() float64 { return b.Position.X + b.Size.X/2 }

// Move shifts the body by step scaled to a 60fps-normalized tick.
func (b *Body) Move(step types.Vec2, deltaTime float64) {
	b.Position = b.Position.Add(step.Scale(deltaTime * config.FrameRateBase))
}

// PhysicalStates — скорость и трение для свободного передвижения.
type PhysicalStates struct {
	Velocity float64
	Friction float64
}

// Decay damps the velocity toward zero; tiny values snap to exactly zero.
func (p *PhysicalStates) Decay(deltaTime float64) {
	if math.Abs(p.Velocity) < config.VelocityEpsilon {
		p.Velocity = 0
		return
	}
	p.Velocity -= p.Velocity * p.Friction * deltaTime
}
