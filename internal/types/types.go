// internal/types/types.go
package types

// EntityID — идентификатор сущности внутри своего ростера.
type EntityID uint32

// Vec2 is a 2D point or extent in screen pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by f on both axes.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Direction is the side the opposing roster approaches from.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	}
	return "unknown"
}

// Dir returns a pointer to a copy of d, for optional direction signals.
func Dir(d Direction) *Direction {
	return &d
}
