package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position and an orientation in 2D space
type Transform struct {
	Position mgl64.Vec2
	Angle    float64 // radians, counter-clockwise
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec2{0, 0},
		Angle:    0,
	}
}

// ToWorld maps a body-local point to world space: rotate by Angle, then translate by Position
func (t Transform) ToWorld(local mgl64.Vec2) mgl64.Vec2 {
	return Rotate(local, t.Angle).Add(t.Position)
}
