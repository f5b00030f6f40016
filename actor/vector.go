package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Div divides v by the scalar s.
// A zero divisor is a caller bug, it panics instead of producing Inf/NaN components.
func Div(v mgl64.Vec2, s float64) mgl64.Vec2 {
	if s == 0 {
		panic("actor: division of a vector by zero")
	}

	return v.Mul(1.0 / s)
}

// Rotate returns v rotated counter-clockwise by angle (radians)
func Rotate(v mgl64.Vec2, angle float64) mgl64.Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

// RotateSinCos rotates v with a precomputed sin/cos pair, useful when many points share the same angle
func RotateSinCos(v mgl64.Vec2, sin, cos float64) mgl64.Vec2 {
	return mgl64.Vec2{
		cos*v.X() - sin*v.Y(),
		sin*v.X() + cos*v.Y(),
	}
}

// Cross returns the z component of the 3D cross product of a and b
func Cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Perp returns v rotated clockwise by 90°.
// For a counter-clockwise polygon, Perp(edge) points outward.
func Perp(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{v.Y(), -v.X()}
}

// Sqrt is math.Sqrt with a precondition: a negative input panics rather than returning NaN.
func Sqrt(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		panic("actor: square root of a negative number")
	}

	return math.Sqrt(x)
}
