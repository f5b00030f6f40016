package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BodyType represents the type of rigid body
type BodyType int

const (
	// BodyTypeDynamic bodies have finite mass and are displaced and bounced by collisions
	BodyTypeDynamic BodyType = iota

	// BodyTypeStatic bodies have infinite mass (inverse mass 0)
	// Collisions never move them; they only move by their own velocity (e.g. walls, moving containers)
	BodyTypeStatic
)

// RigidBody represents a rigid body in the physics simulation
type RigidBody struct {
	Id any

	// Spatial properties
	Transform Transform

	// Linear motion
	Velocity mgl64.Vec2 // units/s

	// Angular motion, integrated only: contacts do not produce torque
	AngularVelocity float64 // rad/s

	BodyType BodyType

	// 1/mass, 0 means infinite mass
	inverseMass float64

	// Collision shape
	Shape ShapeInterface
}

// NewRigidBody creates a new rigid body with the given properties
// density is used to calculate mass for dynamic bodies (ignored for static)
func NewRigidBody(transform Transform, shape ShapeInterface, bodyType BodyType, density float64) *RigidBody {
	rb := &RigidBody{
		Transform: transform,
		Shape:     shape,
		BodyType:  bodyType,
		Velocity:  mgl64.Vec2{0, 0},
	}

	if bodyType == BodyTypeDynamic {
		mass := shape.ComputeMass(density)
		if mass > 0 && !math.IsInf(mass, 1) {
			rb.inverseMass = 1.0 / mass
		}
	}

	return rb
}

// NewCircle creates a dynamic circle with an explicit inverse mass
func NewCircle(center mgl64.Vec2, radius float64, inverseMass float64) *RigidBody {
	rb := NewRigidBody(Transform{Position: center}, &Circle{Radius: radius}, BodyTypeDynamic, 0)
	rb.SetInverseMass(inverseMass)

	return rb
}

// InverseMass returns 1/mass, 0 for static or infinite-mass bodies
func (rb *RigidBody) InverseMass() float64 {
	if rb.BodyType == BodyTypeStatic {
		return 0
	}

	return rb.inverseMass
}

// SetInverseMass overrides the mass computed from the shape.
// Negative, NaN or infinite values are a programming error and panic.
func (rb *RigidBody) SetInverseMass(inverseMass float64) {
	if inverseMass < 0 || math.IsNaN(inverseMass) || math.IsInf(inverseMass, 0) {
		panic("actor: inverse mass must be a finite value >= 0")
	}

	rb.inverseMass = inverseMass
}

// Mass returns the body mass, +Inf when the inverse mass is 0
func (rb *RigidBody) Mass() float64 {
	invMass := rb.InverseMass()
	if invMass == 0 {
		return math.Inf(1)
	}

	return 1.0 / invMass
}

// Position is the body center in world space
func (rb *RigidBody) Position() mgl64.Vec2 {
	return rb.Transform.Position
}

func (rb *RigidBody) Angle() float64 {
	return rb.Transform.Angle
}

// Radius is the circle radius, or the bounding radius for polygons
func (rb *RigidBody) Radius() float64 {
	return rb.Shape.BoundingRadius()
}

// WorldCorners returns the polygon outline in world space, nil for circles
func (rb *RigidBody) WorldCorners() []mgl64.Vec2 {
	if p, ok := rb.Shape.(*Polygon); ok {
		return p.WorldCorners(rb.Transform)
	}

	return nil
}

// Integrate advances the body by dt: position += velocity*dt, angle += angularVelocity*dt
func (rb *RigidBody) Integrate(dt float64) {
	rb.Transform.Position = rb.Transform.Position.Add(rb.Velocity.Mul(dt))
	rb.Transform.Angle += rb.AngularVelocity * dt
}

// ApplyImpulse changes the velocity by impulse * inverse mass. A no-op for infinite mass bodies.
func (rb *RigidBody) ApplyImpulse(impulse mgl64.Vec2) {
	rb.Velocity = rb.Velocity.Add(impulse.Mul(rb.InverseMass()))
}

// Translate moves the body, used by positional correction
func (rb *RigidBody) Translate(delta mgl64.Vec2) {
	rb.Transform.Position = rb.Transform.Position.Add(delta)
}

// AABB is the bounding box at the current transform.
// It is not cached: several bodies may share one shape.
func (rb *RigidBody) AABB() AABB {
	return rb.Shape.ComputeAABB(rb.Transform)
}
