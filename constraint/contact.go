package constraint

import (
	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// ContactConstraint is one overlapping pair found by the narrow phase.
// Normal is a unit vector pointing from A to B: B separates by moving along +Normal, A along -Normal.
type ContactConstraint struct {
	BodyA       *actor.RigidBody
	BodyB       *actor.RigidBody
	Normal      mgl64.Vec2
	Depth       float64
	Restitution float64
}

// Resolve applies the positional correction, then the velocity bounce
func (c *ContactConstraint) Resolve() {
	c.SolvePosition()
	c.SolveVelocity()
}

// SolvePosition removes the whole overlap in one pass.
// Each body moves by its own share of the total inverse mass, so an infinite mass body never moves.
func (c *ContactConstraint) SolvePosition() {
	if c.Depth <= 0 {
		return
	}

	invMassA := c.BodyA.InverseMass()
	invMassB := c.BodyB.InverseMass()
	totalInvMass := invMassA + invMassB
	if totalInvMass < MassEpsilon {
		return
	}

	correction := c.Normal.Mul(c.Depth / totalInvMass)

	if invMassA > 0 {
		c.BodyA.Translate(correction.Mul(-invMassA))
	}
	if invMassB > 0 {
		c.BodyB.Translate(correction.Mul(invMassB))
	}
}

// SolveVelocity bounces bodies moving toward each other along the normal.
// The impulse targets a closing speed of -restitution * closingSpeed.
func (c *ContactConstraint) SolveVelocity() {
	bodyA := c.BodyA
	bodyB := c.BodyB

	invMassA := bodyA.InverseMass()
	invMassB := bodyB.InverseMass()
	totalInvMass := invMassA + invMassB
	if totalInvMass < MassEpsilon {
		return
	}

	relativeVel := bodyB.Velocity.Sub(bodyA.Velocity)
	closingSpeed := relativeVel.Dot(c.Normal)

	// Separating or resting: no bounce
	if closingSpeed >= 0 {
		return
	}

	restitution := ClampRestitution(c.Restitution)
	targetSpeed := -restitution * closingSpeed
	lambda := (targetSpeed - closingSpeed) / totalInvMass

	impulse := c.Normal.Mul(lambda)
	bodyA.ApplyImpulse(impulse.Mul(-1))
	bodyB.ApplyImpulse(impulse)
}
