package feather2d

import (
	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/constraint"
	"github.com/akmonengine/feather2d/sat"
	"github.com/go-gl/mathgl/mgl64"
)

// Contact is one resolved overlap. Normal points from BodyA to BodyB.
type Contact = constraint.ContactConstraint

// centers closer than this use the fallback normal
const coincidentEpsilon = 1e-12

var fallbackNormal = mgl64.Vec2{1, 0}

// NarrowPhase tests an outside pair (two bodies that must not overlap).
// Pairs of two infinite mass bodies are skipped, so are pairs whose AABBs do not overlap.
func NarrowPhase(bodyA, bodyB *actor.RigidBody) (Contact, bool) {
	if bodyA == bodyB {
		return Contact{}, false
	}
	if bodyA.InverseMass() == 0 && bodyB.InverseMass() == 0 {
		return Contact{}, false
	}
	if !bodyA.AABB().Overlaps(bodyB.AABB()) {
		return Contact{}, false
	}

	typeA := bodyA.Shape.Type()
	typeB := bodyB.Shape.Type()

	switch {
	case typeA == actor.ShapeTypeCircle && typeB == actor.ShapeTypeCircle:
		return CollideCircles(bodyA, bodyB)
	case typeA == actor.ShapeTypePolygon && typeB == actor.ShapeTypePolygon:
		return fromResult(bodyA, bodyB, sat.Polygons)
	case typeA == actor.ShapeTypeCircle:
		return fromResult(bodyA, bodyB, sat.CirclePolygon)
	default:
		// polygon first: run circle vs polygon and flip the normal back
		result, ok := sat.CirclePolygon(bodyB, bodyA)
		if !ok {
			return Contact{}, false
		}
		return Contact{BodyA: bodyA, BodyB: bodyB, Normal: result.Normal.Mul(-1), Depth: result.Depth}, true
	}
}

func fromResult(bodyA, bodyB *actor.RigidBody, test func(a, b *actor.RigidBody) (sat.Result, bool)) (Contact, bool) {
	result, ok := test(bodyA, bodyB)
	if !ok {
		return Contact{}, false
	}

	return Contact{BodyA: bodyA, BodyB: bodyB, Normal: result.Normal, Depth: result.Depth}, true
}

// CollideCircles tests two circles. Touching circles collide with a zero depth.
func CollideCircles(bodyA, bodyB *actor.RigidBody) (Contact, bool) {
	d := bodyB.Position().Sub(bodyA.Position())
	distSqr := d.LenSqr()
	sumRadii := bodyA.Radius() + bodyB.Radius()

	if distSqr > sumRadii*sumRadii {
		return Contact{}, false
	}

	dist := actor.Sqrt(distSqr)
	normal := fallbackNormal
	if dist > coincidentEpsilon {
		normal = actor.Div(d, dist)
	}

	return Contact{
		BodyA:  bodyA,
		BodyB:  bodyB,
		Normal: normal,
		Depth:  sumRadii - dist,
	}, true
}

// CollideContainer tests a body that must stay inside a circular container.
// It reports a contact once the body reaches the boundary, with BodyA the inner body
// and BodyB the container: separating pushes the inner body back toward the center.
// Polygons are tested with their farthest corner.
// Like NarrowPhase, nothing is reported when both bodies have infinite mass.
func CollideContainer(inner, container *actor.RigidBody) (Contact, bool) {
	outer, ok := container.Shape.(*actor.Circle)
	if !ok || inner == container {
		return Contact{}, false
	}
	if inner.InverseMass() == 0 && container.InverseMass() == 0 {
		return Contact{}, false
	}

	var d mgl64.Vec2
	var maxDist float64

	switch shape := inner.Shape.(type) {
	case *actor.Circle:
		d = inner.Position().Sub(container.Position())
		maxDist = outer.Radius - shape.Radius
	case *actor.Polygon:
		d = farthestCorner(inner.WorldCorners(), container.Position()).Sub(container.Position())
		maxDist = outer.Radius
	default:
		return Contact{}, false
	}

	distSqr := d.LenSqr()
	if maxDist >= 0 && distSqr < maxDist*maxDist {
		return Contact{}, false
	}

	dist := actor.Sqrt(distSqr)
	normal := fallbackNormal
	if dist > coincidentEpsilon {
		normal = actor.Div(d, dist)
	}

	return Contact{
		BodyA:  inner,
		BodyB:  container,
		Normal: normal,
		Depth:  dist - maxDist,
	}, true
}

func farthestCorner(corners []mgl64.Vec2, from mgl64.Vec2) mgl64.Vec2 {
	farthest := from
	farthestSqr := -1.0
	for _, corner := range corners {
		if distSqr := corner.Sub(from).LenSqr(); distSqr > farthestSqr {
			farthest = corner
			farthestSqr = distSqr
		}
	}

	return farthest
}
