// Package sat implements the Separating Axis Theorem (SAT) narrow phase for convex 2D shapes.
//
// Two convex shapes are disjoint if and only if there is an axis on which their projections
// do not overlap. For polygons it is enough to test the outward edge normals of both shapes;
// a circle adds the axis from the polygon corner closest to its center.
//
// When every axis overlaps, the axis with the smallest overlap gives the contact normal
// (minimum translation vector) and the overlap on that axis gives the penetration depth.
//
// Conventions:
//   - Polygon corners are counter-clockwise (enforced by actor.NewPolygon), so the edge
//     normal actor.Perp(c[i+1]-c[i]) points outward.
//   - The returned normal points from A to B: moving B by Normal*Depth (or A by -Normal*Depth)
//     separates the shapes.
//   - Touching shapes (zero overlap) are reported as colliding with Depth 0, like the
//     circle test in the root package.
//   - Ties between axes keep the first axis tested: A's edges in order, then B's
//     (or the closest-corner axis for circles).
//
// References:
//   - Gottschalk, Lin, Manocha: "OBBTree: A Hierarchical Structure for Rapid Interference Detection" (1996)
//   - Ericson: "Real-Time Collision Detection" (2004), chapter 5
package sat

import (
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const axisEpsilon = 1e-12

// Result is the minimum translation found by SAT
type Result struct {
	Normal mgl64.Vec2
	Depth  float64
}

// Interval is the projection of a shape on an axis
type Interval struct {
	Min float64
	Max float64
}

// ProjectPolygon projects every corner on axis and keeps the extremes
func ProjectPolygon(corners []mgl64.Vec2, axis mgl64.Vec2) Interval {
	interval := Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, c := range corners {
		d := c.Dot(axis)
		interval.Min = math.Min(interval.Min, d)
		interval.Max = math.Max(interval.Max, d)
	}

	return interval
}

// ProjectCircle projects a circle on a unit axis
func ProjectCircle(center mgl64.Vec2, radius float64, axis mgl64.Vec2) Interval {
	d := center.Dot(axis)

	return Interval{Min: d - radius, Max: d + radius}
}

// Separation returns how far b must move along +axis (forward) or -axis (backward)
// to stop overlapping a. A negative value means a gap on this axis.
func Separation(a, b Interval) (forward, backward float64) {
	return a.Max - b.Min, b.Max - a.Min
}

// EdgeNormals returns the outward unit normals of a counter-clockwise outline
func EdgeNormals(corners []mgl64.Vec2) []mgl64.Vec2 {
	n := len(corners)
	normals := make([]mgl64.Vec2, 0, n)
	for i := range corners {
		edge := corners[(i+1)%n].Sub(corners[i])
		if edge.LenSqr() < axisEpsilon {
			continue
		}
		normals = append(normals, actor.Perp(edge).Normalize())
	}

	return normals
}

// search keeps the minimum overlap axis across calls to test
type search struct {
	best  Result
	found bool
}

// test returns false as soon as a separating axis is found
func (s *search) test(a, b Interval, axis mgl64.Vec2) bool {
	forward, backward := Separation(a, b)
	if forward < 0 || backward < 0 {
		return false
	}

	depth := forward
	normal := axis
	if backward < forward {
		depth = backward
		normal = axis.Mul(-1)
	}

	if !s.found || depth < s.best.Depth {
		s.best = Result{Normal: normal, Depth: depth}
		s.found = true
	}

	return true
}

// Polygons runs SAT between two polygon bodies.
//
// Returns:
//   - Result: contact normal (from A to B) and penetration depth
//   - bool: false when a separating axis exists
func Polygons(a, b *actor.RigidBody) (Result, bool) {
	cornersA := a.WorldCorners()
	cornersB := b.WorldCorners()
	if len(cornersA) < 3 || len(cornersB) < 3 {
		return Result{}, false
	}

	var s search
	for _, corners := range [2][]mgl64.Vec2{cornersA, cornersB} {
		for _, axis := range EdgeNormals(corners) {
			if !s.test(ProjectPolygon(cornersA, axis), ProjectPolygon(cornersB, axis), axis) {
				return Result{}, false
			}
		}
	}

	return s.best, s.found
}

// CirclePolygon runs SAT between a circle body (A) and a polygon body (B).
// The normal points from the circle to the polygon.
func CirclePolygon(circle, polygon *actor.RigidBody) (Result, bool) {
	shape, ok := circle.Shape.(*actor.Circle)
	if !ok {
		return Result{}, false
	}
	corners := polygon.WorldCorners()
	if len(corners) < 3 {
		return Result{}, false
	}

	center := circle.Position()
	axes := EdgeNormals(corners)

	// Voronoi region of a corner: the only axis not given by an edge
	closest := corners[0]
	for _, c := range corners[1:] {
		if c.Sub(center).LenSqr() < closest.Sub(center).LenSqr() {
			closest = c
		}
	}
	if toCorner := closest.Sub(center); toCorner.LenSqr() > axisEpsilon {
		axes = append(axes, toCorner.Normalize())
	}

	var s search
	for _, axis := range axes {
		if !s.test(ProjectCircle(center, shape.Radius, axis), ProjectPolygon(corners, axis), axis) {
			return Result{}, false
		}
	}

	return s.best, s.found
}
