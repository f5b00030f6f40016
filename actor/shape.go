package actor

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeType represents the type of collision shape
type ShapeType int

const (
	ShapeTypeCircle ShapeType = iota
	ShapeTypePolygon
)

var (
	ErrDegeneratePolygon = errors.New("degenerate polygon")
	ErrConcavePolygon    = errors.New("concave polygon")
)

// ShapeInterface is the interface that all collision shapes must implement
type ShapeInterface interface {
	Type() ShapeType
	// ComputeAABB calculates the axis-aligned bounding box for the shape
	// at the given transform. Shapes hold no per-body state and may be shared.
	ComputeAABB(transform Transform) AABB
	// ComputeMass calculates the mass of the shape given an area density
	ComputeMass(density float64) float64
	// BoundingRadius is the radius of the smallest origin-centered circle enclosing the shape
	BoundingRadius() float64
}

// Circle represents a circular collision shape centered on the body position
type Circle struct {
	Radius float64
}

func (c *Circle) Type() ShapeType {
	return ShapeTypeCircle
}

// ComputeAABB calculates the axis-aligned bounding box for the circle
func (c *Circle) ComputeAABB(transform Transform) AABB {
	// Circle AABB is not affected by rotation, only by position
	radiusVec := mgl64.Vec2{c.Radius, c.Radius}

	return AABB{
		Min: transform.Position.Sub(radiusVec),
		Max: transform.Position.Add(radiusVec),
	}
}

// ComputeMass calculates mass for the circle: area = π * r²
func (c *Circle) ComputeMass(density float64) float64 {
	return density * math.Pi * c.Radius * c.Radius
}

func (c *Circle) BoundingRadius() float64 {
	return c.Radius
}

// Polygon represents a convex polygon collision shape.
// Corners are in body-local space and always stored counter-clockwise.
type Polygon struct {
	Corners []mgl64.Vec2

	radius float64
}

// NewPolygon validates a convex outline and stores it counter-clockwise.
// Clockwise input is reversed; fewer than 3 corners, a zero-length edge, zero area
// or a concave outline is rejected.
func NewPolygon(corners []mgl64.Vec2) (*Polygon, error) {
	n := len(corners)
	if n < 3 {
		return nil, fmt.Errorf("%w: %d corners, need at least 3", ErrDegeneratePolygon, n)
	}

	local := make([]mgl64.Vec2, n)
	copy(local, corners)

	area := signedArea(local)
	if math.Abs(area) < 1e-12 {
		return nil, fmt.Errorf("%w: zero area", ErrDegeneratePolygon)
	}
	if area < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			local[i], local[j] = local[j], local[i]
		}
	}

	for i := range local {
		edge := local[(i+1)%n].Sub(local[i])
		if edge.LenSqr() < 1e-24 {
			return nil, fmt.Errorf("%w: corners %d and %d coincide", ErrDegeneratePolygon, i, (i+1)%n)
		}
		next := local[(i+2)%n].Sub(local[(i+1)%n])
		if Cross(edge, next) < -1e-12 {
			return nil, fmt.Errorf("%w: reflex corner %d", ErrConcavePolygon, (i+1)%n)
		}
	}

	radius := 0.0
	for _, c := range local {
		radius = math.Max(radius, c.Len())
	}

	return &Polygon{Corners: local, radius: radius}, nil
}

// NewBox is a shortcut for a rectangle centered on the body origin
func NewBox(halfWidth, halfHeight float64) (*Polygon, error) {
	return NewPolygon([]mgl64.Vec2{
		{-halfWidth, -halfHeight},
		{halfWidth, -halfHeight},
		{halfWidth, halfHeight},
		{-halfWidth, halfHeight},
	})
}

func signedArea(corners []mgl64.Vec2) float64 {
	var sum float64
	for i := range corners {
		sum += Cross(corners[i], corners[(i+1)%len(corners)])
	}

	return sum / 2
}

func (p *Polygon) Type() ShapeType {
	return ShapeTypePolygon
}

// WorldCorners returns corner.rotate(angle) + position for every corner, in CCW order
func (p *Polygon) WorldCorners(transform Transform) []mgl64.Vec2 {
	sin, cos := math.Sincos(transform.Angle)
	world := make([]mgl64.Vec2, len(p.Corners))
	for i, c := range p.Corners {
		world[i] = RotateSinCos(c, sin, cos).Add(transform.Position)
	}

	return world
}

func (p *Polygon) ComputeAABB(transform Transform) AABB {
	corners := p.WorldCorners(transform)
	if len(corners) == 0 {
		return AABB{Min: transform.Position, Max: transform.Position}
	}
	min := corners[0]
	max := corners[0]

	for _, c := range corners[1:] {
		min[0] = math.Min(min[0], c[0])
		min[1] = math.Min(min[1], c[1])
		max[0] = math.Max(max[0], c[0])
		max[1] = math.Max(max[1], c[1])
	}

	return AABB{Min: min, Max: max}
}

// ComputeMass uses the shoelace area of the outline
func (p *Polygon) ComputeMass(density float64) float64 {
	return density * signedArea(p.Corners)
}

func (p *Polygon) BoundingRadius() float64 {
	// polygons built as literals skip NewPolygon
	if p.radius == 0 {
		for _, c := range p.Corners {
			p.radius = math.Max(p.radius, c.Len())
		}
	}

	return p.radius
}
