package actor

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCircleComputeMass(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		density  float64
		expected float64
	}{
		{"unit circle", 1, 1, math.Pi},
		{"radius 2", 2, 1, 4 * math.Pi},
		{"dense", 0.5, 4, math.Pi},
		{"zero density", 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Circle{Radius: tt.radius}
			if got := c.ComputeMass(tt.density); !almostEqual(got, tt.expected, 1e-10) {
				t.Errorf("ComputeMass() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCircleComputeAABB_IgnoresRotation(t *testing.T) {
	c := &Circle{Radius: 2}
	got := c.ComputeAABB(Transform{Position: mgl64.Vec2{1, -1}, Angle: 1.3})

	want := AABB{Min: mgl64.Vec2{-1, -3}, Max: mgl64.Vec2{3, 1}}
	if !vec2AlmostEqual(got.Min, want.Min, 1e-10) || !vec2AlmostEqual(got.Max, want.Max, 1e-10) {
		t.Errorf("ComputeAABB() = %v, want %v", got, want)
	}
}

func TestNewPolygon_Winding(t *testing.T) {
	tests := []struct {
		name    string
		corners []mgl64.Vec2
	}{
		{
			name:    "counter-clockwise stays",
			corners: []mgl64.Vec2{{-0.9, -0.1}, {0.9, 0}, {-0.9, 0.1}},
		},
		{
			name:    "clockwise is reversed",
			corners: []mgl64.Vec2{{-0.9, 0.1}, {0.9, 0}, {-0.9, -0.1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPolygon(tt.corners)
			if err != nil {
				t.Fatalf("NewPolygon() error = %v", err)
			}
			if area := signedArea(p.Corners); area <= 0 {
				t.Errorf("signed area = %v, want > 0 (counter-clockwise)", area)
			}
		})
	}
}

func TestNewPolygon_DoesNotAliasInput(t *testing.T) {
	input := []mgl64.Vec2{{0, 1}, {1, -1}, {-1, -1}} // clockwise
	p, err := NewPolygon(input)
	if err != nil {
		t.Fatalf("NewPolygon() error = %v", err)
	}

	if input[0] != (mgl64.Vec2{0, 1}) {
		t.Errorf("input modified: %v", input)
	}
	p.Corners[0] = mgl64.Vec2{5, 5}
	if input[0] == p.Corners[0] {
		t.Error("polygon corners alias the input slice")
	}
}

func TestNewPolygon_Errors(t *testing.T) {
	tests := []struct {
		name    string
		corners []mgl64.Vec2
		want    error
	}{
		{"too few corners", []mgl64.Vec2{{0, 0}, {1, 0}}, ErrDegeneratePolygon},
		{"collinear", []mgl64.Vec2{{0, 0}, {1, 0}, {2, 0}}, ErrDegeneratePolygon},
		{"duplicated corner", []mgl64.Vec2{{0, 0}, {1, 0}, {1, 0}, {0, 1}}, ErrDegeneratePolygon},
		{"concave", []mgl64.Vec2{{0, 0}, {2, 0}, {1, 0.5}, {2, 2}, {0, 2}}, ErrConcavePolygon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolygon(tt.corners)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewPolygon() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPolygonWorldCorners(t *testing.T) {
	p, err := NewPolygon([]mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("NewPolygon() error = %v", err)
	}

	corners := p.WorldCorners(Transform{Position: mgl64.Vec2{1, 1}, Angle: math.Pi})
	want := []mgl64.Vec2{{1, 1}, {0, 1}, {1, 0}}

	for i := range want {
		if !vec2AlmostEqual(corners[i], want[i], 1e-10) {
			t.Errorf("corners[%d] = %v, want %v", i, corners[i], want[i])
		}
	}
}

func TestPolygonComputeAABB(t *testing.T) {
	p, err := NewBox(1, 1)
	if err != nil {
		t.Fatalf("NewBox() error = %v", err)
	}

	got := p.ComputeAABB(Transform{Angle: math.Pi / 4})

	s := math.Sqrt2
	if !vec2AlmostEqual(got.Min, mgl64.Vec2{-s, -s}, 1e-10) || !vec2AlmostEqual(got.Max, mgl64.Vec2{s, s}, 1e-10) {
		t.Errorf("ComputeAABB() = %v, want {[-√2 -√2] [√2 √2]}", got)
	}
}

func TestPolygonBoundingRadius_Literal(t *testing.T) {
	p := &Polygon{Corners: []mgl64.Vec2{{3, 4}, {-1, 0}, {0, -1}}}

	if got := p.BoundingRadius(); !almostEqual(got, 5, 1e-10) {
		t.Errorf("BoundingRadius() = %v, want 5", got)
	}
}

func TestShapeType(t *testing.T) {
	box, _ := NewBox(1, 1)

	if (&Circle{}).Type() != ShapeTypeCircle {
		t.Error("Circle.Type() should be ShapeTypeCircle")
	}
	if box.Type() != ShapeTypePolygon {
		t.Error("Polygon.Type() should be ShapeTypePolygon")
	}
}
