package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// BodyType Tests
// =============================================================================

func TestBodyType_Constants(t *testing.T) {
	if BodyTypeDynamic == BodyTypeStatic {
		t.Error("BodyTypeDynamic and BodyTypeStatic should have different values")
	}
	if BodyTypeDynamic != 0 {
		t.Errorf("BodyTypeDynamic = %d, want 0", BodyTypeDynamic)
	}
	if BodyTypeStatic != 1 {
		t.Errorf("BodyTypeStatic = %d, want 1", BodyTypeStatic)
	}
}

// =============================================================================
// NewRigidBody Tests
// =============================================================================

func TestNewRigidBody_Dynamic(t *testing.T) {
	transform := Transform{Position: mgl64.Vec2{1, 2}}
	circle := &Circle{Radius: 1.0}
	density := 2.0

	rb := NewRigidBody(transform, circle, BodyTypeDynamic, density)

	if rb.BodyType != BodyTypeDynamic {
		t.Errorf("BodyType = %v, want BodyTypeDynamic", rb.BodyType)
	}
	if !vec2AlmostEqual(rb.Position(), transform.Position, 1e-10) {
		t.Errorf("Position() = %v, want %v", rb.Position(), transform.Position)
	}
	if !vec2AlmostEqual(rb.Velocity, mgl64.Vec2{}, 1e-10) {
		t.Errorf("Velocity = %v, want zero", rb.Velocity)
	}
	if rb.Shape != circle {
		t.Error("Shape not set correctly")
	}

	expectedMass := circle.ComputeMass(density)
	if !almostEqual(rb.Mass(), expectedMass, 1e-10) {
		t.Errorf("Mass() = %v, want %v", rb.Mass(), expectedMass)
	}
	if !almostEqual(rb.InverseMass(), 1/expectedMass, 1e-10) {
		t.Errorf("InverseMass() = %v, want %v", rb.InverseMass(), 1/expectedMass)
	}

	aabb := rb.AABB()
	if !vec2AlmostEqual(aabb.Min, mgl64.Vec2{0, 1}, 1e-10) || !vec2AlmostEqual(aabb.Max, mgl64.Vec2{2, 3}, 1e-10) {
		t.Errorf("AABB = %v, want {[0 1] [2 3]}", aabb)
	}
}

func TestNewRigidBody_Static(t *testing.T) {
	rb := NewRigidBody(NewTransform(), &Circle{Radius: 0.5}, BodyTypeStatic, 10.0)

	if rb.InverseMass() != 0 {
		t.Errorf("InverseMass() = %v, want 0 for static body", rb.InverseMass())
	}
	if !math.IsInf(rb.Mass(), 1) {
		t.Errorf("Mass() = %v, want +Inf for static body", rb.Mass())
	}

	// Static bodies ignore an explicit inverse mass
	rb.SetInverseMass(3)
	if rb.InverseMass() != 0 {
		t.Errorf("InverseMass() = %v, want 0 for static body after SetInverseMass", rb.InverseMass())
	}
}

func TestNewRigidBody_ZeroDensity(t *testing.T) {
	rb := NewRigidBody(NewTransform(), &Circle{Radius: 1}, BodyTypeDynamic, 0)

	if rb.InverseMass() != 0 {
		t.Errorf("InverseMass() = %v, want 0 when mass cannot be computed", rb.InverseMass())
	}
}

func TestNewCircle(t *testing.T) {
	rb := NewCircle(mgl64.Vec2{-1, 0}, 0.1, 1)

	if rb.InverseMass() != 1 {
		t.Errorf("InverseMass() = %v, want 1", rb.InverseMass())
	}
	if rb.Radius() != 0.1 {
		t.Errorf("Radius() = %v, want 0.1", rb.Radius())
	}
	if rb.WorldCorners() != nil {
		t.Errorf("WorldCorners() = %v, want nil for a circle", rb.WorldCorners())
	}
}

func TestSetInverseMass_Panics(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"negative", -1},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("SetInverseMass(%v) should panic", tt.value)
				}
			}()

			rb := NewCircle(mgl64.Vec2{}, 1, 1)
			rb.SetInverseMass(tt.value)
		})
	}
}

// =============================================================================
// Integrate Tests
// =============================================================================

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name            string
		position        mgl64.Vec2
		velocity        mgl64.Vec2
		angle           float64
		angularVelocity float64
		dt              float64
		wantPosition    mgl64.Vec2
		wantAngle       float64
	}{
		{
			name:         "at rest",
			position:     mgl64.Vec2{1, 1},
			dt:           0.016,
			wantPosition: mgl64.Vec2{1, 1},
		},
		{
			name:         "linear motion",
			position:     mgl64.Vec2{-1, 0},
			velocity:     mgl64.Vec2{1, 0},
			dt:           0.5,
			wantPosition: mgl64.Vec2{-0.5, 0},
		},
		{
			name:            "linear and angular motion",
			position:        mgl64.Vec2{0, 0},
			velocity:        mgl64.Vec2{2, -4},
			angle:           0.1,
			angularVelocity: math.Pi,
			dt:              0.25,
			wantPosition:    mgl64.Vec2{0.5, -1},
			wantAngle:       0.1 + math.Pi/4,
		},
		{
			name:         "zero timestep",
			position:     mgl64.Vec2{3, 3},
			velocity:     mgl64.Vec2{100, 100},
			dt:           0,
			wantPosition: mgl64.Vec2{3, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewCircle(tt.position, 1, 1)
			rb.Velocity = tt.velocity
			rb.Transform.Angle = tt.angle
			rb.AngularVelocity = tt.angularVelocity

			rb.Integrate(tt.dt)

			if !vec2AlmostEqual(rb.Position(), tt.wantPosition, 1e-10) {
				t.Errorf("Position() = %v, want %v", rb.Position(), tt.wantPosition)
			}
			if !almostEqual(rb.Angle(), tt.wantAngle, 1e-10) {
				t.Errorf("Angle() = %v, want %v", rb.Angle(), tt.wantAngle)
			}
			if !vec2AlmostEqual(rb.Velocity, tt.velocity, 1e-10) {
				t.Errorf("Velocity changed during integration: %v -> %v", tt.velocity, rb.Velocity)
			}
		})
	}
}

func TestIntegrate_StaticBodyMovesByOwnVelocity(t *testing.T) {
	rb := NewRigidBody(NewTransform(), &Circle{Radius: 0.5}, BodyTypeStatic, 0)
	rb.Velocity = mgl64.Vec2{1, 1}

	rb.Integrate(0.5)

	if !vec2AlmostEqual(rb.Position(), mgl64.Vec2{0.5, 0.5}, 1e-10) {
		t.Errorf("Position() = %v, want [0.5 0.5]", rb.Position())
	}
}

func TestIntegrate_UpdatesAABB(t *testing.T) {
	rb := NewCircle(mgl64.Vec2{0, 0}, 1, 1)
	rb.Velocity = mgl64.Vec2{10, 0}

	rb.Integrate(1)

	aabb := rb.AABB()
	if !vec2AlmostEqual(aabb.Min, mgl64.Vec2{9, -1}, 1e-10) {
		t.Errorf("AABB.Min = %v, want [9 -1]", aabb.Min)
	}
}

// =============================================================================
// Impulse Tests
// =============================================================================

func TestApplyImpulse(t *testing.T) {
	tests := []struct {
		name         string
		inverseMass  float64
		velocity     mgl64.Vec2
		impulse      mgl64.Vec2
		wantVelocity mgl64.Vec2
	}{
		{"unit mass", 1, mgl64.Vec2{1, 0}, mgl64.Vec2{-2, 0}, mgl64.Vec2{-1, 0}},
		{"light body", 4, mgl64.Vec2{0, 0}, mgl64.Vec2{0.5, 0.25}, mgl64.Vec2{2, 1}},
		{"infinite mass", 0, mgl64.Vec2{1, 1}, mgl64.Vec2{100, -100}, mgl64.Vec2{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewCircle(mgl64.Vec2{}, 1, tt.inverseMass)
			rb.Velocity = tt.velocity

			rb.ApplyImpulse(tt.impulse)

			if !vec2AlmostEqual(rb.Velocity, tt.wantVelocity, 1e-10) {
				t.Errorf("Velocity = %v, want %v", rb.Velocity, tt.wantVelocity)
			}
		})
	}
}

func TestAABB_SharedShape(t *testing.T) {
	shared := &Circle{Radius: 0.5}
	a := NewRigidBody(Transform{Position: mgl64.Vec2{0, 0}}, shared, BodyTypeDynamic, 1)
	b := NewRigidBody(Transform{Position: mgl64.Vec2{5, 0}}, shared, BodyTypeDynamic, 1)

	b.Translate(mgl64.Vec2{1, 0})

	if !a.AABB().ContainsPoint(mgl64.Vec2{0, 0}) {
		t.Errorf("a.AABB() = %v, want it around the origin", a.AABB())
	}
	if !b.AABB().ContainsPoint(mgl64.Vec2{6, 0}) {
		t.Errorf("b.AABB() = %v, want it around (6, 0)", b.AABB())
	}
}

func TestTranslate(t *testing.T) {
	rb := NewCircle(mgl64.Vec2{1, 1}, 0.5, 1)

	rb.Translate(mgl64.Vec2{-1, 2})

	if !vec2AlmostEqual(rb.Position(), mgl64.Vec2{0, 3}, 1e-10) {
		t.Errorf("Position() = %v, want [0 3]", rb.Position())
	}
	if !rb.AABB().ContainsPoint(mgl64.Vec2{0, 3}) {
		t.Error("AABB not updated after Translate")
	}
}

func TestWorldCorners_Polygon(t *testing.T) {
	box, err := NewBox(1, 0.5)
	if err != nil {
		t.Fatalf("NewBox() error = %v", err)
	}

	rb := NewRigidBody(Transform{Position: mgl64.Vec2{2, 0}, Angle: math.Pi / 2}, box, BodyTypeDynamic, 1)
	corners := rb.WorldCorners()

	// (-1,-0.5) rotated by 90° is (0.5,-1)
	if !vec2AlmostEqual(corners[0], mgl64.Vec2{2.5, -1}, 1e-10) {
		t.Errorf("corners[0] = %v, want [2.5 -1]", corners[0])
	}
	if !almostEqual(rb.Radius(), math.Sqrt(1.25), 1e-10) {
		t.Errorf("Radius() = %v, want %v", rb.Radius(), math.Sqrt(1.25))
	}
	if !almostEqual(rb.Mass(), 2.0, 1e-10) {
		t.Errorf("Mass() = %v, want 2", rb.Mass())
	}
}

// Helper function to compare floats with epsilon tolerance
func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// Helper function to compare Vec2 with epsilon tolerance
func vec2AlmostEqual(a, b mgl64.Vec2, epsilon float64) bool {
	return almostEqual(a.X(), b.X(), epsilon) &&
		almostEqual(a.Y(), b.Y(), epsilon)
}
