package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewTransform(t *testing.T) {
	tr := NewTransform()

	if tr.Position != (mgl64.Vec2{}) || tr.Angle != 0 {
		t.Errorf("NewTransform() = %v, want identity", tr)
	}
}

func TestTransformToWorld(t *testing.T) {
	tr := Transform{Position: mgl64.Vec2{1, 2}, Angle: math.Pi / 2}

	got := tr.ToWorld(mgl64.Vec2{1, 0})
	if !vec2AlmostEqual(got, mgl64.Vec2{1, 3}, 1e-10) {
		t.Errorf("ToWorld() = %v, want [1 3]", got)
	}
}
