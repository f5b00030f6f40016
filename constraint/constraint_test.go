package constraint

import (
	"math"
	"testing"
)

func TestClampRestitution(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"zero", 0.0, 0.0},
		{"in range", 0.99, 0.99},
		{"one", 1.0, 1.0},
		{"negative", -0.5, 0.0},
		{"above one", 1.5, 1.0},
		{"NaN", math.NaN(), 0.0},
		{"+Inf", math.Inf(1), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClampRestitution(tt.input)
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("ClampRestitution(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestContactConstraint_ImplementsConstraint(t *testing.T) {
	var _ Constraint = &ContactConstraint{}
}
