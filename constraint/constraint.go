package constraint

import (
	"math"
)

// MassEpsilon is the smallest total inverse mass a constraint acts on.
// Below it both bodies are treated as immovable and the constraint is skipped.
const MassEpsilon = 1e-12

type Constraint interface {
	SolvePosition()
	SolveVelocity()
}

// ClampRestitution keeps a bounciness coefficient in [0, 1]. NaN becomes 0.
func ClampRestitution(restitution float64) float64 {
	if math.IsNaN(restitution) {
		return 0
	}

	return math.Max(0, math.Min(1, restitution))
}
