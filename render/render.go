// Package render draws a feather2d world after each step.
package render

import (
	"errors"

	"github.com/akmonengine/feather2d"
)

// ErrNoSpace is returned when the output has no room to draw on
var ErrNoSpace = errors.New("render: empty drawing area")

// Renderer reads the bodies once a step has completed.
// It must not mutate the world.
type Renderer interface {
	Render(w *feather2d.World) error
}
