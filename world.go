package feather2d

import (
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/config"
)

const DEFAULT_SUBSTEPS = 1

type World struct {
	// List of all rigid bodies in the world, kept apart from each other
	Bodies []*actor.RigidBody
	// Circle every body must stay inside, nil for an unbounded world
	Container *actor.RigidBody
	// Bounciness of every contact, clamped into [0, 1]
	Restitution float64
	Substeps    int

	Events Events
}

// NewWorld builds an empty world, with its container, from the configuration
func NewWorld(cfg config.Config) *World {
	w := &World{
		Restitution: cfg.Restitution,
		Substeps:    cfg.Substeps,
		Events:      NewEvents(),
	}

	if cfg.Container.Enabled {
		container := actor.NewCircle(cfg.Container.Center, cfg.Container.Radius, cfg.Container.InverseMass)
		container.Id = "container"
		container.Velocity = cfg.Container.Velocity
		w.Container = container
	}

	return w
}

// AddBody adds a rigid body to the world
func (w *World) AddBody(body *actor.RigidBody) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a rigid body from the world.
// It must not be called during Step, event listeners are fine.
func (w *World) RemoveBody(body *actor.RigidBody) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}
	if w.Container == body {
		w.Container = nil
	}

	w.Events.forget(body)
}

// Clear removes every body, the container is kept
func (w *World) Clear() {
	for _, body := range w.Bodies {
		w.Events.forget(body)
	}
	clear(w.Bodies)
	w.Bodies = w.Bodies[:0]
}

// Step advances the world by dt and returns every resolved contact.
// A dt <= 0 (or NaN) is a frame with no elapsed time: nothing moves and nil is returned.
func (w *World) Step(dt float64) []Contact {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil
	}

	w.Events.init()
	substeps := max(DEFAULT_SUBSTEPS, w.Substeps)
	h := dt / float64(substeps)

	var contacts []Contact
	for range substeps {
		// Phase 1: move every body to its new position
		w.integrate(h)

		// Phase 2: bodies against each other
		contacts = w.resolveOutside(contacts)

		// Phase 3: bodies against the container
		contacts = w.resolveInside(contacts)
	}

	w.Events.flush()

	return contacts
}

func (w *World) integrate(h float64) {
	for _, body := range w.Bodies {
		body.Integrate(h)
	}
	if w.Container != nil {
		w.Container.Integrate(h)
	}
}

// resolveOutside detects and resolves every pair i < j, in slice order
func (w *World) resolveOutside(contacts []Contact) []Contact {
	for i, bodyA := range w.Bodies {
		for _, bodyB := range w.Bodies[i+1:] {
			contact, ok := NarrowPhase(bodyA, bodyB)
			if !ok {
				continue
			}

			contact.Restitution = w.Restitution
			contact.Resolve()

			w.Events.recordCollision(contact)
			contacts = append(contacts, contact)
		}
	}

	return contacts
}

func (w *World) resolveInside(contacts []Contact) []Contact {
	if w.Container == nil {
		return contacts
	}

	for _, body := range w.Bodies {
		contact, ok := CollideContainer(body, w.Container)
		if !ok {
			continue
		}

		contact.Restitution = w.Restitution
		contact.Resolve()

		w.Events.recordContainment(contact)
		contacts = append(contacts, contact)
	}

	return contacts
}
