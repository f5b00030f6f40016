package feather2d

import (
	"unsafe"

	"github.com/akmonengine/feather2d/actor"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
	CONTAINMENT_ENTER
	CONTAINMENT_STAY
	CONTAINMENT_EXIT
)

type pairKey struct {
	bodyA *actor.RigidBody
	bodyB *actor.RigidBody
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(bodyA, bodyB *actor.RigidBody) pairKey {
	ptrA := uintptr(unsafe.Pointer(bodyA))
	ptrB := uintptr(unsafe.Pointer(bodyB))

	if ptrB < ptrA {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

type EventType uint8

func (t EventType) String() string {
	switch t {
	case COLLISION_ENTER:
		return "collision enter"
	case COLLISION_STAY:
		return "collision stay"
	case COLLISION_EXIT:
		return "collision exit"
	case CONTAINMENT_ENTER:
		return "containment enter"
	case CONTAINMENT_STAY:
		return "containment stay"
	case CONTAINMENT_EXIT:
		return "containment exit"
	}

	return "unknown"
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Collision events, between two bodies of the world
type CollisionEnterEvent struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// Containment events, a body touching the boundary of the container
type ContainmentEnterEvent struct {
	Body      *actor.RigidBody
	Container *actor.RigidBody
}

func (e ContainmentEnterEvent) Type() EventType { return CONTAINMENT_ENTER }

type ContainmentStayEvent struct {
	Body      *actor.RigidBody
	Container *actor.RigidBody
}

func (e ContainmentStayEvent) Type() EventType { return CONTAINMENT_STAY }

type ContainmentExitEvent struct {
	Body      *actor.RigidBody
	Container *actor.RigidBody
}

func (e ContainmentExitEvent) Type() EventType { return CONTAINMENT_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Pair tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool

	// Bodies touching the container boundary
	previousContained map[*actor.RigidBody]bool
	currentContained  map[*actor.RigidBody]bool
	container         *actor.RigidBody

	// Bodies forgotten while the buffer is dispatched
	removed map[*actor.RigidBody]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
		previousContained:   make(map[*actor.RigidBody]bool),
		currentContained:    make(map[*actor.RigidBody]bool),
		removed:             make(map[*actor.RigidBody]bool),
	}
}

// init makes the zero value usable
func (e *Events) init() {
	if e.listeners == nil {
		*e = NewEvents()
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.init()
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordCollision is called during substeps for every contact between two bodies
func (e *Events) recordCollision(contact Contact) {
	e.currentActivePairs[makePairKey(contact.BodyA, contact.BodyB)] = true
}

// recordContainment is called during substeps for every body touching the container
func (e *Events) recordContainment(contact Contact) {
	e.currentContained[contact.BodyA] = true
	e.container = contact.BodyB
}

// forget drops every tracked pair involving body, without emitting an Exit
func (e *Events) forget(body *actor.RigidBody) {
	if e.removed != nil {
		e.removed[body] = true
	}
	for pair := range e.previousActivePairs {
		if pair.bodyA == body || pair.bodyB == body {
			delete(e.previousActivePairs, pair)
		}
	}
	delete(e.previousContained, body)

	if e.container == body {
		clear(e.previousContained)
		e.container = nil
	}
}

// processCollisionEvents compares current and previous pairs to detect Enter/Stay/Exit
// Should be called after all substeps
func (e *Events) processCollisionEvents() {
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			e.buffer = append(e.buffer, CollisionStayEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		} else {
			e.buffer = append(e.buffer, CollisionEnterEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			e.buffer = append(e.buffer, CollisionExitEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

func (e *Events) processContainmentEvents() {
	for body := range e.currentContained {
		if e.previousContained[body] {
			e.buffer = append(e.buffer, ContainmentStayEvent{Body: body, Container: e.container})
		} else {
			e.buffer = append(e.buffer, ContainmentEnterEvent{Body: body, Container: e.container})
		}
	}

	for body := range e.previousContained {
		if !e.currentContained[body] {
			e.buffer = append(e.buffer, ContainmentExitEvent{Body: body, Container: e.container})
		}
	}

	e.previousContained, e.currentContained = e.currentContained, e.previousContained
	clear(e.currentContained)
}

// involvesRemoved reports whether a listener removed one of the event bodies
func (e *Events) involvesRemoved(event Event) bool {
	if len(e.removed) == 0 {
		return false
	}

	switch ev := event.(type) {
	case CollisionEnterEvent:
		return e.removed[ev.BodyA] || e.removed[ev.BodyB]
	case CollisionStayEvent:
		return e.removed[ev.BodyA] || e.removed[ev.BodyB]
	case CollisionExitEvent:
		return e.removed[ev.BodyA] || e.removed[ev.BodyB]
	case ContainmentEnterEvent:
		return e.removed[ev.Body] || e.removed[ev.Container]
	case ContainmentStayEvent:
		return e.removed[ev.Body] || e.removed[ev.Container]
	case ContainmentExitEvent:
		return e.removed[ev.Body] || e.removed[ev.Container]
	}

	return false
}

// flush sends all buffered events and clears the buffer.
// Listeners run once the step is over, they may add or remove bodies.
// Events about a body removed by an earlier listener are no longer delivered.
func (e *Events) flush() {
	e.processCollisionEvents()
	e.processContainmentEvents()
	clear(e.removed)

	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			if e.involvesRemoved(event) {
				break
			}
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
	clear(e.removed)
}
