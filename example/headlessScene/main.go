package main

import (
	"fmt"

	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/config"
	"github.com/go-gl/mathgl/mgl64"
)

// ContactDebugger prints what happens around a step
type ContactDebugger interface {
	DebugBody(label string, body *actor.RigidBody)
	DebugContact(contact feather2d.Contact)
	DebugEvent(event feather2d.Event)
}

// SimpleDebugger writes everything on stdout
type SimpleDebugger struct{}

func (d *SimpleDebugger) DebugBody(label string, body *actor.RigidBody) {
	fmt.Printf("  %s: position %v, velocity %v\n", label, body.Position(), body.Velocity)
}

func (d *SimpleDebugger) DebugContact(contact feather2d.Contact) {
	fmt.Printf("  contact %v/%v: normal %v, depth %.6f\n", contact.BodyA.Id, contact.BodyB.Id, contact.Normal, contact.Depth)
}

func (d *SimpleDebugger) DebugEvent(event feather2d.Event) {
	switch e := event.(type) {
	case feather2d.CollisionEnterEvent:
		fmt.Printf("  event %s: %v/%v\n", e.Type(), e.BodyA.Id, e.BodyB.Id)
	case feather2d.CollisionExitEvent:
		fmt.Printf("  event %s: %v/%v\n", e.Type(), e.BodyA.Id, e.BodyB.Id)
	case feather2d.ContainmentEnterEvent:
		fmt.Printf("  event %s: %v\n", e.Type(), e.Body.Id)
	default:
		fmt.Printf("  event %s\n", e.Type())
	}
}

// SetupScene creates two circles meeting head-on, and a box drifting to the container wall
func SetupScene() (*feather2d.World, []*actor.RigidBody, ContactDebugger) {
	debugger := &SimpleDebugger{}

	cfg := config.Default()
	cfg.Container.Radius = 1.5
	cfg.Container.Velocity = mgl64.Vec2{0, 0}
	cfg.Container.InverseMass = 0
	world := feather2d.NewWorld(cfg)

	left := actor.NewCircle(mgl64.Vec2{-1, 0}, 0.1, 1)
	left.Id = "left"
	left.Velocity = mgl64.Vec2{1, 0}

	right := actor.NewCircle(mgl64.Vec2{1, 0}, 0.1, 1)
	right.Id = "right"
	right.Velocity = mgl64.Vec2{-1, 0}

	boxShape, err := actor.NewBox(0.1, 0.1)
	if err != nil {
		panic(err)
	}
	box := actor.NewRigidBody(actor.Transform{Position: mgl64.Vec2{0, 1}}, boxShape, actor.BodyTypeDynamic, 25)
	box.Id = "box"
	box.Velocity = mgl64.Vec2{0, 1}
	box.AngularVelocity = 2

	for _, body := range []*actor.RigidBody{left, right, box} {
		world.AddBody(body)
	}

	for _, eventType := range []feather2d.EventType{
		feather2d.COLLISION_ENTER,
		feather2d.COLLISION_EXIT,
		feather2d.CONTAINMENT_ENTER,
	} {
		world.Events.Subscribe(eventType, debugger.DebugEvent)
	}

	return world, []*actor.RigidBody{left, right, box}, debugger
}

func RunScene() {
	fmt.Println("Headless scene: two circles and a spinning box")
	fmt.Println("==============================================")

	world, bodies, debugger := SetupScene()

	fmt.Printf("Restitution %v, container radius %v\n\n", world.Restitution, world.Container.Radius())

	const dt float64 = 0.01
	const maxSteps int = 120

	for step := 0; step < maxSteps; step++ {
		contacts := world.Step(dt)
		if len(contacts) == 0 && step%20 != 0 {
			continue
		}

		fmt.Printf("--- STEP %d ---\n", step+1)
		for _, contact := range contacts {
			debugger.DebugContact(contact)
		}
		for _, body := range bodies {
			debugger.DebugBody(fmt.Sprint(body.Id), body)
		}
		fmt.Println()
	}

	fmt.Println("Done")
}

func main() {
	RunScene()
}
