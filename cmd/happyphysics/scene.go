package main

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/config"
	"github.com/go-gl/mathgl/mgl64"
)

// newRand returns a PCG source, seeded randomly when seed is 0
func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, seed)), seed
}

// spawnBodies places cfg.Count circles on a ring around center, each one aimed at it.
// Body i sits at angle 2πi/Count, at a random distance in [MinDistance, MaxDistance).
// Farther bodies are larger and heavier: radius = distance*RadiusScale, inverse mass = 1/distance².
func spawnBodies(w *feather2d.World, center mgl64.Vec2, cfg config.SpawnConfig, rng *rand.Rand) []*actor.RigidBody {
	bodies := make([]*actor.RigidBody, 0, cfg.Count)

	for i := range cfg.Count {
		angle := 2 * math.Pi * float64(i) / float64(cfg.Count)
		sin, cos := math.Sincos(angle)
		direction := mgl64.Vec2{cos, sin}

		distance := cfg.MinDistance + rng.Float64()*(cfg.MaxDistance-cfg.MinDistance)

		body := actor.NewCircle(center.Add(direction.Mul(distance)), distance*cfg.RadiusScale, 1/(distance*distance))
		body.Id = i
		body.Velocity = direction.Mul(-cfg.Speed)

		w.AddBody(body)
		bodies = append(bodies, body)
	}

	return bodies
}

// spawnCenter is where the ring is centered: the container when there is one
func spawnCenter(w *feather2d.World) mgl64.Vec2 {
	if w.Container != nil {
		return w.Container.Position()
	}

	return mgl64.Vec2{0, 0}
}

// setupRemovalPolicy clears every body on the first collision of a step.
// It runs from the event flush, once the step is over.
func setupRemovalPolicy(w *feather2d.World) {
	w.Events.Subscribe(feather2d.COLLISION_ENTER, func(event feather2d.Event) {
		if len(w.Bodies) == 0 {
			return
		}

		e := event.(feather2d.CollisionEnterEvent)
		log.Printf("collision between %v and %v, removing %d bodies", e.BodyA.Id, e.BodyB.Id, len(w.Bodies))
		w.Clear()
	})
}

// setupEventLog writes collision events to the log
func setupEventLog(w *feather2d.World) {
	w.Events.Subscribe(feather2d.COLLISION_ENTER, func(event feather2d.Event) {
		e := event.(feather2d.CollisionEnterEvent)
		log.Printf("%s: %v/%v", e.Type(), e.BodyA.Id, e.BodyB.Id)
	})
	w.Events.Subscribe(feather2d.CONTAINMENT_ENTER, func(event feather2d.Event) {
		e := event.(feather2d.ContainmentEnterEvent)
		log.Printf("%s: %v", e.Type(), e.Body.Id)
	})
}
