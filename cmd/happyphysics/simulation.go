package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/audio"
	"github.com/akmonengine/feather2d/config"
	"github.com/akmonengine/feather2d/render"
	"github.com/gdamore/tcell/v2"
)

// Simulation ties the world to the terminal: fixed timestep, input, drawing
type Simulation struct {
	cfg      config.Config
	world    *feather2d.World
	screen   tcell.Screen
	renderer *render.Terminal
	player   *audio.Player
	rng      *rand.Rand
	// seed that reproduces the ring on screen
	seed uint64

	ticks  int
	paused bool
}

func NewSimulation(cfg config.Config, screen tcell.Screen, player *audio.Player) *Simulation {
	rng, seed := newRand(cfg.Spawn.Seed)

	s := &Simulation{
		cfg:      cfg,
		screen:   screen,
		renderer: render.NewTerminal(screen),
		player:   player,
		rng:      rng,
		seed:     seed,
	}
	s.reset()

	return s
}

// respawn draws a new seed so the status line keeps showing a reproducible run
func (s *Simulation) respawn() {
	s.rng, s.seed = newRand(s.rng.Uint64())
	s.reset()
}

// reset rebuilds the world and spawns a new ring of bodies from the current rng
func (s *Simulation) reset() {
	s.world = feather2d.NewWorld(s.cfg)
	spawnBodies(s.world, spawnCenter(s.world), s.cfg.Spawn, s.rng)

	setupEventLog(s.world)
	if s.cfg.RemoveOnCollision {
		setupRemovalPolicy(s.world)
	}
	if s.player != nil {
		s.player.Subscribe(&s.world.Events)
	}

	s.ticks = 0
	log.Printf("spawned %d bodies, seed %d", len(s.world.Bodies), s.seed)
}

// tick advances the world by one fixed timestep and draws it
func (s *Simulation) tick() error {
	if !s.paused {
		s.world.Step(s.cfg.Timestep())
		s.ticks++
	}

	s.renderer.Status = fmt.Sprintf(" bodies %d  tick %d  seed %d  [space] pause [r] respawn [q] quit ",
		len(s.world.Bodies), s.ticks, s.seed)

	return s.renderer.Render(s.world)
}

// handleEvent returns false when the user asked to quit
func (s *Simulation) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			s.paused = !s.paused
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			s.respawn()
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}

	return true
}

// Run loops until the user quits
func (s *Simulation) Run() error {
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.Loop.TicksPerSecond))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go forwardEvents(s.screen.PollEvent, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			if err := s.tick(); err != nil {
				return err
			}
		}
	}
}

// forwardEvents feeds polled events to out until the screen is finalized or done is closed
func forwardEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			// screen finalized
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
