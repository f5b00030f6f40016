// Package audio plays short tones on collision events.
package audio

import (
	"sync"
	"time"

	"github.com/akmonengine/feather2d"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	collisionFrequency   = 880
	containmentFrequency = 440
	toneDuration         = 30 * time.Millisecond
)

// Player turns world events into clicks.
// The zero value is silent until Init succeeds.
type Player struct {
	mu          sync.Mutex
	initialized bool
	muted       bool

	// Tones counts the tones started, including muted ones
	Tones int
}

func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker. A failure leaves the player silent, the host may go on without sound.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true

	return nil
}

// Close releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
}

// Subscribe plays a tone on every new collision and containment contact
func (p *Player) Subscribe(events *feather2d.Events) {
	events.Subscribe(feather2d.COLLISION_ENTER, func(event feather2d.Event) {
		p.play(collisionFrequency)
	})
	events.Subscribe(feather2d.CONTAINMENT_ENTER, func(event feather2d.Event) {
		p.play(containmentFrequency)
	})
}

func (p *Player) play(frequency int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Tones++
	if !p.initialized || p.muted {
		return
	}

	tone, err := Tone(frequency, toneDuration)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Tone is a sine wave at frequency Hz, cut after duration
func Tone(frequency int, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, float64(frequency))
	if err != nil {
		return nil, err
	}

	return beep.Take(sampleRate.N(duration), sine), nil
}
