// Package beep produces the alarm sound: a synthesized tone when an audio
// backend could be opened, otherwise a short recorded clip played through
// whatever command-line player the host has.
package beep

import (
	"errors"
	"fmt"
	"sync"

	"clockalarm/log"
)

const sampleRate = 44100

var (
	errUnsupported = errors.New("no synthesizer backend on this platform")
	errSuspended   = errors.New("synthesizer suspended")
	errNoPlayer    = errors.New("no audio player found")
)

// Synth is an open audio output that can render generated samples.
type Synth interface {
	Name() string
	Suspended() bool
	Resume() error
	// Play queues mono samples at the backend's sample rate and returns
	// without waiting for them to finish.
	Play(samples []int16) error
	Close()
}

// Player plays the fallback clip. Play returns once playback has started.
type Player interface {
	Play() error
}

type Config struct {
	Tone       Tone
	ClipVolume float64
}

// Engine picks the synthesizer when it is open and falls back to the clip.
type Engine struct {
	mu       sync.Mutex
	open     func() (Synth, error)
	synth    Synth
	tried    bool
	closed   bool
	disabled bool
	clip     Player
	samples  []int16
}

func New(cfg Config) *Engine {
	return newEngine(func() (Synth, error) { return openSynth(sampleRate) },
		NewClipPlayer(cfg.ClipVolume), cfg.Tone)
}

// OpenSynth opens the platform synthesizer directly, bypassing the engine.
func OpenSynth() (Synth, error) { return openSynth(sampleRate) }

// Render returns t's samples at the synthesizer rate.
func Render(t Tone) []int16 { return t.Samples(sampleRate) }

func newEngine(open func() (Synth, error), clip Player, tone Tone) *Engine {
	return &Engine{
		open:    open,
		clip:    clip,
		samples: tone.Samples(sampleRate),
	}
}

// Disable mutes every strategy.
func (e *Engine) Disable() {
	e.mu.Lock()
	e.disabled = true
	e.mu.Unlock()
}

// Init opens the synthesizer. Only the first call does anything; a failure
// leaves the clip as the only strategy for the rest of the session.
func (e *Engine) Init() {
	e.mu.Lock()
	if e.tried {
		e.mu.Unlock()
		return
	}
	e.tried = true
	e.mu.Unlock()

	// The device open can block; Emit and Strategy keep using the clip meanwhile.
	s, err := e.open()
	if err != nil {
		log.Warnf("synth init failed, using clip: %v", err)
		return
	}

	e.mu.Lock()
	closed := e.closed
	if !closed {
		e.synth = s
	}
	e.mu.Unlock()
	if closed {
		s.Close()
		return
	}
	log.Info("synth_ready: " + s.Name())
}

// Emit plays one alarm sound. Failures are logged and swallowed.
func (e *Engine) Emit() {
	e.mu.Lock()
	s, disabled := e.synth, e.disabled
	e.mu.Unlock()
	if disabled {
		return
	}

	if s != nil {
		log.SoundEmit(s.Name(), e.playSynth(s))
		return
	}
	log.SoundEmit("clip", e.clip.Play())
}

func (e *Engine) playSynth(s Synth) error {
	if s.Suspended() {
		if err := s.Resume(); err != nil {
			return fmt.Errorf("resume %s: %w", s.Name(), err)
		}
	}
	return s.Play(e.samples)
}

// Strategy names what Emit would use right now.
func (e *Engine) Strategy() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.disabled:
		return "muted"
	case e.synth != nil:
		return e.synth.Name()
	}
	return "clip"
}

func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.synth != nil {
		e.synth.Close()
		e.synth = nil
	}
	if c, ok := e.clip.(interface{ Close() }); ok {
		c.Close()
	}
}
