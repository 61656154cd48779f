//go:build linux

package beep

import (
	"fmt"
	"sync"

	"github.com/jfreymuth/pulse"
)

// pulseSynth keeps one PulseAudio connection. A failed stream drops the
// connection and marks the synth suspended; Resume reconnects.
type pulseSynth struct {
	mu     sync.Mutex
	client *pulse.Client
	rate   int
}

func connect() (*pulse.Client, error) {
	c, err := pulse.NewClient(pulse.ClientApplicationName("clockalarm"))
	if err != nil {
		return nil, fmt.Errorf("pulse client: %w", err)
	}
	return c, nil
}

func openSynth(rate int) (Synth, error) {
	c, err := connect()
	if err != nil {
		return nil, err
	}
	return &pulseSynth{client: c, rate: rate}, nil
}

func (p *pulseSynth) Name() string { return "pulse" }

func (p *pulseSynth) Suspended() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.client == nil
}

func (p *pulseSynth) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		return nil
	}
	c, err := connect()
	if err != nil {
		return err
	}
	p.client = c
	return nil
}

func (p *pulseSynth) Play(samples []int16) error {
	p.mu.Lock()
	c := p.client
	p.mu.Unlock()
	if c == nil {
		return errSuspended
	}

	pos := 0
	reader := pulse.Int16Reader(func(buf []int16) (int, error) {
		if pos >= len(samples) {
			return 0, pulse.EndOfData
		}
		n := copy(buf, samples[pos:])
		pos += n
		return n, nil
	})
	stream, err := c.NewPlayback(reader,
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(p.rate),
		pulse.PlaybackLatency(0.1),
	)
	if err != nil {
		p.drop(c)
		return fmt.Errorf("pulse playback: %w", err)
	}

	go func() {
		stream.Start()
		stream.Drain()
		stream.Stop()
		stream.Close()
	}()
	return nil
}

func (p *pulseSynth) drop(c *pulse.Client) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == c {
		c.Close()
		p.client = nil
	}
}

func (p *pulseSynth) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
}
