//go:build !linux && !windows

package beep

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gen2brain/malgo"
)

// malgoSynth owns a playback device that stays stopped until the first
// sound. A stopped device (initial state, or after a sleep/wake) reports
// suspended and Resume starts it again.
type malgoSynth struct {
	mu     sync.Mutex
	ctx    *malgo.AllocatedContext
	device *malgo.Device
	rate   int

	// accessed from the device callback
	playSamples atomic.Pointer[[]byte]
	playPos     atomic.Uint32
}

func openSynth(rate int) (Synth, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("malgo context: %w", err)
	}
	m := &malgoSynth{ctx: ctx, rate: rate}
	if err := m.initDevice(); err != nil {
		ctx.Uninit()
		ctx.Free()
		return nil, err
	}
	return m, nil
}

func (m *malgoSynth) initDevice() error {
	config := malgo.DefaultDeviceConfig(malgo.Playback)
	config.Playback.Format = malgo.FormatS16
	config.Playback.Channels = 1
	config.SampleRate = uint32(m.rate)

	device, err := malgo.InitDevice(m.ctx.Context, config, malgo.DeviceCallbacks{
		Data: m.dataCallback,
	})
	if err != nil {
		return fmt.Errorf("malgo device: %w", err)
	}
	m.device = device
	return nil
}

func (m *malgoSynth) dataCallback(pOutput, _ []byte, frameCount uint32) {
	want := frameCount * 2
	samples := m.playSamples.Load()
	var written uint32
	if samples != nil {
		pos := m.playPos.Load()
		total := uint32(len(*samples))
		if pos < total {
			written = min(want, total-pos)
			copy(pOutput[:written], (*samples)[pos:pos+written])
			m.playPos.Store(pos + written)
		} else {
			m.playSamples.Store(nil)
		}
	}
	for i := written; i < want && int(i) < len(pOutput); i++ {
		pOutput[i] = 0
	}
}

func (m *malgoSynth) Name() string { return "malgo" }

func (m *malgoSynth) Suspended() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.device == nil || !m.device.IsStarted()
}

func (m *malgoSynth) Resume() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.device != nil {
		if err := m.device.Start(); err == nil {
			return nil
		}
		m.device.Uninit()
		m.device = nil
	}
	// Recreate the device (handles macOS sleep/wake)
	if err := m.initDevice(); err != nil {
		return err
	}
	return m.device.Start()
}

func (m *malgoSynth) Play(samples []int16) error {
	if m.Suspended() {
		return errSuspended
	}
	buf := littleEndian(samples)
	m.playSamples.Store(nil)
	m.playPos.Store(0)
	m.playSamples.Store(&buf)
	return nil
}

func (m *malgoSynth) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.device != nil {
		m.device.Uninit()
		m.device = nil
	}
	m.ctx.Uninit()
	m.ctx.Free()
}
