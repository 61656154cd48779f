package beep

import (
	"math"
	"time"
)

// Tone is a sine burst with a linear attack and an exponential decay, shaped
// so it neither clicks on or off.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64 // peak gain, reached at the end of the attack
	Attack    time.Duration
	Floor     float64 // gain left at the end of the decay
}

var DefaultTone = Tone{
	Frequency: 800,
	Duration:  300 * time.Millisecond,
	Volume:    0.3,
	Attack:    10 * time.Millisecond,
	Floor:     0.01,
}

func (t Tone) gain(sec float64) float64 {
	attack := t.Attack.Seconds()
	if sec < attack {
		return t.Volume * sec / attack
	}
	decay := t.Duration.Seconds() - attack
	if decay <= 0 || t.Floor <= 0 || t.Floor >= t.Volume {
		return t.Volume
	}
	return t.Volume * math.Pow(t.Floor/t.Volume, (sec-attack)/decay)
}

// Samples renders the tone as mono 16-bit samples.
func (t Tone) Samples(rate int) []int16 {
	n := int(float64(rate) * t.Duration.Seconds())
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		sec := float64(i) / float64(rate)
		samples[i] = int16(math.Sin(2*math.Pi*t.Frequency*sec) * 32767 * t.gain(sec))
	}
	return samples
}

// littleEndian packs samples for byte-oriented devices.
func littleEndian(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	return buf
}
