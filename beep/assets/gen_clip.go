//go:build ignore

// Generates alarm.wav, the fallback clip played when no synthesizer is open.
// Run from this directory: go run gen_clip.go
package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

const (
	sampleRate = 22050
	duration   = 0.25
	freq       = 880.0
	attack     = 0.005
	decay      = 12.0
	volume     = 0.8
)

func main() {
	n := int(sampleRate * duration)
	dataSize := n * 2
	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], 1) // mono
	binary.LittleEndian.PutUint32(buf[24:28], sampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], sampleRate*2)
	binary.LittleEndian.PutUint16(buf[32:34], 2)
	binary.LittleEndian.PutUint16(buf[34:36], 16)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		env := math.Exp(-t * decay)
		if t < attack {
			env = t / attack
		}
		s := int16(math.Sin(2*math.Pi*freq*t) * env * volume * 32767)
		binary.LittleEndian.PutUint16(buf[44+i*2:], uint16(s))
	}

	if err := os.WriteFile("alarm.wav", buf, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing WAV: %v\n", err)
		os.Exit(1)
	}
}
