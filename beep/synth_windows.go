//go:build windows

package beep

// No synthesizer on Windows; the clip player handles every sound.
func openSynth(int) (Synth, error) { return nil, errUnsupported }
