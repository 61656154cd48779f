// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds the tunables a user may pin in the settings file. Command-line
// flags and environment variables take precedence over these values.
type Settings struct {
	// ToneFrequency is the synthesized tone pitch in Hz.
	ToneFrequency float64 `yaml:"tone_frequency"`
	// ToneDuration is the length of one synthesized tone.
	ToneDuration time.Duration `yaml:"tone_duration"`
	// ToneVolume is the peak gain of the tone, 0..1.
	ToneVolume float64 `yaml:"tone_volume"`
	// ClipVolume is the fallback clip volume, 0..1.
	ClipVolume float64 `yaml:"clip_volume"`
	// Retrigger is how often a ringing alarm repeats its sound.
	Retrigger time.Duration `yaml:"retrigger"`
	// TestWindow is how long the test trigger shows the alarm styling.
	TestWindow time.Duration `yaml:"test_window"`
	// EagerAudio opens the synthesizer at start instead of on first input.
	EagerAudio bool `yaml:"eager_audio"`
	// LogPath overrides the log directory.
	LogPath string `yaml:"log_path"`
}

const (
	// DefaultFilename is the settings file name inside the config directory.
	DefaultFilename = "settings.yaml"

	DefaultToneFrequency = 800.0
	DefaultToneDuration  = 300 * time.Millisecond
	DefaultToneVolume    = 0.3
	DefaultClipVolume    = 0.5
	DefaultRetrigger     = 500 * time.Millisecond
	DefaultTestWindow    = 2 * time.Second
)

var (
	errFrequencyRange = errors.New("tone_frequency must be between 20 and 20000 Hz")
	errDurationRange  = errors.New("tone_duration must be between 50ms and 2s")
	errVolumeRange    = errors.New("volume must be between 0 and 1")
	errRetriggerRange = errors.New("retrigger must be at least 100ms")
	errTestWindow     = errors.New("test_window must be positive")
)

func Defaults() Settings {
	return Settings{
		ToneFrequency: DefaultToneFrequency,
		ToneDuration:  DefaultToneDuration,
		ToneVolume:    DefaultToneVolume,
		ClipVolume:    DefaultClipVolume,
		Retrigger:     DefaultRetrigger,
		TestWindow:    DefaultTestWindow,
	}
}

// DefaultPath is <user config dir>/clockalarm/settings.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "clockalarm", DefaultFilename), nil
}

// Load reads path over the defaults. A missing file is not an error when
// optional is true.
func Load(path string, optional bool) (Settings, error) {
	s := Defaults()

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(contents, &s); err != nil {
		return s, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(s); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks ranges.
func Validate(s Settings) error {
	if s.ToneFrequency < 20 || s.ToneFrequency > 20000 {
		return errFrequencyRange
	}
	if s.ToneDuration < 50*time.Millisecond || s.ToneDuration > 2*time.Second {
		return errDurationRange
	}
	if s.ToneVolume <= 0 || s.ToneVolume > 1 {
		return fmt.Errorf("tone_volume: %w", errVolumeRange)
	}
	if s.ClipVolume <= 0 || s.ClipVolume > 1 {
		return fmt.Errorf("clip_volume: %w", errVolumeRange)
	}
	if s.Retrigger < 100*time.Millisecond {
		return errRetriggerRange
	}
	if s.TestWindow <= 0 {
		return errTestWindow
	}
	return nil
}

// Save writes s to path, creating the parent directory.
func Save(path string, s Settings) error {
	if err := Validate(s); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
