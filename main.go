package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"clockalarm/alarm"
	"clockalarm/beep"
	"clockalarm/config"
	"clockalarm/doctor"
	"clockalarm/log"
	"clockalarm/scheduler"
)

var version = "dev"

const tagline = "Analog clock that rings in the last 10 seconds of every 5 minutes"

// CLI is the command line. Sound flags sit at the top so doctor plays the
// same tone the clock does.
type CLI struct {
	Config     string  `help:"Settings file (default: <config dir>/clockalarm/settings.yaml)" type:"path" env:"CLOCKALARM_CONFIG"`
	LogPath    string  `help:"Log directory (default: OS-specific location, use ./ for current dir)" name:"log-path"`
	ToneFreq   float64 `help:"Synthesized tone frequency in Hz" default:"800" env:"CLOCKALARM_TONE_FREQ"`
	ToneVolume float64 `help:"Synthesized tone peak volume, 0-1" default:"0.3" env:"CLOCKALARM_TONE_VOLUME"`
	ClipVolume float64 `help:"Fallback clip volume, 0-1" default:"0.5" env:"CLOCKALARM_CLIP_VOLUME"`

	Run     RunCmd     `cmd:"" help:"Show the clock (default)" default:"withargs"`
	Doctor  DoctorCmd  `cmd:"" help:"Run interactive audio diagnostics"`
	Version VersionCmd `cmd:"" help:"Print version and exit"`

	settings config.Settings `kong:"-"`
}

// AfterApply loads the settings file and folds it under the flags:
// flags > env vars > settings file > defaults.
func (c *CLI) AfterApply() error {
	path, optional := c.Config, false
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path, optional = p, true
	}

	s, err := config.Load(path, optional)
	if err != nil {
		return err
	}

	if c.ToneFreq == config.DefaultToneFrequency && !hasEnv("CLOCKALARM_TONE_FREQ") {
		c.ToneFreq = s.ToneFrequency
	}
	if c.ToneVolume == config.DefaultToneVolume && !hasEnv("CLOCKALARM_TONE_VOLUME") {
		c.ToneVolume = s.ToneVolume
	}
	if c.ClipVolume == config.DefaultClipVolume && !hasEnv("CLOCKALARM_CLIP_VOLUME") {
		c.ClipVolume = s.ClipVolume
	}
	if c.LogPath == "" && !hasEnv("CLOCKALARM_LOG_PATH") {
		c.LogPath = s.LogPath
	}

	s.ToneFrequency = c.ToneFreq
	s.ToneVolume = c.ToneVolume
	s.ClipVolume = c.ClipVolume
	s.LogPath = c.LogPath
	if err := config.Validate(s); err != nil {
		return err
	}
	c.settings = s
	return nil
}

func hasEnv(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

func (c *CLI) soundConfig() beep.Config {
	tone := beep.DefaultTone
	tone.Frequency = c.settings.ToneFrequency
	tone.Duration = c.settings.ToneDuration
	tone.Volume = c.settings.ToneVolume
	return beep.Config{Tone: tone, ClipVolume: c.settings.ClipVolume}
}

type RunCmd struct {
	GUI        bool `help:"Open a desktop window (needs a build with -tags gui)" name:"gui"`
	Headless   bool `help:"No UI: read TEST, TOGGLE, SLEEP <ms>, QUIT from stdin and print display changes"`
	Mute       bool `help:"Never play sound" env:"CLOCKALARM_MUTE"`
	EagerAudio bool `help:"Open the synthesizer at start instead of on the first key press"`
}

const (
	modeTUI      = "tui"
	modeHeadless = "headless"
	modeGUI      = "gui"
)

func (r *RunCmd) mode() string {
	switch {
	case r.GUI:
		return modeGUI
	case r.Headless:
		return modeHeadless
	case !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())):
		return modeHeadless
	}
	return modeTUI
}

func (r *RunCmd) Run(cli *CLI) error {
	logDir, err := log.ResolveDir(cli.LogPath)
	if err != nil {
		return fmt.Errorf("failed to resolve log directory: %w", err)
	}
	log.SetDir(logDir)
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()
	initCrashLog()

	engine := beep.New(cli.soundConfig())
	defer engine.Close()
	if r.Mute {
		engine.Disable()
	}

	sess := &session{
		loop:  scheduler.NewLoop(nil),
		sound: engine,
		opts: alarm.Options{
			Retrigger:  cli.settings.Retrigger,
			TestWindow: cli.settings.TestWindow,
		},
		eager: r.EagerAudio || cli.settings.EagerAudio,
	}

	mode := r.mode()
	log.SessionStart(mode, engine.Strategy(), r.Mute)

	var rings int
	switch mode {
	case modeGUI:
		rings, err = runGUI(sess)
	case modeHeadless:
		rings, err = runHeadless(sess, os.Stdin, os.Stdout)
	default:
		rings, err = runTUI(sess)
	}
	log.SessionEnd(rings)
	if err != nil {
		log.Errorf("%s error: %v", mode, err)
	}
	return err
}

type DoctorCmd struct{}

func (d *DoctorCmd) Run(cli *CLI) error {
	os.Exit(doctor.Run(cli.soundConfig()))
	return nil
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Printf("clockalarm %s\n", version)
	return nil
}

func initCrashLog() {
	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] ===\n", time.Now().Format("2006-01-02 15:04:05"), os.Getpid())
	debug.SetCrashOutput(crashFile, debug.CrashOptions{})
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("clockalarm"),
		kong.Description(tagline),
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
