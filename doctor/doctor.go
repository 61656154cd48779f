package doctor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"clockalarm/beep"
	"clockalarm/shutdown"
)

// Probe is everything the checks touch on the host.
type Probe struct {
	OpenSynth func() (beep.Synth, error)
	Clip      beep.Player
	Tone      beep.Tone
	Terminal  func() bool
	In        io.Reader
	Out       io.Writer
	// Wait is how long a sound is given to finish before asking about it.
	Wait time.Duration
}

// Run executes interactive diagnostic checks and returns an exit code (0 when
// at least one sound strategy was heard, 1 otherwise).
func Run(cfg beep.Config) int {
	resetTerminal()
	setupInterruptHandler()

	clip := beep.NewClipPlayer(cfg.ClipVolume)
	defer clip.Close()

	return run(Probe{
		OpenSynth: beep.OpenSynth,
		Clip:      clip,
		Tone:      cfg.Tone,
		Terminal:  func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		In:        os.Stdin,
		Out:       os.Stdout,
		Wait:      cfg.Tone.Duration + 300*time.Millisecond,
	})
}

func run(p Probe) int {
	out := p.Out
	reader := bufio.NewReader(p.In)

	fmt.Fprintln(out, "clockalarm doctor - interactive audio diagnostics")
	fmt.Fprintln(out, "=================================================")

	synthOK := checkSynth(p, reader)
	clipOK := checkClip(p, reader)
	checkTerminal(p)

	fmt.Fprintln(out)
	switch {
	case synthOK && clipOK:
		fmt.Fprintln(out, "All checks passed!")
	case synthOK:
		fmt.Fprintln(out, "Synthesized tone works. The fallback clip will not be needed once a key is pressed.")
	case clipOK:
		fmt.Fprintln(out, "Only the fallback clip works. Alarms will sound, without the synthesized tone.")
	default:
		fmt.Fprintln(out, "No sound strategy works. Alarms will be visual only. See details above.")
		return 1
	}
	return 0
}

func checkSynth(p Probe, reader *bufio.Reader) bool {
	out := p.Out
	fmt.Fprintln(out)
	fmt.Fprintln(out, "[1/3] Synthesized tone")

	s, err := p.OpenSynth()
	if err != nil {
		fmt.Fprintf(out, "  FAIL: cannot open synthesizer: %v\n", err)
		return false
	}
	defer s.Close()
	fmt.Fprintf(out, "  backend: %s\n", s.Name())

	if s.Suspended() {
		if err := s.Resume(); err != nil {
			fmt.Fprintf(out, "  FAIL: cannot resume %s: %v\n", s.Name(), err)
			return false
		}
	}
	if err := s.Play(beep.Render(p.Tone)); err != nil {
		fmt.Fprintf(out, "  FAIL: playback error: %v\n", err)
		return false
	}
	time.Sleep(p.Wait)

	return confirm(out, reader, "Did you hear a short beep?")
}

func checkClip(p Probe, reader *bufio.Reader) bool {
	out := p.Out
	fmt.Fprintln(out)
	fmt.Fprintln(out, "[2/3] Fallback clip")

	if err := p.Clip.Play(); err != nil {
		fmt.Fprintf(out, "  FAIL: %v\n", err)
		return false
	}
	time.Sleep(p.Wait)

	return confirm(out, reader, "Did you hear the alarm clip?")
}

func checkTerminal(p Probe) {
	out := p.Out
	fmt.Fprintln(out)
	fmt.Fprintln(out, "[3/3] Terminal")

	if p.Terminal() {
		fmt.Fprintln(out, "  PASS: stdout is a terminal, the clock face can be drawn")
		return
	}
	fmt.Fprintln(out, "  NOTE: stdout is not a terminal, clockalarm will run headless")
}

func confirm(out io.Writer, reader *bufio.Reader, question string) bool {
	fmt.Fprintf(out, "%s [y/n]: ", question)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	if answer == "y" || answer == "yes" {
		fmt.Fprintln(out, "  PASS: confirmed by user")
		return true
	}
	fmt.Fprintln(out, "  FAIL: not confirmed")
	return false
}

func setupInterruptHandler() {
	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		<-sigChan
		resetTerminal()
		println("\nInterrupted")
		os.Exit(1)
	}()
}
