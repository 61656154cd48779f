package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"clockalarm/clock"
	"clockalarm/log"
)

// lineDisplay prints controller output as one line per change. Ticks are
// printed every second; the rest only when they differ from the last value.
type lineDisplay struct {
	mu     sync.Mutex
	out    io.Writer
	hands  clock.Hands
	status string
	visual bool
	toggle string
}

func newLineDisplay(out io.Writer) *lineDisplay {
	return &lineDisplay{out: out}
}

func (d *lineDisplay) printf(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, format+"\n", args...)
}

func (d *lineDisplay) SetHands(h clock.Hands) {
	d.mu.Lock()
	d.hands = h
	d.mu.Unlock()
}

func (d *lineDisplay) SetDigital(t clock.Digital) {
	d.mu.Lock()
	h := d.hands
	d.mu.Unlock()
	d.printf("TICK %s hour=%.1f minute=%.1f second=%.1f", t, h.Hour, h.Minute, h.Second)
}

func (d *lineDisplay) SetStatus(text string) {
	d.mu.Lock()
	changed := text != d.status
	d.status = text
	d.mu.Unlock()
	if changed {
		d.printf("STATUS %s", text)
	}
}

func (d *lineDisplay) SetAlarmVisual(on bool) {
	d.mu.Lock()
	changed := on != d.visual
	d.visual = on
	d.mu.Unlock()
	if changed {
		state := "off"
		if on {
			state = "on"
		}
		d.printf("VISUAL %s", state)
	}
}

func (d *lineDisplay) SetToggle(label string, enabled bool) {
	d.mu.Lock()
	changed := label != d.toggle
	d.toggle = label
	d.mu.Unlock()
	if changed {
		d.printf("TOGGLE %s enabled=%t", label, enabled)
	}
}

// runHeadless drives the clock from stdin lines: TEST, TOGGLE, SLEEP <ms>,
// QUIT. EOF ends the session like QUIT.
func runHeadless(sess *session, in io.Reader, out io.Writer) (int, error) {
	d := newLineDisplay(out)
	sess.start(d)

	done := make(chan struct{})
	var once sync.Once
	finish := func() { once.Do(func() { close(done) }) }
	sess.notifyQuit(finish)

	// Stdin driver in background -- commands run in order, SLEEP blocks the reader
	go func() {
		defer finish()
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			cmd := strings.TrimSpace(scanner.Text())
			switch strings.ToUpper(cmd) {
			case "":
			case "TEST":
				sess.send(cmdTest)
			case "TOGGLE":
				sess.send(cmdToggle)
			case "INTERACT":
				sess.send(cmdInteract)
			case "QUIT":
				return
			default:
				if ms, ok := parseSleep(cmd); ok {
					time.Sleep(time.Duration(ms) * time.Millisecond)
					continue
				}
				log.Warnf("unknown headless command %q", cmd)
				d.printf("ERROR unknown command %q", cmd)
			}
		}
	}()

	<-done
	return sess.stop(), nil
}

func parseSleep(cmd string) (int, bool) {
	arg, ok := strings.CutPrefix(strings.ToUpper(cmd), "SLEEP ")
	if !ok {
		return 0, false
	}
	ms, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || ms < 0 {
		return 0, false
	}
	return ms, true
}
