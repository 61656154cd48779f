package main

import (
	"context"
	"os"
	"time"

	"clockalarm/alarm"
	"clockalarm/log"
	"clockalarm/scheduler"
	"clockalarm/shutdown"
)

// command is a user action coming from any front end.
type command int

const (
	cmdInteract command = iota
	cmdTest
	cmdToggle
)

func (c command) String() string {
	switch c {
	case cmdTest:
		return "test"
	case cmdToggle:
		return "toggle"
	}
	return "interact"
}

const stopTimeout = 2 * time.Second

// session is one running clock. Front ends hand it their alarm.Display and
// forward user commands through send; everything else runs on the loop.
type session struct {
	loop  *scheduler.Loop
	sound alarm.Sound
	opts  alarm.Options
	eager bool

	ctrl   *alarm.Controller
	cancel context.CancelFunc
}

// start builds the controller for display and runs the loop in the background.
func (s *session) start(display alarm.Display) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.ctrl = alarm.NewController(s.loop, display, s.sound, s.opts)

	s.loop.Post(func() {
		if s.eager {
			s.ctrl.Interact()
		}
		s.ctrl.Start()
	})
	go s.loop.Run(ctx)
}

// send queues c on the loop. Every command counts as user interaction, which
// is what unlocks the synthesizer.
func (s *session) send(c command) {
	s.loop.Post(func() {
		s.ctrl.Interact()
		switch c {
		case cmdTest:
			s.ctrl.Test()
		case cmdToggle:
			s.ctrl.Toggle()
		}
	})
}

// notifyQuit calls quit once on SIGINT/SIGTERM.
func (s *session) notifyQuit(quit func()) {
	sigChan := make(chan os.Signal, 1)
	shutdown.Notify(sigChan)
	go func() {
		defer shutdown.Stop(sigChan)
		select {
		case sig := <-sigChan:
			log.Info("signal: " + sig.String())
			quit()
		case <-s.loop.Done():
		}
	}()
}

// stop cancels the controller's timers, ends the loop and returns how many
// times the alarm rang.
func (s *session) stop() int {
	stopped := make(chan struct{})
	if s.loop.Post(func() {
		s.ctrl.Stop()
		close(stopped)
	}) {
		select {
		case <-stopped:
		case <-s.loop.Done():
		case <-time.After(stopTimeout):
			log.Warn("controller did not stop in time")
		}
	}
	s.cancel()
	<-s.loop.Done()
	return s.ctrl.Rings()
}
