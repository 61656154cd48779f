package alarm

import (
	"time"

	"clockalarm/clock"
	"clockalarm/log"
	"clockalarm/scheduler"
)

const (
	TickInterval    = time.Second
	RetriggerPeriod = 500 * time.Millisecond
	TestWindow      = 2 * time.Second
)

// Options tunes the controller timings. Zero values use the defaults above.
type Options struct {
	Retrigger  time.Duration
	TestWindow time.Duration
}

// Controller is the clock and its alarm. All methods must run on the
// scheduler's goroutine.
type Controller struct {
	sched   scheduler.Scheduler
	display Display
	sound   Sound
	opts    Options

	enabled    bool
	ringing    bool
	retrigger  scheduler.Handle // non-nil iff ringing
	testRevert scheduler.Handle
	tick       scheduler.Handle
	interacted bool
	rings      int
}

func NewController(sched scheduler.Scheduler, display Display, sound Sound, opts Options) *Controller {
	if opts.Retrigger <= 0 {
		opts.Retrigger = RetriggerPeriod
	}
	if opts.TestWindow <= 0 {
		opts.TestWindow = TestWindow
	}
	return &Controller{
		sched:   sched,
		display: display,
		sound:   sound,
		opts:    opts,
		enabled: true,
	}
}

// Start paints the initial status, runs one update immediately and then
// once per second.
func (c *Controller) Start() {
	if c.tick != nil {
		return
	}
	c.display.SetStatus(c.idleStatus())
	c.display.SetToggle(c.toggleLabel(), c.enabled)
	c.Update()
	c.tick = c.sched.Every(TickInterval, c.Update)
}

// Stop cancels every timer the controller owns.
func (c *Controller) Stop() {
	if c.tick != nil {
		c.tick.Cancel()
		c.tick = nil
	}
	if c.testRevert != nil {
		c.testRevert.Cancel()
		c.testRevert = nil
	}
	c.stopRinging()
}

func (c *Controller) State() State {
	switch {
	case !c.enabled:
		return Disabled
	case c.ringing:
		return Active
	}
	return Ready
}

// Rings counts how many times the alarm has started ringing.
func (c *Controller) Rings() int { return c.rings }

// Update is one tick: hands, readout, then the alarm check.
func (c *Controller) Update() {
	r := clock.Read(c.sched.Now())
	c.display.SetHands(r.Hands())
	c.check(r.Minutes, r.Seconds)
	c.display.SetDigital(r.Digital())
}

func (c *Controller) check(minute, second int) {
	if !c.enabled {
		return
	}
	ring := ShouldRing(minute, second)
	switch {
	case ring && !c.ringing:
		c.startRinging()
	case !ring && c.ringing:
		c.stopRinging()
	}
}

func (c *Controller) startRinging() {
	if c.ringing || !c.enabled {
		return
	}
	c.ringing = true
	c.rings++
	c.display.SetAlarmVisual(true)
	c.display.SetStatus(StatusRinging)
	log.AlarmStart(c.sched.Now())

	c.sound.Emit()
	c.retrigger = c.sched.Every(c.opts.Retrigger, func() {
		if c.ringing {
			c.sound.Emit()
		}
	})
}

func (c *Controller) stopRinging() {
	if !c.ringing {
		return
	}
	c.ringing = false
	c.display.SetAlarmVisual(false)
	c.display.SetStatus(c.idleStatus())
	if c.retrigger != nil {
		c.retrigger.Cancel()
		c.retrigger = nil
	}
	log.AlarmStop()
}

// Toggle flips between enabled and disabled. Disabling silences a ringing
// alarm at once.
func (c *Controller) Toggle() {
	c.enabled = !c.enabled
	if c.enabled {
		c.display.SetToggle(ToggleDisable, true)
		c.display.SetStatus(StatusReady)
		log.Info("alarm_enabled")
		return
	}
	c.display.SetToggle(ToggleEnable, false)
	c.display.SetStatus(StatusDisabled)
	c.stopRinging()
	log.Info("alarm_disabled")
}

// Test plays one sound and shows the alarm styling for the test window. A real
// alarm that is ringing when the window ends keeps its styling.
func (c *Controller) Test() {
	log.Info("alarm_test")
	c.sound.Init()
	c.sound.Emit()

	c.display.SetAlarmVisual(true)
	c.display.SetStatus(StatusTesting)

	if c.testRevert != nil {
		c.testRevert.Cancel()
	}
	c.testRevert = c.sched.After(c.opts.TestWindow, func() {
		c.testRevert = nil
		if c.ringing {
			return
		}
		c.display.SetAlarmVisual(false)
		c.display.SetStatus(c.idleStatus())
	})
}

// Interact initializes the sound engine on the first user input.
func (c *Controller) Interact() {
	if c.interacted {
		return
	}
	c.interacted = true
	c.sound.Init()
}

func (c *Controller) idleStatus() string {
	if c.enabled {
		return StatusReady
	}
	return StatusDisabled
}

func (c *Controller) toggleLabel() string {
	if c.enabled {
		return ToggleDisable
	}
	return ToggleEnable
}
