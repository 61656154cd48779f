// Package alarm decides when the clock rings and drives the display and sound
// for each tick.
package alarm

import "clockalarm/clock"

// State is the alarm's position in its Ready/Active/Disabled cycle.
type State int

const (
	Ready State = iota
	Active
	Disabled
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Active:
		return "active"
	case Disabled:
		return "disabled"
	}
	return "unknown"
}

// ShouldRing reports whether (minute, second) falls in the last 10 seconds
// before a 5-minute boundary: minutes 4, 9, ... 59 at seconds 50-59.
func ShouldRing(minute, second int) bool {
	return minute%5 == 4 && second >= 50
}

const (
	StatusReady    = "5-Minute Interval Alarm: Ready"
	StatusDisabled = "5-Minute Interval Alarm: Disabled"
	StatusRinging  = "ALARM: Last 10 seconds of 5-minute interval!"
	StatusTesting  = "Testing alarm sound..."

	ToggleDisable = "Disable Alarm"
	ToggleEnable  = "Enable Alarm"
)

// Display receives every output of the controller. Implementations are called
// only from the scheduler goroutine.
type Display interface {
	SetHands(h clock.Hands)
	SetDigital(d clock.Digital)
	SetStatus(text string)
	// SetAlarmVisual turns the alarm styling of the face and readout on or off.
	SetAlarmVisual(on bool)
	// SetToggle updates the enable/disable control. enabled is the alarm state,
	// not the control's.
	SetToggle(label string, enabled bool)
}

// Sound is the audible side of the alarm. Emit must not block.
type Sound interface {
	Init()
	Emit()
}
