package alarm

import "clockalarm/clock"

type fakeDisplay struct {
	hands   clock.Hands
	digital clock.Digital
	status  string
	visual  bool
	toggle  string
	enabled bool

	visualCalls int
}

func (d *fakeDisplay) SetHands(h clock.Hands)     { d.hands = h }
func (d *fakeDisplay) SetDigital(v clock.Digital) { d.digital = v }
func (d *fakeDisplay) SetStatus(text string)      { d.status = text }
func (d *fakeDisplay) SetAlarmVisual(on bool) {
	d.visual = on
	d.visualCalls++
}
func (d *fakeDisplay) SetToggle(label string, enabled bool) {
	d.toggle = label
	d.enabled = enabled
}

type fakeSound struct {
	inits int
	emits int
}

func (s *fakeSound) Init() { s.inits++ }
func (s *fakeSound) Emit() { s.emits++ }
