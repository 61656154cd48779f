// Package clock turns a wall-clock time into hand angles and a 12-hour readout.
package clock

import (
	"fmt"
	"time"
)

// Reading is the hours/minutes/seconds of one tick, local time.
type Reading struct {
	Hours   int // 0-23
	Minutes int // 0-59
	Seconds int // 0-59
}

// Hands holds rotation angles in degrees, clockwise from 12 o'clock.
type Hands struct {
	Hour   float64
	Minute float64
	Second float64
}

// Digital is the zero-padded 12-hour readout.
type Digital struct {
	Hours   string
	Minutes string
	Seconds string
	Period  string // "AM" or "PM"
}

func Read(t time.Time) Reading {
	return Reading{Hours: t.Hour(), Minutes: t.Minute(), Seconds: t.Second()}
}

// Hands computes the angles. The hour hand creeps with the minutes and is not
// reduced modulo 360, so afternoon hours land past a full turn.
func (r Reading) Hands() Hands {
	mm := float64(r.Minutes) * 6
	return Hands{
		Hour:   float64(r.Hours)*30 + mm/12,
		Minute: mm,
		Second: float64(r.Seconds) * 6,
	}
}

func (r Reading) Digital() Digital {
	h := r.Hours
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	if h > 12 {
		h -= 12
	}
	if h == 0 {
		h = 12
	}
	return Digital{
		Hours:   fmt.Sprintf("%02d", h),
		Minutes: fmt.Sprintf("%02d", r.Minutes),
		Seconds: fmt.Sprintf("%02d", r.Seconds),
		Period:  period,
	}
}

func (d Digital) String() string {
	return d.Hours + ":" + d.Minutes + ":" + d.Seconds + " " + d.Period
}
