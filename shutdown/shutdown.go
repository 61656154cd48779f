// Package shutdown routes the signals that should end a session.
package shutdown

import (
	"os"
	"os/signal"
)

// Notify relays the quit signals for this OS to ch.
func Notify(ch chan<- os.Signal) {
	signal.Notify(ch, signals...)
}

// Stop undoes Notify for ch.
func Stop(ch chan<- os.Signal) {
	signal.Stop(ch)
}

// Signals lists what Notify subscribes to.
func Signals() []os.Signal {
	return append([]os.Signal(nil), signals...)
}
