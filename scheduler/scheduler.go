// Package scheduler runs timer callbacks and posted commands one at a time on
// a single goroutine, so callers never need locks around their own state.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// Handle cancels a scheduled callback. Cancel is safe to call more than once.
type Handle interface {
	Cancel()
}

// Scheduler is the time source and timer capability the alarm controller runs on.
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) Handle
	Every(d time.Duration, fn func()) Handle
}

const queueSize = 64

// Loop serializes every callback onto the goroutine that calls Run.
type Loop struct {
	clock clockwork.Clock
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

func NewLoop(clock clockwork.Clock) *Loop {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Loop{
		clock: clock,
		queue: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

func (l *Loop) Now() time.Time { return l.clock.Now() }

// Post queues fn for the loop goroutine. It reports false once Run has returned.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run executes queued callbacks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Done is closed after Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

type handle struct {
	stopped atomic.Bool
	pending atomic.Bool
	stop    func()
}

func (h *handle) Cancel() {
	if h.stopped.CompareAndSwap(false, true) && h.stop != nil {
		h.stop()
	}
}

// After runs fn on the loop once d has elapsed. A cancelled handle never runs,
// even if its timer already fired and the callback is waiting in the queue.
func (l *Loop) After(d time.Duration, fn func()) Handle {
	h := &handle{}
	t := l.clock.AfterFunc(d, func() {
		l.Post(func() {
			if h.stopped.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	h.stop = func() { t.Stop() }
	return h
}

// Every runs fn on the loop each d. At most one tick per handle waits in the
// queue; ticks that arrive while it is still pending are dropped, not replayed.
func (l *Loop) Every(d time.Duration, fn func()) Handle {
	h := &handle{}
	ticker := l.clock.NewTicker(d)
	quit := make(chan struct{})
	h.stop = func() { close(quit) }

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-l.done:
				return
			case <-ticker.Chan():
				if !h.pending.CompareAndSwap(false, true) {
					continue
				}
				if !l.Post(func() {
					h.pending.Store(false)
					if !h.stopped.Load() {
						fn()
					}
				}) {
					h.pending.Store(false)
				}
			}
		}
	}()
	return h
}
