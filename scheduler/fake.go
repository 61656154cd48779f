package scheduler

import "time"

// Fake is a deterministic Scheduler driven by Advance. Callbacks run on the
// caller's goroutine in due-time order; ties run in registration order.
type Fake struct {
	now     time.Time
	seq     int
	entries []*fakeEntry
}

type fakeEntry struct {
	owner *Fake
	due   time.Time
	every time.Duration
	fn    func()
	seq   int
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time { return f.now }

func (f *Fake) After(d time.Duration, fn func()) Handle {
	return f.add(d, 0, fn)
}

func (f *Fake) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		panic("scheduler: non-positive interval")
	}
	return f.add(d, d, fn)
}

func (f *Fake) add(d, every time.Duration, fn func()) *fakeEntry {
	f.seq++
	e := &fakeEntry{owner: f, due: f.now.Add(d), every: every, fn: fn, seq: f.seq}
	f.entries = append(f.entries, e)
	return e
}

func (e *fakeEntry) Cancel() {
	e.owner.remove(e)
}

func (f *Fake) remove(e *fakeEntry) {
	for i, cur := range f.entries {
		if cur == e {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return
		}
	}
}

// Pending reports how many callbacks are still scheduled.
func (f *Fake) Pending() int { return len(f.entries) }

// PendingRepeating reports how many repeating callbacks with interval d are scheduled.
func (f *Fake) PendingRepeating(d time.Duration) int {
	n := 0
	for _, e := range f.entries {
		if e.every == d {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, firing everything that comes due.
func (f *Fake) Advance(d time.Duration) {
	target := f.now.Add(d)
	for {
		e := f.next(target)
		if e == nil {
			break
		}
		f.now = e.due
		if e.every > 0 {
			e.due = e.due.Add(e.every)
		} else {
			f.remove(e)
		}
		e.fn()
	}
	f.now = target
}

func (f *Fake) next(limit time.Time) *fakeEntry {
	var best *fakeEntry
	for _, e := range f.entries {
		if e.due.After(limit) {
			continue
		}
		if best == nil || e.due.Before(best.due) || (e.due.Equal(best.due) && e.seq < best.seq) {
			best = e
		}
	}
	return best
}
