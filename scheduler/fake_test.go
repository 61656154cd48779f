package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func TestFakeAfterFiresOnce(t *testing.T) {
	f := NewFake(epoch)
	n := 0
	f.After(2*time.Second, func() { n++ })

	f.Advance(1999 * time.Millisecond)
	assert.Equal(t, 0, n)
	f.Advance(time.Millisecond)
	assert.Equal(t, 1, n)
	f.Advance(time.Hour)
	assert.Equal(t, 1, n)
	assert.Zero(t, f.Pending())
}

func TestFakeEveryAndCancel(t *testing.T) {
	f := NewFake(epoch)
	var at []time.Time
	h := f.Every(time.Second, func() { at = append(at, f.Now()) })

	f.Advance(3 * time.Second)
	assert.Equal(t, []time.Time{
		epoch.Add(time.Second),
		epoch.Add(2 * time.Second),
		epoch.Add(3 * time.Second),
	}, at)

	h.Cancel()
	h.Cancel()
	f.Advance(3 * time.Second)
	assert.Len(t, at, 3)
	assert.Equal(t, epoch.Add(6*time.Second), f.Now())
}

func TestFakeOrdersByDueThenRegistration(t *testing.T) {
	f := NewFake(epoch)
	var got []string
	f.Every(time.Second, func() { got = append(got, "tick") })
	f.Every(500*time.Millisecond, func() { got = append(got, "half") })
	f.After(time.Second, func() { got = append(got, "once") })

	f.Advance(time.Second)
	assert.Equal(t, []string{"half", "tick", "half", "once"}, got)
}

func TestFakeCallbackCanSchedule(t *testing.T) {
	f := NewFake(epoch)
	n := 0
	f.After(time.Second, func() {
		f.After(time.Second, func() { n++ })
	})
	f.Advance(2 * time.Second)
	assert.Equal(t, 1, n)
}

func TestFakePendingRepeating(t *testing.T) {
	f := NewFake(epoch)
	f.Every(time.Second, func() {})
	h := f.Every(500*time.Millisecond, func() {})
	f.After(500*time.Millisecond, func() {})

	assert.Equal(t, 1, f.PendingRepeating(500*time.Millisecond))
	h.Cancel()
	assert.Zero(t, f.PendingRepeating(500*time.Millisecond))
	assert.Equal(t, 2, f.Pending())
}
