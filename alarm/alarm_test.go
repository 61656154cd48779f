package alarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldRing(t *testing.T) {
	for m := 0; m < 60; m++ {
		for s := 0; s < 60; s++ {
			want := m%5 == 4 && s >= 50
			assert.Equal(t, want, ShouldRing(m, s), "%02d:%02d", m, s)
		}
	}
}

func TestShouldRingExamples(t *testing.T) {
	assert.True(t, ShouldRing(4, 50))
	assert.False(t, ShouldRing(4, 49))
	assert.True(t, ShouldRing(9, 59))
	assert.True(t, ShouldRing(59, 55))
	assert.False(t, ShouldRing(5, 50))
	assert.False(t, ShouldRing(0, 0))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "disabled", Disabled.String())
	assert.Equal(t, "unknown", State(9).String())
}
