package face

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clockalarm/clock"
)

func TestRenderGeometry(t *testing.T) {
	grid := Render(clock.Hands{}, DefaultSize)
	require.Len(t, grid, DefaultSize)
	for _, row := range grid {
		require.Len(t, row, DefaultSize)
	}

	c := DefaultSize / 2
	assert.Equal(t, Center, grid[c][c])
	assert.Equal(t, Empty, grid[0][0])
	assert.Equal(t, Rim, grid[0][c])
	assert.Equal(t, Rim, grid[c][DefaultSize-1])
}

func TestRenderMidnightHandsPointUp(t *testing.T) {
	grid := Render(clock.Hands{}, DefaultSize)
	c := DefaultSize / 2

	assert.Equal(t, SecondHand, grid[c-5][c], "second hand drawn last")
	assert.Equal(t, SecondHand, grid[c-12][c])
	assert.Equal(t, Dial, grid[c+5][c])
}

func TestRenderThreeOClock(t *testing.T) {
	hands := clock.Reading{Hours: 3}.Hands()
	grid := Render(hands, DefaultSize)
	c := DefaultSize / 2

	assert.Equal(t, HourHand, grid[c][c+3])
	assert.Equal(t, HourHand, grid[c][c+6])
	assert.NotEqual(t, HourHand, grid[c][c+11])
	assert.Equal(t, SecondHand, grid[c-8][c])
}

func TestRenderAfternoonWrapsHourHand(t *testing.T) {
	morning := Render(clock.Reading{Hours: 3, Minutes: 30}.Hands(), DefaultSize)
	afternoon := Render(clock.Reading{Hours: 15, Minutes: 30}.Hands(), DefaultSize)
	assert.Equal(t, morning, afternoon)
}

func TestRenderHourMarkers(t *testing.T) {
	grid := Render(clock.Hands{Hour: 45, Minute: 135, Second: 225}, DefaultSize)
	c := DefaultSize / 2
	r := DefaultSize / 2

	assert.Equal(t, Marker, grid[c+r-3][c], "six o'clock")
	assert.Equal(t, Marker, grid[c][c-r+3], "nine o'clock")
}

func TestRenderMinimumSize(t *testing.T) {
	grid := Render(clock.Hands{}, 3)
	assert.Len(t, grid, 9)
}
