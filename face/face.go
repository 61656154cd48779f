// Package face rasterizes the analog dial and its hands into a small pixel
// grid. The terminal view draws two pixels per character cell with half
// blocks; the desktop view paints one rectangle per pixel.
package face

import (
	"math"

	"clockalarm/clock"
)

type Pixel uint8

const (
	Empty Pixel = iota
	Dial
	Rim
	Marker
	HourHand
	MinuteHand
	SecondHand
	Center

	NumPixels
)

// DefaultSize is the grid edge in pixels. Odd sizes keep the pivot on a pixel.
const DefaultSize = 31

type hand struct {
	angle  float64
	length float64 // fraction of the radius
	width  float64
	pixel  Pixel
}

// Render draws the face for the given hand angles into a size×size grid.
func Render(h clock.Hands, size int) [][]Pixel {
	if size < 9 {
		size = 9
	}
	grid := make([][]Pixel, size)
	for i := range grid {
		grid[i] = make([]Pixel, size)
	}

	c := float64(size-1) / 2
	r := c

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dist := math.Hypot(float64(x)-c, float64(y)-c)
			switch {
			case dist <= r-1.2:
				grid[y][x] = Dial
			case dist <= r+0.5:
				grid[y][x] = Rim
			}
		}
	}

	for k := 0; k < 12; k++ {
		inner := r - 3
		if k%3 == 0 {
			inner = r - 4
		}
		stroke(grid, c, float64(k*30), inner, r-2, 0, Marker)
	}

	hands := []hand{
		{h.Hour, 0.5, 0.6, HourHand},
		{h.Minute, 0.75, 0.3, MinuteHand},
		{h.Second, 0.88, 0, SecondHand},
	}
	for _, hd := range hands {
		stroke(grid, c, hd.angle, 0, r*hd.length, hd.width, hd.pixel)
	}

	ci := int(math.Round(c))
	grid[ci][ci] = Center
	return grid
}

// stroke paints a radial segment from radius from to radius to at angle
// degrees clockwise from 12 o'clock.
func stroke(grid [][]Pixel, c, angle, from, to, width float64, p Pixel) {
	theta := math.Mod(angle, 360) * math.Pi / 180
	dx, dy := math.Sin(theta), -math.Cos(theta)
	nx, ny := -dy, dx
	size := len(grid)

	for d := from; d <= to; d += 0.25 {
		for w := -width; w <= width; w += 0.25 {
			x := int(math.Round(c + dx*d + nx*w))
			y := int(math.Round(c + dy*d + ny*w))
			if x >= 0 && y >= 0 && x < size && y < size {
				grid[y][x] = p
			}
		}
	}
}
