//go:build gui

package gui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"clockalarm/clock"
	"clockalarm/face"
)

const cellSize = 8

var (
	colorsIdle = [face.NumPixels]color.Color{
		color.RGBA{18, 18, 18, 255},    // Empty: window background
		color.RGBA{48, 48, 48, 255},    // Dial (236)
		color.RGBA{138, 138, 138, 255}, // Rim (245)
		color.RGBA{188, 188, 188, 255}, // Marker (250)
		color.RGBA{238, 238, 238, 255}, // HourHand (255)
		color.RGBA{208, 208, 208, 255}, // MinuteHand (252)
		color.RGBA{255, 95, 95, 255},   // SecondHand (203)
		color.RGBA{255, 175, 0, 255},   // Center (214)
	}

	colorsAlarm = [face.NumPixels]color.Color{
		color.RGBA{18, 18, 18, 255},    // Empty
		color.RGBA{95, 0, 0, 255},      // Dial (52)
		color.RGBA{255, 0, 0, 255},     // Rim (196)
		color.RGBA{255, 215, 215, 255}, // Marker (224)
		color.RGBA{255, 255, 255, 255}, // HourHand (231)
		color.RGBA{255, 215, 215, 255}, // MinuteHand (224)
		color.RGBA{255, 255, 0, 255},   // SecondHand (226)
		color.RGBA{255, 255, 0, 255},   // Center (226)
	}
)

// DialWidget paints the clock face, one rectangle per face pixel.
type DialWidget struct {
	widget.BaseWidget
	OnTapped func()

	mu    sync.Mutex
	hands clock.Hands
	alarm bool
	size  int
}

func NewDialWidget() *DialWidget {
	d := &DialWidget{size: face.DefaultSize}
	d.ExtendBaseWidget(d)
	return d
}

// SetHands and SetAlarm only store state; callers refresh on the fyne thread.
func (d *DialWidget) SetHands(h clock.Hands) {
	d.mu.Lock()
	d.hands = h
	d.mu.Unlock()
}

func (d *DialWidget) SetAlarm(on bool) {
	d.mu.Lock()
	d.alarm = on
	d.mu.Unlock()
}

func (d *DialWidget) Tapped(*fyne.PointEvent) {
	if d.OnTapped != nil {
		d.OnTapped()
	}
}

func (d *DialWidget) MinSize() fyne.Size {
	return fyne.NewSize(float32(d.size*cellSize), float32(d.size*cellSize))
}

func (d *DialWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &dialRenderer{dial: d}
	r.rects = make([][]*canvas.Rectangle, d.size)
	for y := 0; y < d.size; y++ {
		r.rects[y] = make([]*canvas.Rectangle, d.size)
		for x := 0; x < d.size; x++ {
			r.rects[y][x] = canvas.NewRectangle(colorsIdle[face.Empty])
		}
	}
	r.Refresh()
	return r
}

type dialRenderer struct {
	dial  *DialWidget
	rects [][]*canvas.Rectangle
}

func (r *dialRenderer) Layout(size fyne.Size) {
	n := float32(len(r.rects))
	edge := size.Width
	if size.Height < edge {
		edge = size.Height
	}
	cell := edge / n
	offX := (size.Width - edge) / 2
	offY := (size.Height - edge) / 2
	for y, row := range r.rects {
		for x, rect := range row {
			rect.Move(fyne.NewPos(offX+float32(x)*cell, offY+float32(y)*cell))
			rect.Resize(fyne.NewSize(cell, cell))
		}
	}
}

func (r *dialRenderer) MinSize() fyne.Size {
	return r.dial.MinSize()
}

func (r *dialRenderer) Refresh() {
	r.dial.mu.Lock()
	hands := r.dial.hands
	alarm := r.dial.alarm
	r.dial.mu.Unlock()

	colors := &colorsIdle
	if alarm {
		colors = &colorsAlarm
	}

	pixels := face.Render(hands, len(r.rects))
	for y, row := range r.rects {
		for x, rect := range row {
			c := colors[pixels[y][x]]
			if rect.FillColor != c {
				rect.FillColor = c
				rect.Refresh()
			}
		}
	}
}

func (r *dialRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(r.rects)*len(r.rects))
	for _, row := range r.rects {
		for _, rect := range row {
			objs = append(objs, rect)
		}
	}
	return objs
}

func (r *dialRenderer) Destroy() {}
