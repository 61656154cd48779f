//go:build gui

package gui

import (
	"bytes"
	"image"
	"image/png"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"clockalarm/clock"
	"clockalarm/face"
)

// Actions are the user commands the window can issue. Interact fires on any
// key press or click so the first gesture unlocks audio even when it is not a
// command.
type Actions struct {
	Test     func()
	Toggle   func()
	Interact func()
}

// App is the desktop front end. It implements the alarm display; every
// update is marshalled onto the fyne thread.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	dial    *DialWidget
	digital *canvas.Text
	status  *widget.Label
	toggle  *widget.Button
	closed  atomic.Bool
}

// NewApp builds the window. It must be called before any display method.
func NewApp(actions Actions) *App {
	a := &App{}
	a.fyneApp = app.NewWithID("io.clockalarm.gui")
	a.fyneApp.Settings().SetTheme(&darkTheme{})

	icon := fyne.NewStaticResource("clockalarm.png", iconPNG())
	a.fyneApp.SetIcon(icon)

	if desk, ok := a.fyneApp.(desktop.App); ok {
		menu := fyne.NewMenu("clockalarm",
			fyne.NewMenuItem("Test Alarm", actions.Test),
			fyne.NewMenuItem("Toggle Alarm", actions.Toggle),
		)
		desk.SetSystemTrayMenu(menu)
		desk.SetSystemTrayIcon(icon)
	}

	a.window = a.fyneApp.NewWindow("clockalarm")
	a.dial = NewDialWidget()
	a.dial.OnTapped = actions.Interact

	a.digital = canvas.NewText("--:--:-- --", textColor)
	a.digital.TextSize = 28
	a.digital.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	a.digital.Alignment = fyne.TextAlignCenter

	a.status = widget.NewLabel("")
	a.status.Alignment = fyne.TextAlignCenter

	test := widget.NewButton("Test Alarm", actions.Test)
	a.toggle = widget.NewButton("", actions.Toggle)

	a.window.SetContent(newTapArea(container.NewVBox(
		container.NewCenter(a.dial),
		a.digital,
		a.status,
		container.NewGridWithColumns(2, test, a.toggle),
	), actions.Interact))
	a.window.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) { actions.Interact() })
	a.window.SetOnClosed(func() { a.closed.Store(true) })
	a.window.SetFixedSize(true)
	return a
}

// Run shows the window and blocks until it closes.
func Run(a *App) error {
	a.window.ShowAndRun()
	a.closed.Store(true)
	return nil
}

func (a *App) Quit() {
	a.closed.Store(true)
	if a.fyneApp != nil {
		a.fyneApp.Quit()
	}
}

func (a *App) do(fn func()) {
	if a.closed.Load() {
		return
	}
	fyne.Do(fn)
}

// alarm.Display implementation

func (a *App) SetHands(h clock.Hands) {
	a.dial.SetHands(h)
	a.do(a.dial.Refresh)
}

func (a *App) SetDigital(d clock.Digital) {
	text := d.String()
	a.do(func() {
		a.digital.Text = text
		a.digital.Refresh()
	})
}

func (a *App) SetStatus(text string) {
	a.do(func() {
		a.status.SetText(text)
	})
}

func (a *App) SetAlarmVisual(on bool) {
	a.dial.SetAlarm(on)
	a.do(func() {
		if on {
			a.digital.Color = alarmColor
			a.status.Importance = widget.DangerImportance
		} else {
			a.digital.Color = textColor
			a.status.Importance = widget.MediumImportance
		}
		a.digital.Refresh()
		a.status.Refresh()
		a.dial.Refresh()
	})
}

func (a *App) SetToggle(label string, enabled bool) {
	a.do(func() {
		a.toggle.SetText(label)
		if enabled {
			a.toggle.Importance = widget.HighImportance
		} else {
			a.toggle.Importance = widget.LowImportance
		}
		a.toggle.Refresh()
	})
}

// iconPNG draws the current time as the window and tray icon.
func iconPNG() []byte {
	const size = 22
	pixels := face.Render(clock.Read(time.Now()).Hands(), size)
	img := image.NewRGBA(image.Rect(0, 0, len(pixels), len(pixels)))
	for y, row := range pixels {
		for x, p := range row {
			if p != face.Empty {
				img.Set(x, y, colorsIdle[p])
			}
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}
