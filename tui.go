package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clockalarm/clock"
	"clockalarm/face"
)

// TUI message types, one per alarm.Display method.
type handsMsg clock.Hands
type digitalMsg clock.Digital
type statusMsg string
type alarmVisualMsg bool
type toggleMsg struct {
	label   string
	enabled bool
}

// tuiDisplay forwards controller output into the bubbletea program.
type tuiDisplay struct {
	send func(tea.Msg)
}

func (d tuiDisplay) SetHands(h clock.Hands)     { d.send(handsMsg(h)) }
func (d tuiDisplay) SetDigital(t clock.Digital) { d.send(digitalMsg(t)) }
func (d tuiDisplay) SetStatus(text string)      { d.send(statusMsg(text)) }
func (d tuiDisplay) SetAlarmVisual(on bool)     { d.send(alarmVisualMsg(on)) }
func (d tuiDisplay) SetToggle(label string, enabled bool) {
	d.send(toggleMsg{label: label, enabled: enabled})
}

type tuiModel struct {
	dispatch func(command)
	keys     keyMap
	help     help.Model

	hands   clock.Hands
	digital string
	status  string
	toggle  string
	enabled bool
	alarm   bool
	ticked  bool

	width, height int
}

// Pre-computed pixel styles to avoid allocations in render loop
var (
	pixelColorsIdle  = [face.NumPixels]string{"", "236", "245", "250", "255", "252", "203", "214"}
	pixelColorsAlarm = [face.NumPixels]string{"", "52", "196", "224", "231", "224", "226", "226"}
	pixelStylesIdle  [face.NumPixels]lipgloss.Style
	pixelStylesAlarm [face.NumPixels]lipgloss.Style
	pixelBgIdle      [face.NumPixels][face.NumPixels]lipgloss.Style
	pixelBgAlarm     [face.NumPixels][face.NumPixels]lipgloss.Style

	digitalStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	digitalAlarmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusAlarmStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	toggleOnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	toggleOffStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
)

func init() {
	precompute(&pixelColorsIdle, &pixelStylesIdle, &pixelBgIdle)
	precompute(&pixelColorsAlarm, &pixelStylesAlarm, &pixelBgAlarm)
}

func precompute(colors *[face.NumPixels]string, fg *[face.NumPixels]lipgloss.Style, bg *[face.NumPixels][face.NumPixels]lipgloss.Style) {
	for i, c := range colors {
		if c != "" {
			fg[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
		}
	}
	for i, top := range colors {
		for j, bot := range colors {
			if top != "" && bot != "" {
				bg[i][j] = lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Background(lipgloss.Color(bot))
			}
		}
	}
}

func newTUIModel(dispatch func(command)) tuiModel {
	return tuiModel{
		dispatch: dispatch,
		keys:     newKeyMap(),
		help:     help.New(),
		enabled:  true,
	}
}

// runTUI shows the clock until the user quits.
func runTUI(sess *session) (int, error) {
	m := newTUIModel(sess.send)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	sess.start(tuiDisplay{send: p.Send})
	sess.notifyQuit(p.Quit)

	_, err := p.Run()
	return sess.stop(), err
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Test):
			m.dispatch(cmdTest)
		case key.Matches(msg, m.keys.Toggle):
			m.dispatch(cmdToggle)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.dispatch(cmdInteract)
		default:
			m.dispatch(cmdInteract)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.dispatch(cmdInteract)
		}

	case handsMsg:
		m.hands = clock.Hands(msg)
		m.ticked = true

	case digitalMsg:
		m.digital = clock.Digital(msg).String()

	case statusMsg:
		m.status = string(msg)

	case alarmVisualMsg:
		m.alarm = bool(msg)

	case toggleMsg:
		m.toggle = msg.label
		m.enabled = msg.enabled
		m.keys.Toggle.SetHelp("space", strings.ToLower(msg.label))
	}
	return m, nil
}

func (m tuiModel) View() string {
	if !m.ticked {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(renderFace(face.Render(m.hands, face.DefaultSize), m.alarm))
	b.WriteString("\n")

	digital, status := digitalStyle, statusStyle
	if m.alarm {
		digital, status = digitalAlarmStyle, statusAlarmStyle
	}
	b.WriteString(digital.Render(m.digital) + "\n")
	b.WriteString(status.Render(m.status) + "\n")

	toggle := toggleOnStyle.Render("● alarm on")
	if !m.enabled {
		toggle = toggleOffStyle.Render("○ alarm off")
	}
	b.WriteString(toggle + "\n\n")
	b.WriteString(m.help.View(m.keys))

	out := b.String()
	if m.width > 0 && m.height > 0 {
		out = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// renderFace draws two pixel rows per line with half blocks.
func renderFace(pixels [][]face.Pixel, alarm bool) string {
	styles := &pixelStylesIdle
	bgStyles := &pixelBgIdle
	if alarm {
		styles = &pixelStylesAlarm
		bgStyles = &pixelBgAlarm
	}

	pixH := len(pixels)
	if pixH == 0 {
		return ""
	}
	pixW := len(pixels[0])
	charsH := (pixH + 1) / 2

	var result strings.Builder
	for cy := 0; cy < charsH; cy++ {
		for cx := 0; cx < pixW; cx++ {
			topY := cy * 2
			botY := cy*2 + 1
			top := pixels[topY][cx]
			bot := face.Empty
			if botY < pixH {
				bot = pixels[botY][cx]
			}
			switch {
			case top == face.Empty && bot == face.Empty:
				result.WriteString(" ")
			case top == bot:
				result.WriteString(styles[top].Render("█"))
			case bot == face.Empty:
				result.WriteString(styles[top].Render("▀"))
			case top == face.Empty:
				result.WriteString(styles[bot].Render("▄"))
			default:
				result.WriteString(bgStyles[top][bot].Render("▀"))
			}
		}
		result.WriteString("\n")
	}
	return result.String()
}
