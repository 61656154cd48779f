package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clockalarm/alarm"
	"clockalarm/clock"
	"clockalarm/face"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type dispatched struct{ cmds []command }

func (d *dispatched) send(c command) { d.cmds = append(d.cmds, c) }

func update(t *testing.T, m tuiModel, msg tea.Msg) (tuiModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	tm, ok := next.(tuiModel)
	require.True(t, ok)
	return tm, cmd
}

func TestTUIKeysDispatchCommands(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want command
	}{
		{"t tests", runeKey("t"), cmdTest},
		{"space toggles", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, cmdToggle},
		{"a toggles", runeKey("a"), cmdToggle},
		{"other keys interact", runeKey("x"), cmdInteract},
		{"help interacts", runeKey("?"), cmdInteract},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &dispatched{}
			_, cmd := update(t, newTUIModel(d.send), tt.msg)
			assert.Nil(t, cmd)
			assert.Equal(t, []command{tt.want}, d.cmds)
		})
	}
}

func TestTUIQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		d := &dispatched{}
		_, cmd := update(t, newTUIModel(d.send), k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, d.cmds)
	}
}

func TestTUIMousePressInteracts(t *testing.T) {
	d := &dispatched{}
	m := newTUIModel(d.send)

	_, cmd := update(t, m, tea.MouseMsg{Action: tea.MouseActionMotion})
	assert.Nil(t, cmd)

	_, cmd = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, []command{cmdInteract}, d.cmds)
}

func TestTUICommandsKeepKeyOrder(t *testing.T) {
	d := &dispatched{}
	m := newTUIModel(d.send)

	m, _ = update(t, m, runeKey("t"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	_, _ = update(t, m, runeKey("a"))

	assert.Equal(t, []command{cmdTest, cmdToggle, cmdInteract, cmdToggle}, d.cmds)
}

func TestTUIHelpToggle(t *testing.T) {
	m := newTUIModel(func(command) {})
	m, _ = update(t, m, runeKey("h"))
	assert.True(t, m.help.ShowAll)
	m, _ = update(t, m, runeKey("?"))
	assert.False(t, m.help.ShowAll)
}

func TestTUIDisplayMessages(t *testing.T) {
	var msgs []tea.Msg
	d := tuiDisplay{send: func(msg tea.Msg) { msgs = append(msgs, msg) }}
	m := newTUIModel(func(command) {})

	r := clock.Reading{Hours: 13, Minutes: 5}
	d.SetHands(r.Hands())
	d.SetDigital(r.Digital())
	d.SetStatus(alarm.StatusRinging)
	d.SetAlarmVisual(true)
	d.SetToggle(alarm.ToggleEnable, false)
	require.Len(t, msgs, 5)

	for _, msg := range msgs {
		m, _ = update(t, m, msg)
	}

	assert.True(t, m.ticked)
	assert.Equal(t, r.Hands(), m.hands)
	assert.Equal(t, "01:05:00 PM", m.digital)
	assert.Equal(t, alarm.StatusRinging, m.status)
	assert.True(t, m.alarm)
	assert.False(t, m.enabled)
	assert.Equal(t, "enable alarm", m.keys.Toggle.Help().Desc)
}

func TestTUIView(t *testing.T) {
	m := newTUIModel(func(command) {})
	assert.Equal(t, "Loading...", m.View())

	r := clock.Reading{Hours: 9, Minutes: 30, Seconds: 15}
	m, _ = update(t, m, handsMsg(r.Hands()))
	m, _ = update(t, m, digitalMsg(r.Digital()))
	m, _ = update(t, m, statusMsg(alarm.StatusReady))

	view := m.View()
	assert.Contains(t, view, "09:30:15 AM")
	assert.Contains(t, view, alarm.StatusReady)
	assert.Contains(t, view, "alarm on")
	assert.Contains(t, view, "test alarm")
}

func TestRenderFaceHalfBlocks(t *testing.T) {
	pixels := face.Render(clock.Hands{}, face.DefaultSize)
	out := renderFace(pixels, false)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, (face.DefaultSize+1)/2)
	assert.Contains(t, out, "█")
	assert.Equal(t, "", renderFace(nil, true))
}
