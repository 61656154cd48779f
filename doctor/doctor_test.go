package doctor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clockalarm/beep"
)

type fakeSynth struct {
	suspended bool
	resumeErr error
	playErr   error
	played    int
	closed    bool
}

func (f *fakeSynth) Name() string    { return "fake" }
func (f *fakeSynth) Suspended() bool { return f.suspended }
func (f *fakeSynth) Resume() error {
	if f.resumeErr != nil {
		return f.resumeErr
	}
	f.suspended = false
	return nil
}
func (f *fakeSynth) Play(samples []int16) error {
	if f.playErr != nil {
		return f.playErr
	}
	f.played += len(samples)
	return nil
}
func (f *fakeSynth) Close() { f.closed = true }

type fakeClip struct {
	err   error
	plays int
}

func (f *fakeClip) Play() error {
	f.plays++
	return f.err
}

func newProbe(synth *fakeSynth, synthErr error, clip *fakeClip, answers string) (Probe, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return Probe{
		OpenSynth: func() (beep.Synth, error) {
			if synthErr != nil {
				return nil, synthErr
			}
			return synth, nil
		},
		Clip:     clip,
		Tone:     beep.DefaultTone,
		Terminal: func() bool { return true },
		In:       strings.NewReader(answers),
		Out:      out,
	}, out
}

func TestRunAllPass(t *testing.T) {
	synth, clip := &fakeSynth{}, &fakeClip{}
	p, out := newProbe(synth, nil, clip, "y\nyes\n")

	require.Equal(t, 0, run(p))
	assert.Contains(t, out.String(), "All checks passed!")
	assert.Contains(t, out.String(), "backend: fake")
	assert.Positive(t, synth.played)
	assert.True(t, synth.closed)
	assert.Equal(t, 1, clip.plays)
}

func TestRunSynthUnavailable(t *testing.T) {
	clip := &fakeClip{}
	p, out := newProbe(nil, errors.New("no server"), clip, "y\n")

	require.Equal(t, 0, run(p))
	assert.Contains(t, out.String(), "FAIL: cannot open synthesizer: no server")
	assert.Contains(t, out.String(), "Only the fallback clip works")
}

func TestRunResumesSuspendedSynth(t *testing.T) {
	synth := &fakeSynth{suspended: true}
	p, _ := newProbe(synth, nil, &fakeClip{}, "y\ny\n")

	require.Equal(t, 0, run(p))
	assert.False(t, synth.suspended)
	assert.Positive(t, synth.played)
}

func TestRunNothingAudible(t *testing.T) {
	synth := &fakeSynth{playErr: errors.New("broken pipe")}
	clip := &fakeClip{err: errors.New("no audio player found")}
	p, out := newProbe(synth, nil, clip, "")

	assert.Equal(t, 1, run(p))
	assert.Contains(t, out.String(), "FAIL: playback error: broken pipe")
	assert.Contains(t, out.String(), "No sound strategy works")
}

func TestRunUserDeniesHearing(t *testing.T) {
	p, out := newProbe(&fakeSynth{}, nil, &fakeClip{}, "n\nno\n")

	assert.Equal(t, 1, run(p))
	assert.Equal(t, 2, strings.Count(out.String(), "FAIL: not confirmed"))
}

func TestRunHeadlessNote(t *testing.T) {
	p, out := newProbe(&fakeSynth{}, nil, &fakeClip{}, "y\ny\n")
	p.Terminal = func() bool { return false }

	run(p)
	assert.Contains(t, out.String(), "will run headless")
}
