package beep

import (
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"sync"

	"clockalarm/log"
)

//go:embed assets/alarm.wav
var clipWAV []byte

// ClipPlayer plays the embedded clip through an external player. The clip is
// written to a temp file on first use.
type ClipPlayer struct {
	volume   float64
	goos     string
	lookPath func(string) (string, error)
	start    func(name string, args ...string) (wait func() error, err error)

	once    sync.Once
	path    string
	pathErr error
}

func NewClipPlayer(volume float64) *ClipPlayer {
	return &ClipPlayer{
		volume:   volume,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    startCommand,
	}
}

func startCommand(name string, args ...string) (func() error, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Wait, nil
}

func (p *ClipPlayer) file() (string, error) {
	p.once.Do(func() {
		f, err := os.CreateTemp("", "clockalarm-*.wav")
		if err != nil {
			p.pathErr = fmt.Errorf("clip temp file: %w", err)
			return
		}
		defer f.Close()
		if _, err := f.Write(clipWAV); err != nil {
			os.Remove(f.Name())
			p.pathErr = fmt.Errorf("clip write: %w", err)
			return
		}
		p.path = f.Name()
	})
	return p.path, p.pathErr
}

// Play starts the first player found on PATH. Errors after start are logged
// when the player exits.
func (p *ClipPlayer) Play() error {
	path, err := p.file()
	if err != nil {
		return err
	}
	for _, argv := range clipCommands(p.goos, path, p.volume) {
		bin, err := p.lookPath(argv[0])
		if err != nil {
			continue
		}
		wait, err := p.start(bin, argv[1:]...)
		if err != nil {
			return fmt.Errorf("start %s: %w", argv[0], err)
		}
		go func(name string) {
			if err := wait(); err != nil {
				log.SoundEmit("clip", fmt.Errorf("%s: %w", name, err))
			}
		}(argv[0])
		return nil
	}
	return errNoPlayer
}

func (p *ClipPlayer) Close() {
	if p.path != "" {
		os.Remove(p.path)
	}
}

// clipCommands lists candidate players in preference order.
func clipCommands(goos, path string, volume float64) [][]string {
	switch goos {
	case "darwin":
		return [][]string{
			{"afplay", "-v", strconv.FormatFloat(volume, 'f', 2, 64), path},
		}
	case "windows":
		// SoundPlayer has no volume control.
		script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", path)
		return [][]string{
			{"powershell", "-NoProfile", "-NonInteractive", "-Command", script},
		}
	default:
		return [][]string{
			{"paplay", "--volume=" + strconv.Itoa(int(volume*65536)), path},
			{"pw-play", "--volume=" + strconv.FormatFloat(volume, 'f', 2, 64), path},
			{"aplay", "-q", path},
		}
	}
}
