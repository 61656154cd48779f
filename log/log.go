package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	diagLog   zerolog.Logger
	diagFile  *os.File
	alarmFile *os.File
	logMu     sync.Mutex
	logReady  bool
	pid       int
	dir       string
)

const (
	DiagnosticsFile = "diagnostics_log.txt"
	AlarmsFile      = "alarms_log.txt"
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: --log-path flag
	if flagPath != "" {
		return absolute(flagPath)
	}

	// Priority 2: CLOCKALARM_LOG_PATH environment variable
	if envPath := os.Getenv("CLOCKALARM_LOG_PATH"); envPath != "" {
		return absolute(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, path), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error

	diagFile, err = os.OpenFile(filepath.Join(dir, DiagnosticsFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	alarmFile, err = os.OpenFile(filepath.Join(dir, AlarmsFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		diagFile.Close()
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	if alarmFile != nil {
		alarmFile.Close()
		alarmFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

// AlarmStart records a ring in the diagnostics log and appends a line to the
// alarm history file.
func AlarmStart(at time.Time) {
	if !logReady {
		return
	}
	diagLog.Info().Str("at", at.Format("15:04:05")).Msg("alarm_start")

	logMu.Lock()
	defer logMu.Unlock()
	if alarmFile == nil {
		return
	}
	line := fmt.Sprintf("%s\t[%d]\tring\n", at.Format("2006-01-02 15:04:05"), pid)
	alarmFile.WriteString(line)
}

func AlarmStop() {
	if logReady {
		diagLog.Info().Msg("alarm_stop")
	}
}

// SoundEmit records which strategy produced a sound and whether it failed.
func SoundEmit(strategy string, err error) {
	if !logReady {
		return
	}
	if err != nil {
		diagLog.Warn().Str("strategy", strategy).Err(err).Msg("sound_emit_failed")
		return
	}
	diagLog.Debug().Str("strategy", strategy).Msg("sound_emit")
}

func SessionStart(mode, synth string, muted bool) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("mode", mode).
		Str("synth", synth).
		Bool("muted", muted).
		Msg("session_start")
}

func SessionEnd(rings int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("rings", rings).
		Msg("session_end")
}
