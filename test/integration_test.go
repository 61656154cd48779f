//go:build integration

package test_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var testBinary string

func TestMain(m *testing.M) {
	testBinary = os.Getenv("CLOCKALARM_TEST_BIN")
	if testBinary == "" {
		fmt.Fprintln(os.Stderr, "CLOCKALARM_TEST_BIN not set; build the binary and point the variable at it")
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func cmds(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

func runClock(t *testing.T, stdin string, args ...string) (logDir, stdout string) {
	t.Helper()
	logDir = t.TempDir()
	cmdArgs := append([]string{"--log-path", logDir, "--config", filepath.Join(logDir, "none.yaml")}, args...)

	cmd := exec.Command(testBinary, cmdArgs...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = os.Environ()

	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("clockalarm exited with error: %v\noutput: %s", err, out)
	}
	return logDir, string(out)
}

func readLog(t *testing.T, logDir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("failed to read %s: %v", filename, err)
	}
	return string(data)
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in:\n%s", needle, haystack)
	}
}

func TestVersion(t *testing.T) {
	out, err := exec.Command(testBinary, "version").CombinedOutput()
	if err != nil {
		t.Fatalf("version failed: %v\n%s", err, out)
	}
	requireContains(t, string(out), "clockalarm ")
}

func TestMissingExplicitConfigFails(t *testing.T) {
	// --config pointing at a file that does not exist is an error; the
	// default path is optional.
	cmd := exec.Command(testBinary, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	if err := cmd.Run(); err == nil {
		t.Fatal("expected non-zero exit for missing --config file")
	}
}

func TestHeadlessStartsReady(t *testing.T) {
	logDir, out := runClock(t, cmds("SLEEP 1200", "QUIT"), "--headless", "--mute")

	requireContains(t, out, "STATUS 5-Minute Interval Alarm: Ready")
	requireContains(t, out, "TOGGLE Disable Alarm enabled=true")
	requireContains(t, out, "TICK ")

	diag := readLog(t, logDir, "diagnostics_log.txt")
	requireContains(t, diag, "session_start")
	requireContains(t, diag, "mode=headless")
	requireContains(t, diag, "session_end")
}

func TestHeadlessTestTrigger(t *testing.T) {
	logDir, out := runClock(t, cmds("TEST", "SLEEP 2500", "QUIT"), "--headless", "--mute")

	requireContains(t, out, "STATUS Testing alarm sound...")
	requireContains(t, out, "VISUAL on")
	requireContains(t, out, "VISUAL off")
	requireContains(t, readLog(t, logDir, "diagnostics_log.txt"), "alarm_test")
}

func TestHeadlessToggle(t *testing.T) {
	logDir, out := runClock(t, cmds("TOGGLE", "SLEEP 100", "TOGGLE", "SLEEP 100", "QUIT"), "--headless", "--mute")

	requireContains(t, out, "STATUS 5-Minute Interval Alarm: Disabled")
	requireContains(t, out, "TOGGLE Enable Alarm enabled=false")
	requireContains(t, out, "TOGGLE Disable Alarm enabled=true")

	diag := readLog(t, logDir, "diagnostics_log.txt")
	requireContains(t, diag, "alarm_disabled")
	requireContains(t, diag, "alarm_enabled")
}

func TestHeadlessUnknownCommand(t *testing.T) {
	_, out := runClock(t, cmds("BOGUS", "QUIT"), "--headless", "--mute")
	requireContains(t, out, `ERROR unknown command "BOGUS"`)
}

func TestHeadlessEOFQuits(t *testing.T) {
	logDir, _ := runClock(t, "", "--headless", "--mute")
	requireContains(t, readLog(t, logDir, "diagnostics_log.txt"), "session_end")
}
