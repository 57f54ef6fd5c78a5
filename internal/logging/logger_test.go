package logging_test

import (
	"os"
	"strings"
	"testing"

	"github.com/nexpane/vtcore/internal/logging"
	"github.com/nexpane/vtcore/vtparser"
)

// The logging package exists so the parser core can report the conditions it
// never surfaces as errors: unknown finals, unknown OSC selectors, dropped
// DCS payloads, watchdog discards. These tests drive those call sites
// through a real vtparser.Ctx and assert the lines land in the log file.

func initTestLogger(t *testing.T, level logging.Level) string {
	t.Helper()
	if err := logging.Initialize(t.TempDir(), level); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	path := logging.GetLogPath()
	if path == "" {
		t.Fatalf("GetLogPath returned empty path")
	}
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	_ = logging.Close()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return string(data)
}

type stubTimer struct {
	fn func()
}

func (s *stubTimer) Arm(fn func()) { s.fn = fn }
func (s *stubTimer) Disarm()       { s.fn = nil }

func TestUnknownCSIFinalIsLogged(t *testing.T) {
	path := initTestLogger(t, logging.LevelWarn)
	c := vtparser.New(80, vtparser.Collaborators{})
	c.Feed([]byte("\x1b[1z")) // no terminal function uses final 'z'
	content := readLog(t, path)
	if !strings.Contains(content, "unknown CSI final") {
		t.Fatalf("expected an unknown-CSI-final warning, got: %q", content)
	}
}

func TestUnknownOSCSelectorIsLogged(t *testing.T) {
	path := initTestLogger(t, logging.LevelWarn)
	c := vtparser.New(80, vtparser.Collaborators{})
	c.Feed([]byte("\x1b]777;payload\x07"))
	content := readLog(t, path)
	if !strings.Contains(content, "unhandled OSC selector 777") {
		t.Fatalf("expected an unhandled-OSC warning, got: %q", content)
	}
}

func TestDroppedDCSPayloadIsLogged(t *testing.T) {
	path := initTestLogger(t, logging.LevelWarn)
	c := vtparser.New(80, vtparser.Collaborators{})
	c.Feed([]byte("\x1bP+zdata\x1b\\"))
	content := readLog(t, path)
	if !strings.Contains(content, "unknown DCS header") {
		t.Fatalf("expected an unknown-DCS-header warning, got: %q", content)
	}
	if !strings.Contains(content, "dropped unknown DCS payload") {
		t.Fatalf("expected a dropped-payload warning, got: %q", content)
	}
}

func TestWatchdogDiscardIsLogged(t *testing.T) {
	path := initTestLogger(t, logging.LevelWarn)
	timer := &stubTimer{}
	c := vtparser.New(80, vtparser.Collaborators{Timer: timer})
	c.Feed([]byte("\x1b]0;stuck-title"))
	if timer.fn == nil {
		t.Fatalf("expected the watchdog to be armed in osc_string")
	}
	timer.fn()
	content := readLog(t, path)
	if !strings.Contains(content, "watchdog expired in state osc_string") {
		t.Fatalf("expected a watchdog-discard warning, got: %q", content)
	}
}

func TestDisabledLoggerSuppressesParserWarnings(t *testing.T) {
	path := initTestLogger(t, logging.LevelWarn)
	logging.SetEnabled(false)
	defer logging.SetEnabled(true)
	c := vtparser.New(80, vtparser.Collaborators{})
	c.Feed([]byte("\x1b[1z"))
	content := readLog(t, path)
	if strings.Contains(content, "unknown CSI final") {
		t.Fatalf("expected no output while disabled, got: %q", content)
	}
}

func TestLevelFiltersParserWarnings(t *testing.T) {
	path := initTestLogger(t, logging.LevelError)
	c := vtparser.New(80, vtparser.Collaborators{})
	c.Feed([]byte("\x1b[1z")) // logged at Warn, below the configured level
	logging.Error("pane teardown failed: %s", "example")
	content := readLog(t, path)
	if strings.Contains(content, "unknown CSI final") {
		t.Fatalf("expected warn-level parser output filtered at error level, got: %q", content)
	}
	if !strings.Contains(content, "ERROR: pane teardown failed") {
		t.Fatalf("expected error-level line to pass the filter, got: %q", content)
	}
}
