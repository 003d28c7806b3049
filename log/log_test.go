package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func setupLog(t *testing.T, level zerolog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(&buf, level)
	t.Cleanup(Close)
	return &buf
}

func TestIconWritten(t *testing.T) {
	buf := setupLog(t, zerolog.InfoLevel)

	IconWritten("public/icons/icon16.png", 16, 321)

	line := buf.String()
	for _, want := range []string{"INF", "icon_written", "path=public/icons/icon16.png", "size=16", "bytes=321", "pid="} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %q, got: %q", want, line)
		}
	}
	// buffers are not terminals, so no escape codes
	if strings.Contains(line, "\x1b[") {
		t.Errorf("expected uncolored output, got: %q", line)
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	buf := setupLog(t, zerolog.InfoLevel)

	IconRendered(48, 4, 8)
	if buf.Len() != 0 {
		t.Errorf("debug event written at info level: %q", buf.String())
	}
}

func TestIconRenderedAtDebug(t *testing.T) {
	buf := setupLog(t, zerolog.DebugLevel)

	IconRendered(48, 4, 8)

	line := buf.String()
	for _, want := range []string{"DBG", "icon_rendered", "size=48", "padding=4", "band_height=8"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %q, got: %q", want, line)
		}
	}
}

func TestRunStartEnd(t *testing.T) {
	buf := setupLog(t, zerolog.InfoLevel)

	RunStart("public/icons", []int{16, 48, 128})
	RunEnd(3)

	out := buf.String()
	if n := strings.Count(out, "\n"); n != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", n, out)
	}
	for _, want := range []string{"run_start", "dir=public/icons", "run_end", "count=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got: %q", want, out)
		}
	}
}

func TestErrorf(t *testing.T) {
	buf := setupLog(t, zerolog.InfoLevel)

	Errorf("write %s: %v", "icon16.png", "disk full")

	line := buf.String()
	if !strings.Contains(line, "ERR") || !strings.Contains(line, "write icon16.png: disk full") {
		t.Errorf("unexpected error line: %q", line)
	}
}

func TestNoopBeforeInit(t *testing.T) {
	Close()
	// must not panic or write anywhere
	Errorf("ignored %d", 1)
	RunEnd(3)
	IconWritten("x", 1, 1)
}

func TestCloseStopsOutput(t *testing.T) {
	buf := setupLog(t, zerolog.InfoLevel)

	Close()
	Errorf("after close")
	if buf.Len() != 0 {
		t.Errorf("expected no output after Close, got: %q", buf.String())
	}
}

func TestCloseIdempotent(t *testing.T) {
	setupLog(t, zerolog.InfoLevel)
	Close()
	Close() // should not panic
}
