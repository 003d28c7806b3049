package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	diagLog  zerolog.Logger
	logMu    sync.Mutex
	logReady bool
	pid      int
)

// Init routes diagnostics at or above level to w. Colors are only used when w
// is a terminal.
func Init(w io.Writer, level zerolog.Level) {
	logMu.Lock()
	defer logMu.Unlock()

	pid = os.Getpid()

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    !isTerminal(w),
	}
	diagLog = zerolog.New(consoleWriter).Level(level).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	diagLog = zerolog.Nop()
	logReady = false
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func RunStart(dir string, sizes []int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("dir", dir).
		Ints("sizes", sizes).
		Msg("run_start")
}

func RunEnd(count int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("count", count).
		Msg("run_end")
}

func IconRendered(size, padding, bandHeight int) {
	if !logReady {
		return
	}
	diagLog.Debug().
		Int("size", size).
		Int("padding", padding).
		Int("band_height", bandHeight).
		Msg("icon_rendered")
}

func IconWritten(path string, size, bytes int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("path", path).
		Int("size", size).
		Int("bytes", bytes).
		Msg("icon_written")
}
