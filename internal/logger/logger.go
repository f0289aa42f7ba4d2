package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	current  atomic.Pointer[zerolog.Logger]
	fallback sync.Once
	out      io.Writer = os.Stdout
)

// Options controls Init. The zero value gives JSON output at info level.
type Options struct {
	Level  string // debug|info|warn|error
	Pretty bool   // console writer instead of JSON
}

// Init configures the global logger.
func Init(opts Options) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	w := out
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	lg := zerolog.New(w).With().Timestamp().Str("service", "finmetrics").Logger().Level(parseLevel(opts.Level))
	current.Store(&lg)
}

// SetOutput redirects future loggers built by Init. Used by tests and the CLI,
// which keeps stdout for command output.
func SetOutput(w io.Writer) {
	out = w
}

// L returns the global logger. Call Init() once on startup; until then L
// falls back to Init's defaults. Safe for concurrent use.
func L() *zerolog.Logger {
	if lg := current.Load(); lg != nil {
		return lg
	}
	fallback.Do(func() {
		if current.Load() == nil {
			Init(Options{})
		}
	})
	return current.Load()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
