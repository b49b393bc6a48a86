package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var theLog atomic.Pointer[slog.Logger]

func init() {
	theLog.Store(NewLogger(os.Stderr, slog.LevelInfo))
}

// NewLogger returns a text logger which omits timestamps and the INFO level
// label, matching the output of the jv command.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}

// Logger returns the package wide logger.
func Logger() *slog.Logger {
	return theLog.Load()
}

// SetLogger replaces the package wide logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	theLog.Store(l)
}

func Logf(msg string, args ...any) {
	Logger().Info(fmt.Sprintf(msg, args...))
}
