package cmd

import (
	"io"
	"log/slog"
	"time"
)

// newLogger returns a text logger on w at debug level, or a logger that
// drops everything when debug is off.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug || w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}))
}
