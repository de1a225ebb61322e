package logging

import (
	"io"
	"log/slog"

	"hashpass.local/internal/platform/config"
)

// New builds the process logger. w is stderr in production; stdout is reserved for the hash.
func New(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("service", cfg.ServiceName)
}
