package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a charmbracelet logger for w. It doubles as the slog
// handler behind logger.L, so library logs share its formatting.
func newLogger(w io.Writer, level slog.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.Level(level),
	})
}

// progress logs the elapsed time of one operation.
type progress struct {
	logger *slog.Logger
	start  time.Time
}

func newProgress(l *slog.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string, args ...any) {
	p.logger.Info(msg, append(args, "elapsed", time.Since(p.start).Round(time.Millisecond))...)
}
