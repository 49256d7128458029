// Package cli implements the algokit command-line interface.
//
// The CLI reads flow networks from plain-text edge lists or TOML files,
// solves them with the push-relabel engine, and writes the result as a
// table, JSON, DOT, or a rendered SVG. It is built on cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - solve:  compute the maximum flow of a network file
//   - render: draw a network (solved or raw) as DOT or SVG
//
// # Logging
//
// All commands accept --verbose (-v) for debug-level logging. Loggers
// travel through context.Context so commands share one configuration.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w, filtered at level, with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion
// with the elapsed duration. Sequential use by one goroutine only.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress captures the current time as the operation start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is a private context-key type to avoid collisions.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the attached logger, or log.Default()
// when none was set.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
