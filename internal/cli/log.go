// Package cli implements the gramod command-line interface.
//
// The CLI is built with cobra. Run without a subcommand (or with compute) it
// reads N and prints G mod N together with the calculation process. The
// other commands run the regression battery (check), serve the HTML form
// (serve) and draw the reduction orbits (graph).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging; the level can
// also be set in the config file. Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gramod/pkg/config"
)

// newLogger creates a logger writing to w at level, with "15:04:05.00"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logLevel picks the level from the config, raised to debug by --verbose.
func logLevel(cfg config.Log, verbose bool) (log.Level, error) {
	if verbose {
		return log.DebugLevel, nil
	}
	return cfg.ParseLevel()
}

// progress logs how long an operation took once it is done.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Self-check passed (2ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
