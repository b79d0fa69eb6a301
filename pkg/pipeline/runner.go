package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gramod/pkg/errors"
	"github.com/matzehuels/gramod/pkg/observability"
	"github.com/matzehuels/gramod/pkg/tower"
)

// Runner executes reductions with logging and observability hooks.
//
// The Runner holds no per-request state; multiple goroutines can share one.
type Runner struct {
	Base   int
	Logger *log.Logger
}

// NewRunner creates a runner for towers of base.
// If base is 0, DefaultBase is used. If logger is nil, log.Default() is used.
func NewRunner(base int, logger *log.Logger) *Runner {
	if base == 0 {
		base = DefaultBase
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Base:   base,
		Logger: logger,
	}
}

// Compute reduces the tower modulo req.Modulus.
func (r *Runner) Compute(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateBase(r.Base); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Reducer()
	hooks.OnReduceStart(ctx, r.Base, req.Modulus)

	res := &Result{Base: r.Base, Modulus: req.Modulus}
	var trace tower.TraceFunc
	if req.Steps {
		trace = func(line string) { res.Trace = append(res.Trace, line) }
	}

	start := time.Now()
	red, err := tower.Run(r.Base, req.Modulus, trace)
	res.Duration = time.Since(start)
	if err != nil {
		hooks.OnReduceComplete(ctx, r.Base, req.Modulus, 0, res.Duration, err)
		return nil, err
	}
	hooks.OnReduceComplete(ctx, r.Base, req.Modulus, len(red.Levels), res.Duration, nil)

	res.Residue = red.Residue
	res.Exact = red.Exact
	res.Levels = red.Levels

	r.Logger.Debug("reduced tower",
		"base", r.Base,
		"modulus", req.Modulus,
		"residue", res.Residue,
		"levels", len(res.Levels),
		"exact", res.Exact,
		"duration", res.Duration)

	return res, nil
}

// SelfCheck runs the regression battery and logs its outcome.
func (r *Runner) SelfCheck() error {
	start := time.Now()
	if err := tower.SelfCheck(); err != nil {
		r.Logger.Error("self-check failed", "err", err)
		return err
	}
	r.Logger.Debug("self-check passed",
		"cases", len(tower.Known),
		"duration", time.Since(start).Round(time.Microsecond))
	return nil
}
