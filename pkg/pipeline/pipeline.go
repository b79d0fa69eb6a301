// Package pipeline runs tower reductions for the gramod frontends.
//
// The console and form frontends both hand a modulus to a [Runner] and print
// what comes back. Keeping this step in one place ensures both frontends
// validate, log and instrument reductions the same way.
//
// # Usage
//
//	runner := pipeline.NewRunner(3, logger)
//	res, err := runner.Compute(ctx, pipeline.Request{Modulus: 1000, Steps: true})
//	if err != nil {
//	    return err
//	}
//	for _, line := range res.Trace {
//	    fmt.Println(line)
//	}
//	fmt.Printf("G mod %d = %d\n", res.Modulus, res.Residue)
package pipeline

import (
	"time"

	"github.com/matzehuels/gramod/pkg/errors"
	"github.com/matzehuels/gramod/pkg/tower"
)

// DefaultBase is used when a Runner is created with base 0.
const DefaultBase = 3

// Request describes one reduction.
type Request struct {
	// Modulus is N in G mod N. It must be larger than 1.
	Modulus int

	// Steps collects the trace of every level into Result.Trace.
	Steps bool
}

// Validate checks the request.
func (r Request) Validate() error {
	if r.Modulus <= 1 {
		return errors.New(errors.ErrCodeInvalidModulus, "N should be larger than 1, got %d", r.Modulus)
	}
	return nil
}

// Result is the outcome of a reduction.
type Result struct {
	Base     int
	Modulus  int
	Residue  int
	Exact    bool
	Levels   []tower.Level
	Trace    []string
	Duration time.Duration
}
