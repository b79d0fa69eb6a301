package tower

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/gramod/pkg/errors"
)

// TraceFunc receives one line of human-readable progress per call.
type TraceFunc func(line string)

// Level summarizes one reduction level.
type Level struct {
	Modulus int  // length of the sequence the orbit was walked over
	Lead    int  // transient length of the orbit
	Period  int  // length of the sequence handed to the next level
	Looped  bool // the orbit returned to its starting index
}

// Reduction is the outcome of [Run].
type Reduction struct {
	Base    int
	Modulus int
	Residue int

	// Exact is set when Modulus is a power of Base and the residue was
	// known without walking any level.
	Exact bool

	Levels []Level
}

// Trajectory returns the sequence lengths after each level, starting with
// the modulus itself.
func (r *Reduction) Trajectory() []int {
	t := make([]int, 0, len(r.Levels)+1)
	t = append(t, r.Modulus)
	for _, l := range r.Levels {
		t = append(t, l.Period)
	}
	return t
}

// Reduce returns base^base^base^... mod modulus for a tower of unbounded
// height. When trace is non-nil it receives the equations of every level.
func Reduce(base, modulus int, trace TraceFunc) (int, error) {
	r, err := Run(base, modulus, trace)
	if err != nil {
		return 0, err
	}
	return r.Residue, nil
}

// Run is like [Reduce] but also reports the levels it went through.
func Run(base, modulus int, trace TraceFunc) (*Reduction, error) {
	if err := errors.ValidateBase(base); err != nil {
		return nil, err
	}
	if err := errors.ValidateModulus(modulus); err != nil {
		return nil, err
	}

	r := &Reduction{Base: base, Modulus: modulus}
	if IsPower(base, modulus) {
		// A tall enough tower of b is divisible by every power of b.
		r.Exact = true
		return r, nil
	}

	seq := Identity(modulus)
	prefix := strconv.Itoa(base) + "^"
	equation := fmt.Sprintf("n mod %d = ", modulus)
	for {
		equation = prefix + equation

		orbit := seq.Walk(base)
		next := orbit.Align()
		if trace != nil {
			if !orbit.Looped {
				trace(equation + formatValues(orbit.Values) + " => " + strconv.Itoa(orbit.Repeat))
				trace("Rotation is")
			}
			trace(fmt.Sprintf("%s%s (cycle length = %d)", equation, next, len(next)))
		}

		r.Levels = append(r.Levels, Level{
			Modulus: len(seq),
			Lead:    orbit.Lead,
			Period:  len(next),
			Looped:  orbit.Looped,
		})

		seq = next
		if len(seq) == 1 {
			r.Residue = seq[0]
			return r, nil
		}
	}
}

// IsPower reports whether m == base^k for some k >= 0.
func IsPower(base, m int) bool {
	if base < 2 || m < 1 {
		return false
	}
	p := 1
	for p < m {
		if p > m/base {
			return false
		}
		p *= base
	}
	return p == m
}
