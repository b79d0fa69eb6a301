package tower

import (
	"strconv"
	"strings"
)

// Sequence holds, for every index n, the value of the tower built so far
// with an exponent congruent to n modulo len(Sequence).
//
// Sequences are never modified after construction; every level produces a
// fresh one.
type Sequence []int

// Identity returns the sequence 0, 1, ..., m-1.
func Identity(m int) Sequence {
	s := make(Sequence, m)
	for i := range s {
		s[i] = i
	}
	return s
}

// Orbit is the result of walking one level.
type Orbit struct {
	// Values holds s[base^k mod L] for k = 0, 1, ... up to, but excluding,
	// the first value that was already visited.
	Values []int

	// Repeat is the value that closed the walk.
	Repeat int

	// Lead is the index of Repeat within Values, i.e. the length of the
	// transient part of the walk.
	Lead int

	// Looped reports whether the walk came back to its own starting index.
	Looped bool
}

// Period returns the number of values in the periodic part of the orbit.
func (o Orbit) Period() int {
	return len(o.Values) - o.Lead
}

// Walk follows n -> n*base mod L from n = 1, appending s[n] until the next
// value is one that was already appended. The sequence must not be empty.
func (s Sequence) Walk(base int) Orbit {
	l := len(s)
	start := 1 % l
	seen := make(map[int]int)
	var values []int

	n := start
	for {
		seen[s[n]] = len(values)
		values = append(values, s[n])
		n = (n * base) % l
		if i, ok := seen[s[n]]; ok {
			return Orbit{
				Values: values,
				Repeat: s[n],
				Lead:   i,
				Looped: n == start,
			}
		}
	}
}

// Align returns the next level's sequence.
//
// A walk that returned to its start is already aligned. Otherwise the
// transient prefix is dropped and the cycle is rotated so that the value
// reached after k steps sits at index k mod Period. When the transient is
// longer than the cycle it is first cut down to less than one period.
func (o Orbit) Align() Sequence {
	if o.Looped {
		return append(Sequence(nil), o.Values...)
	}

	values := o.Values
	i, le := o.Lead, len(o.Values)
	if i > le-i {
		cut := i - le%(le-i)
		values = values[cut:]
		i -= cut
		le = len(values)
	}

	next := make(Sequence, 0, le-i)
	next = append(next, values[le-i:]...)
	next = append(next, values[i:le-i]...)
	return next
}

// String formats the sequence as a bracketed, comma-separated list.
func (s Sequence) String() string {
	return formatValues(s)
}

func formatValues(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
