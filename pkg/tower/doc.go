// Package tower computes the residue of an unbounded power tower modulo N.
//
// # Overview
//
// A power tower b^b^b^... of height h stops depending on h (modulo any fixed
// N) once h is larger than about log2(N). Graham's number is a tower of 3s so
// tall that it is far past that point, which makes G mod N a small, exact,
// computable number even though G itself can never be written down.
//
// [Reduce] finds that number without evaluating any tower. It starts from the
// identity sequence 0, 1, ..., N-1 and repeatedly replaces it with the orbit
// of n -> n*b (mod L) read through the current sequence, aligned so that its
// indices line up with the residue of the exponent. Each level keeps only the
// periodic part of exponentiation modulo the previous level, so the sequence
// shrinks until a single value is left: the residue.
//
// # Levels
//
// One level is computed by [Sequence.Walk], which returns an [Orbit]:
// the values visited before the walk revisits one of them, the position of
// that repeated value (the transient length) and whether the walk returned to
// its own starting point. [Orbit.Align] turns the orbit into the next
// sequence.
//
//	seq := tower.Identity(1000)
//	for len(seq) > 1 {
//	    seq = seq.Walk(3).Align()
//	}
//	fmt.Println(seq[0]) // 387
//
// # Tracing
//
// A [TraceFunc] receives a human-readable line for every level, for example:
//
//	3^n mod 108 = [1, 3, 9, 27, 81] => 27
//	Rotation is
//	3^n mod 108 = [81, 27] (cycle length = 2)
//	3^3^n mod 108 = [27] (cycle length = 1)
//
// Lines are handed to the caller; the package never writes to stdout.
//
// # Verification
//
// The alignment rule is validated against a fixed battery of residues,
// available as [Known] and checked by [SelfCheck].
package tower
