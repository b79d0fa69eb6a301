package tower

import (
	"github.com/matzehuels/gramod/pkg/errors"
)

// Case is a reduction with a known answer.
type Case struct {
	Base    int
	Modulus int
	Residue int
}

// Known lists reductions whose residues are fixed. Any change to the level
// alignment in [Orbit.Align] must keep all of them intact.
var Known = []Case{
	{Base: 3, Modulus: 1000, Residue: 387},
	{Base: 3, Modulus: 2018, Residue: 1557},
	{Base: 3, Modulus: 108, Residue: 27},
	{Base: 3, Modulus: 109, Residue: 1},
	{Base: 3, Modulus: 127, Residue: 119},
}

// SelfCheck reduces every case in [Known] and reports the first mismatch.
func SelfCheck() error {
	for _, c := range Known {
		got, err := Reduce(c.Base, c.Modulus, nil)
		if err != nil {
			return err
		}
		if got != c.Residue {
			return errors.New(errors.ErrCodeSelfCheck,
				"%d^^∞ mod %d = %d, want %d", c.Base, c.Modulus, got, c.Residue)
		}
	}
	return nil
}
