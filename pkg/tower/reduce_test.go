package tower

import (
	"math/bits"
	"os"
	"slices"
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gramod/pkg/errors"
)

func TestReduceKnown(t *testing.T) {
	for _, c := range Known {
		got, err := Reduce(c.Base, c.Modulus, nil)
		if err != nil {
			t.Fatalf("Reduce(%d, %d) error: %v", c.Base, c.Modulus, err)
		}
		if got != c.Residue {
			t.Errorf("Reduce(%d, %d) = %d, want %d", c.Base, c.Modulus, got, c.Residue)
		}
	}
}

func TestSelfCheck(t *testing.T) {
	if err := SelfCheck(); err != nil {
		t.Fatalf("SelfCheck() = %v", err)
	}
}

type residueFixture struct {
	Cases []struct {
		Base    int `yaml:"base"`
		Modulus int `yaml:"modulus"`
		Residue int `yaml:"residue"`
	} `yaml:"cases"`
}

func TestReduceFixtures(t *testing.T) {
	data, err := os.ReadFile("testdata/residues.yaml")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var fx residueFixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	if len(fx.Cases) == 0 {
		t.Fatal("fixture has no cases")
	}

	for _, c := range fx.Cases {
		got, err := Reduce(c.Base, c.Modulus, nil)
		if err != nil {
			t.Errorf("Reduce(%d, %d) error: %v", c.Base, c.Modulus, err)
			continue
		}
		if got != c.Residue {
			t.Errorf("Reduce(%d, %d) = %d, want %d", c.Base, c.Modulus, got, c.Residue)
		}
	}
}

func TestReduceInRange(t *testing.T) {
	for n := 2; n <= 3000; n++ {
		got, err := Reduce(3, n, nil)
		if err != nil {
			t.Fatalf("Reduce(3, %d) error: %v", n, err)
		}
		if got < 0 || got >= n {
			t.Fatalf("Reduce(3, %d) = %d, out of range", n, got)
		}
	}
}

func TestReducePowersOfBase(t *testing.T) {
	for _, base := range []int{2, 3, 5, 7} {
		m := 1
		for k := 1; k <= 10; k++ {
			m *= base
			r, err := Run(base, m, nil)
			if err != nil {
				t.Fatalf("Run(%d, %d) error: %v", base, m, err)
			}
			if r.Residue != 0 {
				t.Errorf("Run(%d, %d).Residue = %d, want 0", base, m, r.Residue)
			}
			if !r.Exact {
				t.Errorf("Run(%d, %d).Exact = false", base, m)
			}
		}
	}
}

func TestReduceModulusOne(t *testing.T) {
	got, err := Reduce(3, 1, nil)
	if err != nil {
		t.Fatalf("Reduce(3, 1) error: %v", err)
	}
	if got != 0 {
		t.Errorf("Reduce(3, 1) = %d, want 0", got)
	}
}

func TestReduceInvalid(t *testing.T) {
	tests := []struct {
		name    string
		base    int
		modulus int
		code    errors.Code
	}{
		{"base one", 1, 10, errors.ErrCodeInvalidBase},
		{"base zero", 0, 10, errors.ErrCodeInvalidBase},
		{"modulus zero", 3, 0, errors.ErrCodeInvalidModulus},
		{"negative modulus", 3, -7, errors.ErrCodeInvalidModulus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reduce(tt.base, tt.modulus, nil)
			if !errors.Is(err, tt.code) {
				t.Errorf("Reduce(%d, %d) error = %v, want code %s", tt.base, tt.modulus, err, tt.code)
			}
		})
	}
}

func TestTrajectory(t *testing.T) {
	for _, base := range []int{2, 3, 5, 10} {
		for n := 2; n <= 2000; n++ {
			r, err := Run(base, n, nil)
			if err != nil {
				t.Fatalf("Run(%d, %d) error: %v", base, n, err)
			}
			if r.Exact {
				continue
			}
			traj := r.Trajectory()
			for i := 1; i < len(traj); i++ {
				if traj[i] > traj[i-1] {
					t.Fatalf("Run(%d, %d) trajectory increases: %v", base, n, traj)
				}
			}
			if last := traj[len(traj)-1]; last != 1 {
				t.Fatalf("Run(%d, %d) trajectory ends at %d", base, n, last)
			}
			if limit := 2 * bits.Len(uint(n)); len(r.Levels) > limit {
				t.Fatalf("Run(%d, %d) took %d levels, limit %d", base, n, len(r.Levels), limit)
			}
		}
	}
}

func TestRunLevels(t *testing.T) {
	r, err := Run(3, 127, nil)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	want := []Level{
		{Modulus: 127, Lead: 0, Period: 126, Looped: true},
		{Modulus: 126, Lead: 2, Period: 6, Looped: false},
		{Modulus: 6, Lead: 1, Period: 1, Looped: false},
	}
	if !slices.Equal(r.Levels, want) {
		t.Errorf("Levels = %+v, want %+v", r.Levels, want)
	}
	if !slices.Equal(r.Trajectory(), []int{127, 126, 6, 1}) {
		t.Errorf("Trajectory() = %v", r.Trajectory())
	}
}

func TestIsPower(t *testing.T) {
	tests := []struct {
		base, m int
		want    bool
	}{
		{3, 1, true},
		{3, 3, true},
		{3, 243, true},
		{3, 6561, true},
		{3, 6560, false},
		{3, 108, false},
		{2, 1 << 40, true},
		{2, (1 << 40) + 2, false},
		{10, 1000, true},
		{10, 999, false},
		{1, 1, false},
		{3, 0, false},
	}
	for _, tt := range tests {
		if got := IsPower(tt.base, tt.m); got != tt.want {
			t.Errorf("IsPower(%d, %d) = %v, want %v", tt.base, tt.m, got, tt.want)
		}
	}
}

func collectTrace(t *testing.T, base, modulus int) []byte {
	t.Helper()
	var out []byte
	_, err := Reduce(base, modulus, func(line string) {
		out = append(out, line...)
		out = append(out, '\n')
	})
	if err != nil {
		t.Fatalf("Reduce(%d, %d) error: %v", base, modulus, err)
	}
	return out
}

func TestTraceGolden(t *testing.T) {
	g := goldie.New(t)
	for _, n := range []int{10, 108, 127} {
		g.Assert(t, "g"+strconv.Itoa(n), collectTrace(t, 3, n))
	}
}

func TestTraceDeterministic(t *testing.T) {
	a := collectTrace(t, 3, 2018)
	b := collectTrace(t, 3, 2018)
	if string(a) != string(b) {
		t.Error("trace should be identical across calls")
	}
}

func TestTraceExactIsSilent(t *testing.T) {
	if out := collectTrace(t, 3, 81); len(out) != 0 {
		t.Errorf("power of base should not trace, got %q", out)
	}
}
