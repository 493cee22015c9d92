package peseltest

import (
	"testing"

	"github.com/hupe1980/peselgo"
)

func TestGenerator_Valid(t *testing.T) {
	gen := NewGenerator(42)
	for _, value := range gen.Values(1000) {
		if err := peselgo.Validate(value); err != nil {
			t.Fatalf("generated invalid number %d: %v", value, err)
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(7)
	b := NewGenerator(7)
	for i := range 100 {
		if av, bv := a.Uint64(), b.Uint64(); av != bv {
			t.Fatalf("sequences diverged at %d: %d != %d", i, av, bv)
		}
	}

	a.Reset()
	c := NewGenerator(7)
	for i := range 100 {
		if av, cv := a.Uint64(), c.Uint64(); av != cv {
			t.Fatalf("sequences diverged after Reset at %d: %d != %d", i, av, cv)
		}
	}

	if a.Seed() != 7 {
		t.Errorf("expected seed 7, got %d", a.Seed())
	}
}

func TestGenerator_CoversAllCenturies(t *testing.T) {
	gen := NewGenerator(1)

	seen := make(map[int]bool)
	for range 1000 {
		seen[gen.Decimal().Year()/100] = true
	}

	for _, century := range []int{18, 19, 20, 21, 22} {
		if !seen[century] {
			t.Errorf("no birth year in the %d00s generated", century)
		}
	}
}

func TestGenerator_Representations(t *testing.T) {
	gen := NewGenerator(3)

	d := gen.Decimal()
	if err := peselgo.Validate(d.Uint64()); err != nil {
		t.Fatalf("Decimal returned invalid number %d: %v", d.Uint64(), err)
	}

	b := gen.Binary()
	if err := peselgo.Validate(b.Uint64()); err != nil {
		t.Fatalf("Binary returned invalid number %d: %v", b.Uint64(), err)
	}
}
