package container

import (
	"testing"

	"github.com/jfcantinz/jqwik/qcheck"
	"github.com/jfcantinz/jqwik/qcheck/numeric"
	"github.com/jfcantinz/jqwik/qcheck/shrinker"
)

func TestSetOfProducesDistinctElements(t *testing.T) {
	arb := SetOf(numeric.IntRange(0, 1000), Sized(5, 5))
	g := arb.Generator(20)
	source := qcheck.NewRandomSource(1)
	for i := 0; i < 20; i++ {
		v := g(source).Value()
		seen := map[int]bool{}
		for _, x := range v {
			if seen[x] {
				t.Fatalf("set contains a duplicate: %v", v)
			}
			seen[x] = true
		}
	}
}

func TestSetOfShrinkNeverIntroducesDuplicate(t *testing.T) {
	arb := SetOf(numeric.IntRange(0, 20), Sized(3, 6))
	g := arb.Generator(20)
	source := qcheck.NewRandomSource(2)
	s := g(source)
	result := shrinker.Shrink(s, func(v []int) bool { return true }, nil)
	seen := map[int]bool{}
	for _, x := range result.Minimal {
		if seen[x] {
			t.Fatalf("shrunk set contains a duplicate: %v", result.Minimal)
		}
		seen[x] = true
	}
	if len(result.Minimal) != 3 {
		t.Fatalf("Minimal length = %d, want the declared minimum of 3", len(result.Minimal))
	}
}

func TestSetOfPanicsWhenSizeUnreachable(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic when the element space is smaller than the requested set size")
		}
		err, ok := r.(*qcheck.Error)
		if !ok || err.Kind != qcheck.KindSetSizeUnreachable {
			t.Fatalf("panic value = %v, want KindSetSizeUnreachable", r)
		}
	}()
	arb := SetOf(numeric.IntRange(0, 1), Sized(5, 5))
	arb.Generator(20)(qcheck.NewRandomSource(1))
}
