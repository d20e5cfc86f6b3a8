package container

import (
	"testing"

	"github.com/jfcantinz/jqwik/qcheck"
	"github.com/jfcantinz/jqwik/qcheck/gen"
	"github.com/jfcantinz/jqwik/qcheck/shrinker"
)

func TestOptionalOfIsAbsentWithGivenProbability(t *testing.T) {
	arb := OptionalOf(gen.Constant(1), 1.0)
	g := arb.Generator(10)
	source := qcheck.NewRandomSource(1)
	for i := 0; i < 20; i++ {
		if g(source).Value().Present {
			t.Fatal("expected every draw to be absent with p=1")
		}
	}
}

func TestOptionalOfShrinksTowardAbsence(t *testing.T) {
	arb := OptionalOf(gen.Constant(42), 0.5)
	g := arb.Generator(10)
	source := qcheck.NewRandomSource(2)
	var s qcheck.Shrinkable[Optional[int]]
	for i := 0; i < 20; i++ {
		s = g(source)
		if s.Value().Present {
			break
		}
	}
	result := shrinker.Shrink(s, func(v Optional[int]) bool { return true }, nil)
	if result.Minimal.Present {
		t.Fatalf("Minimal = %+v, want an absent optional", result.Minimal)
	}
}
