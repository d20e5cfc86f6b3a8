package numeric

import (
	"testing"

	"github.com/jfcantinz/jqwik/qcheck"
	"github.com/jfcantinz/jqwik/qcheck/shrinker"
)

func TestIntRangeStaysInBounds(t *testing.T) {
	arb := IntRange(-5, 10)
	g := arb.Generator(20)
	source := qcheck.NewRandomSource(1)
	for i := 0; i < 200; i++ {
		v := g(source).Value()
		if v < -5 || v > 10 {
			t.Fatalf("draw %d out of bounds", v)
		}
	}
}

func TestIntRangeIncludesEdgeCasesEarly(t *testing.T) {
	arb := IntRange(-5, 10)
	g := arb.Generator(20)
	source := qcheck.NewRandomSource(1)
	seen := map[int]bool{}
	for i := 0; i < 10; i++ {
		seen[g(source).Value()] = true
	}
	for _, edge := range []int{-5, 10, 0, 1, -1, 2, -2} {
		if !seen[edge] {
			t.Fatalf("edge case %d not seen among the first draws: %v", edge, seen)
		}
	}
}

func TestIntRangeIsExhaustiveForSmallRanges(t *testing.T) {
	arb := IntRange(0, 3)
	ex, ok := arb.Exhaustive()
	if !ok {
		t.Fatal("small ranges should expose an exhaustive form")
	}
	if got := ex.Values(); len(got) != 4 {
		t.Fatalf("Values() = %v, want 4 entries", got)
	}
}

func TestIntRangeShrinksToZeroWhenInRange(t *testing.T) {
	arb := IntRange(-100, 100)
	g := arb.Generator(20)
	source := qcheck.NewRandomSource(5)
	var s qcheck.Shrinkable[int]
	for i := 0; i < 50; i++ {
		s = g(source)
		if s.Value() != 0 {
			break
		}
	}
	result := shrinker.Shrink(s, func(v int) bool { return true }, nil)
	if result.Minimal != 0 {
		t.Fatalf("Minimal = %d, want 0", result.Minimal)
	}
}

func TestIntRangeShrinksTowardNearestBoundWhenZeroExcluded(t *testing.T) {
	arb := IntRange(5, 50)
	g := arb.Generator(20)
	source := qcheck.NewRandomSource(9)
	s := g(source)
	result := shrinker.Shrink(s, func(v int) bool { return true }, nil)
	if result.Minimal != 5 {
		t.Fatalf("Minimal = %d, want 5 (the bound nearest zero)", result.Minimal)
	}
}

func TestIntPanicsOnInvertedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when min > max")
		}
	}()
	IntRange(10, 0)
}
