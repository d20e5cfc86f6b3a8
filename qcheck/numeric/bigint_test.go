package numeric

import (
	"math/big"
	"testing"

	"github.com/jfcantinz/jqwik/qcheck"
	"github.com/jfcantinz/jqwik/qcheck/shrinker"
)

func TestBigIntRangeStaysInBounds(t *testing.T) {
	min, max := big.NewInt(-1000), big.NewInt(1000)
	arb := BigIntRange(min, max)
	g := arb.Generator(20)
	source := qcheck.NewRandomSource(1)
	for i := 0; i < 100; i++ {
		v := g(source).Value()
		if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
			t.Fatalf("draw %v out of bounds", v)
		}
	}
}

func TestBigIntRangeShrinksToZero(t *testing.T) {
	min, max := big.NewInt(-1000), big.NewInt(1000)
	arb := BigIntRange(min, max)
	g := arb.Generator(20)
	source := qcheck.NewRandomSource(4)
	s := g(source)
	result := shrinker.Shrink(s, func(v *big.Int) bool { return true }, nil)
	if result.Minimal.Sign() != 0 {
		t.Fatalf("Minimal = %v, want 0", result.Minimal)
	}
}

func TestBigIntPanicsOnInvertedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when min > max")
		}
	}()
	BigIntRange(big.NewInt(10), big.NewInt(0))
}
