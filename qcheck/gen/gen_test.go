package gen

import (
	"testing"

	"github.com/jfcantinz/jqwik/qcheck"
)

func TestOfChoosesOnlyDeclaredValues(t *testing.T) {
	arb := Of("a", "b", "c")
	g := arb.Generator(10)
	source := qcheck.NewRandomSource(1)
	allowed := map[string]bool{"a": true, "b": true, "c": true}
	for i := 0; i < 20; i++ {
		v := g(source).Value()
		if !allowed[v] {
			t.Fatalf("Of produced an undeclared value %q", v)
		}
	}
}

func TestOfIsExhaustive(t *testing.T) {
	arb := Of(1, 2, 3)
	ex, ok := arb.Exhaustive()
	if !ok {
		t.Fatal("Of should expose an exhaustive form")
	}
	if got := ex.Values(); len(got) != 3 {
		t.Fatalf("Values() = %v, want 3 entries", got)
	}
}

func TestSamplesCyclesDeterministically(t *testing.T) {
	arb := Samples(1, 2, 3)
	g := arb.Generator(10)
	source := qcheck.NewRandomSource(1)
	want := []int{1, 2, 3, 1, 2}
	for i, w := range want {
		if got := g(source).Value(); got != w {
			t.Fatalf("draw %d = %d, want %d", i, got, w)
		}
	}
}

func TestConstantAlwaysReturnsSameValue(t *testing.T) {
	arb := Constant(7)
	g := arb.Generator(10)
	source := qcheck.NewRandomSource(1)
	for i := 0; i < 5; i++ {
		if got := g(source).Value(); got != 7 {
			t.Fatalf("draw %d = %d, want 7", i, got)
		}
	}
}

func TestOneOfDrawsFromEveryBranch(t *testing.T) {
	arb := OneOf(Constant(1), Constant(2), Constant(3))
	g := arb.Generator(10)
	source := qcheck.NewRandomSource(2)
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		seen[g(source).Value()] = true
	}
	if len(seen) != 3 {
		t.Fatalf("seen %v, want all three branches to appear", seen)
	}
}

func TestFrequencyRespectsZeroWeightBranches(t *testing.T) {
	arb := Frequency(W(1, "rare"), W(0, "never"))
	g := arb.Generator(10)
	source := qcheck.NewRandomSource(3)
	for i := 0; i < 50; i++ {
		if got := g(source).Value(); got != "rare" {
			t.Fatalf("draw %d = %q, want only \"rare\" (zero-weight branch chosen)", i, got)
		}
	}
}

func TestFrequencyPanicsWithoutPositiveWeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when no weight is positive")
		}
	}()
	Frequency(W(0, "a"), W(0, "b"))
}

func TestRecursiveAppliesStepExactlyDepthTimes(t *testing.T) {
	calls := 0
	base := Constant(0)
	step := func(a qcheck.Arbitrary[int]) qcheck.Arbitrary[int] {
		calls++
		return a
	}
	Recursive(base, step, 3)
	if calls != 3 {
		t.Fatalf("step called %d times, want 3", calls)
	}
}

func TestLazyRebuildsOnEveryGeneratorCall(t *testing.T) {
	builds := 0
	arb := Lazy(func() qcheck.Arbitrary[int] {
		builds++
		return Constant(builds)
	})
	arb.Generator(10)
	arb.Generator(10)
	if builds != 2 {
		t.Fatalf("supplier invoked %d times, want 2", builds)
	}
}
