// Package gen collects the factory functions that build qcheck.Arbitrary
// values: constants, weighted choices, permutations, and the escape
// hatches for hand-rolled generators.
package gen

import (
	"fmt"

	"github.com/jfcantinz/jqwik/qcheck"
)

// Of chooses uniformly among the given values and is exhaustive.
func Of[T any](values ...T) qcheck.Arbitrary[T] {
	if len(values) == 0 {
		panic("gen.Of requires at least one value")
	}
	vs := append([]T(nil), values...)
	g := func(source *qcheck.RandomSource) qcheck.Shrinkable[T] {
		return qcheck.Unshrinkable(vs[source.NextIntn(len(vs))])
	}
	return qcheck.WithExhaustive(qcheck.FromGen(qcheck.Gen[T](g)), qcheck.NewExhaustiveGenerator(vs))
}

// Samples cycles through values forever in insertion order,
// deterministically: it is not random even though it returns a generator.
// The k-th draw equals values[k % len(values)].
func Samples[T any](values ...T) qcheck.Arbitrary[T] {
	if len(values) == 0 {
		panic("gen.Samples requires at least one value")
	}
	vs := append([]T(nil), values...)
	return qcheck.FromGenSized(func(int) qcheck.Gen[T] {
		i := 0
		return func(*qcheck.RandomSource) qcheck.Shrinkable[T] {
			v := vs[i%len(vs)]
			i++
			return qcheck.Unshrinkable(v)
		}
	})
}

// Randoms generates fresh, mutually independent RandomSource instances,
// one per draw.
func Randoms() qcheck.Arbitrary[*qcheck.RandomSource] {
	return qcheck.FromGen(qcheck.Gen[*qcheck.RandomSource](func(source *qcheck.RandomSource) qcheck.Shrinkable[*qcheck.RandomSource] {
		return qcheck.Unshrinkable(source.Split())
	}))
}

// Constant always produces v, unshrinkable.
func Constant[T any](v T) qcheck.Arbitrary[T] {
	return qcheck.WithExhaustive(
		qcheck.FromGen(qcheck.Gen[T](func(*qcheck.RandomSource) qcheck.Shrinkable[T] {
			return qcheck.Unshrinkable(v)
		})),
		qcheck.NewExhaustiveGenerator([]T{v}),
	)
}

// Create is Constant with the value computed lazily, once per draw, from
// supplier — useful when v is a fresh mutable value that must not be
// shared across draws.
func Create[T any](supplier func() T) qcheck.Arbitrary[T] {
	return qcheck.FromGen(qcheck.Gen[T](func(*qcheck.RandomSource) qcheck.Shrinkable[T] {
		return qcheck.Unshrinkable(supplier())
	}))
}

// RandomValue is an escape hatch: build a value directly from a
// RandomSource, unshrinkable.
func RandomValue[T any](f func(*qcheck.RandomSource) T) qcheck.Arbitrary[T] {
	return qcheck.FromGen(qcheck.Gen[T](func(source *qcheck.RandomSource) qcheck.Shrinkable[T] {
		return qcheck.Unshrinkable(f(source))
	}))
}

// FromGenerator is an escape hatch for callers that want to supply their
// own Shrinkable, including a custom shrink tree.
func FromGenerator[T any](f func(*qcheck.RandomSource) qcheck.Shrinkable[T]) qcheck.Arbitrary[T] {
	return qcheck.FromGen(qcheck.Gen[T](f))
}

// OneOf chooses uniformly among the supplied arbitraries, then draws from
// the chosen one. Shrinking prefers earlier-listed arbitraries: on shrink,
// besides the chosen arbitrary's own shrinks, every arbitrary listed
// before it is offered as a same-source alternative draw.
func OneOf[T any](arbitraries ...qcheck.Arbitrary[T]) qcheck.Arbitrary[T] {
	if len(arbitraries) == 0 {
		panic("gen.OneOf requires at least one arbitrary")
	}
	return qcheck.FromGenSized(func(genSize int) qcheck.Gen[T] {
		gens := make([]qcheck.Gen[T], len(arbitraries))
		for i, a := range arbitraries {
			gens[i] = a.Generator(genSize)
		}
		return func(source *qcheck.RandomSource) qcheck.Shrinkable[T] {
			idx := source.NextIntn(len(gens))
			chosen := gens[idx](source)
			if idx == 0 {
				return chosen
			}
			earlier := gens[:idx]
			return qcheck.WithExtraShrinks(chosen, drawFromEach(earlier, source)...)
		}
	})
}

func drawFromEach[T any](gens []qcheck.Gen[T], source *qcheck.RandomSource) []qcheck.Shrinkable[T] {
	out := make([]qcheck.Shrinkable[T], len(gens))
	for i, g := range gens {
		out[i] = g(source)
	}
	return out
}

// Weighted pairs a non-negative integer weight with a value for Frequency.
type Weighted[T any] struct {
	Weight int
	Value  T
}

// W is shorthand for constructing a Weighted pair.
func W[T any](weight int, value T) Weighted[T] {
	return Weighted[T]{Weight: weight, Value: value}
}

// Frequency chooses among values with probability proportional to weight;
// weights must be non-negative and at least one must be positive.
func Frequency[T any](pairs ...Weighted[T]) qcheck.Arbitrary[T] {
	total := 0
	for _, p := range pairs {
		if p.Weight < 0 {
			panic(fmt.Sprintf("gen.Frequency: negative weight %d", p.Weight))
		}
		total += p.Weight
	}
	if total <= 0 {
		panic(qcheck.NewError(qcheck.KindNoPositiveFrequencies, "at least one weight must be > 0"))
	}
	vs := append([]Weighted[T](nil), pairs...)
	return qcheck.FromGen(qcheck.Gen[T](func(source *qcheck.RandomSource) qcheck.Shrinkable[T] {
		pick := source.NextIntn(total)
		for _, p := range vs {
			if pick < p.Weight {
				return qcheck.Unshrinkable(p.Value)
			}
			pick -= p.Weight
		}
		return qcheck.Unshrinkable(vs[len(vs)-1].Value)
	}))
}

// WeightedArbitrary pairs a non-negative integer weight with an arbitrary
// for FrequencyOf.
type WeightedArbitrary[T any] struct {
	Weight    int
	Arbitrary qcheck.Arbitrary[T]
}

// WA is shorthand for constructing a WeightedArbitrary pair.
func WA[T any](weight int, a qcheck.Arbitrary[T]) WeightedArbitrary[T] {
	return WeightedArbitrary[T]{Weight: weight, Arbitrary: a}
}

// FrequencyOf is Frequency choosing among arbitraries instead of bare
// values.
func FrequencyOf[T any](pairs ...WeightedArbitrary[T]) qcheck.Arbitrary[T] {
	total := 0
	for _, p := range pairs {
		if p.Weight < 0 {
			panic(fmt.Sprintf("gen.FrequencyOf: negative weight %d", p.Weight))
		}
		total += p.Weight
	}
	if total <= 0 {
		panic(qcheck.NewError(qcheck.KindNoPositiveFrequencies, "at least one weight must be > 0"))
	}
	vs := append([]WeightedArbitrary[T](nil), pairs...)
	return qcheck.FromGenSized(func(genSize int) qcheck.Gen[T] {
		gens := make([]qcheck.Gen[T], len(vs))
		for i, p := range vs {
			gens[i] = p.Arbitrary.Generator(genSize)
		}
		return func(source *qcheck.RandomSource) qcheck.Shrinkable[T] {
			pick := source.NextIntn(total)
			for i, p := range vs {
				if pick < p.Weight {
					return gens[i](source)
				}
				pick -= p.Weight
			}
			return gens[len(gens)-1](source)
		}
	})
}

// Lazy defers arbitrary construction to each call to Generator: any state
// captured inside the arbitrary supplier returns builds (round-robin
// counters, unique sets) restarts every time Generator is invoked. This is
// also the standard way to break a construction cycle in a Recursive
// definition.
func Lazy[T any](supplier func() qcheck.Arbitrary[T]) qcheck.Arbitrary[T] {
	return qcheck.FromGenSized(func(genSize int) qcheck.Gen[T] {
		return supplier().Generator(genSize)
	})
}

// Recursive applies step to base exactly depth times:
// step(step(...step(base)...)).
func Recursive[T any](base qcheck.Arbitrary[T], step func(qcheck.Arbitrary[T]) qcheck.Arbitrary[T], depth int) qcheck.Arbitrary[T] {
	current := base
	for i := 0; i < depth; i++ {
		current = step(current)
	}
	return current
}
