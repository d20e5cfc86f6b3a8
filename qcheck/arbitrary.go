package qcheck

// Arbitrary is a declarative, immutable description of a value space. It
// is shared and sampled repeatedly; combinators never mutate the receiver,
// they return a new Arbitrary wrapping it. An Arbitrary always knows how
// to build a RandomGenerator; it may additionally know how to enumerate
// its space exhaustively.
type Arbitrary[T any] interface {
	// Generator builds a Gen[T] biased by genSize, a hint (typically the
	// configured number of tries) that influences the practical
	// magnitude/length of generated values without changing their
	// validity.
	Generator(genSize int) Gen[T]
	// Exhaustive returns a finite enumeration of this arbitrary's space,
	// if one exists.
	Exhaustive() (ExhaustiveGenerator[T], bool)
}

// arbitraryFunc is the common concrete Arbitrary implementation: a
// Generator closure plus an optional Exhaustive closure. Every combinator
// in this module builds one of these rather than a bespoke type per
// combinator.
type arbitraryFunc[T any] struct {
	generator  func(genSize int) Gen[T]
	exhaustive func() (ExhaustiveGenerator[T], bool)
}

func (a *arbitraryFunc[T]) Generator(genSize int) Gen[T] {
	return a.generator(genSize)
}

func (a *arbitraryFunc[T]) Exhaustive() (ExhaustiveGenerator[T], bool) {
	if a.exhaustive == nil {
		return ExhaustiveGenerator[T]{}, false
	}
	return a.exhaustive()
}

// FromGen builds an Arbitrary[T] with no exhaustive form from a fixed Gen,
// ignoring genSize. Most low-level combinators build on this.
func FromGen[T any](g Gen[T]) Arbitrary[T] {
	return &arbitraryFunc[T]{generator: func(int) Gen[T] { return g }}
}

// FromGenSized builds an Arbitrary[T] whose Gen depends on genSize.
func FromGenSized[T any](f func(genSize int) Gen[T]) Arbitrary[T] {
	return &arbitraryFunc[T]{generator: f}
}

// WithExhaustive attaches an exhaustive enumeration to an otherwise
// random-only arbitrary.
func WithExhaustive[T any](a Arbitrary[T], exhaustive ExhaustiveGenerator[T]) Arbitrary[T] {
	return &arbitraryFunc[T]{
		generator:  a.Generator,
		exhaustive: func() (ExhaustiveGenerator[T], bool) { return exhaustive, true },
	}
}

// Map transforms every value (and shrink candidate) an arbitrary produces.
// Exhaustive enumeration, if present, is preserved (mapping does not
// change cardinality).
func Map[T, U any](a Arbitrary[T], f func(T) U) Arbitrary[U] {
	return &arbitraryFunc[U]{
		generator: func(genSize int) Gen[U] {
			return MapGen(a.Generator(genSize), f)
		},
		exhaustive: func() (ExhaustiveGenerator[U], bool) {
			base, ok := a.Exhaustive()
			if !ok {
				return ExhaustiveGenerator[U]{}, false
			}
			return MapExhaustive(base, f), true
		},
	}
}

// Filter restricts an arbitrary to values matching pred. Exhaustive
// enumeration, if present, is preserved but its maxCount becomes an upper
// bound rather than an exact count, since filtering only ever shrinks the
// enumerated space.
func Filter[T any](a Arbitrary[T], pred func(T) bool) Arbitrary[T] {
	return &arbitraryFunc[T]{
		generator: func(genSize int) Gen[T] {
			return a.Generator(genSize).Filter(pred)
		},
		exhaustive: func() (ExhaustiveGenerator[T], bool) {
			base, ok := a.Exhaustive()
			if !ok {
				return ExhaustiveGenerator[T]{}, false
			}
			return FilterExhaustive(base, pred), true
		},
	}
}

// FlatMap draws a T from a, then builds and draws from f(T). The
// exhaustive form, if both a and every f(t) are exhaustive, would be the
// outer-major cartesian product; since f's exhaustive-ness can only be
// known per drawn value, FlatMap conservatively does not attempt to
// expose one — combinators that need an exhaustive flatMap (none in this
// module's own combinator set) should build ExhaustiveGenerator directly.
func FlatMap[T, U any](a Arbitrary[T], f func(T) Arbitrary[U], genSizeHint int) Arbitrary[U] {
	return FromGenSized(func(genSize int) Gen[U] {
		return FlatMapGen(a.Generator(genSize), func(t T) Gen[U] {
			return f(t).Generator(genSizeHint)
		})
	})
}

// UniqueArb wraps a comparable-valued arbitrary so repeated draws from one
// materialised Gen never repeat a value.
func UniqueArb[T comparable](a Arbitrary[T]) Arbitrary[T] {
	return FromGenSized(func(genSize int) Gen[T] {
		return Unique(a.Generator(genSize))
	})
}

// WithSamplesArb makes the first draws of a materialised Gen return
// samples, in order, before delegating to a.
func WithSamplesArb[T any](a Arbitrary[T], samples ...T) Arbitrary[T] {
	return FromGenSized(func(genSize int) Gen[T] {
		return WithSamples(a.Generator(genSize), samples...)
	})
}

// FixGenSize freezes the genSize hint an arbitrary sees, regardless of
// what the driver passes in — useful for nested arbitraries that should
// not scale with an outer container's size.
func FixGenSize[T any](a Arbitrary[T], genSize int) Arbitrary[T] {
	return FromGenSized(func(int) Gen[T] {
		return a.Generator(genSize)
	})
}
