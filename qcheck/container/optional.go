package container

import "github.com/jfcantinz/jqwik/qcheck"

// Optional represents the presence or absence of a value for an element
// type that need not be nilable (e.g. int, a value struct): a presence
// flag alongside the value. Its shrink tree heads TOWARD absence — the
// opposite of qcheck.InjectNull, which shrinks away from its null value
// since there null is the corner case, not the target. Optional therefore
// gets its own shrink tree rather than composing qcheck.InjectNull.
type Optional[T any] struct {
	Present bool
	Value   T
}

// OptionalOf builds an Arbitrary[Optional[T]] that is absent with
// probability p.
func OptionalOf[T any](elem qcheck.Arbitrary[T], p float64) qcheck.Arbitrary[Optional[T]] {
	return qcheck.FromGenSized(func(genSize int) qcheck.Gen[Optional[T]] {
		elemGen := elem.Generator(genSize)
		return func(source *qcheck.RandomSource) qcheck.Shrinkable[Optional[T]] {
			if source.NextBool(p) {
				return qcheck.Unshrinkable(Optional[T]{Present: false})
			}
			return shrinkOptional(elemGen(source))
		}
	})
}

// DefaultNullProbability is the default absence probability a driver
// should fall back to when a caller does not pin one explicitly.
const DefaultNullProbability = 0.1

func shrinkOptional[T any](inner qcheck.Shrinkable[T]) qcheck.Shrinkable[Optional[T]] {
	present := Optional[T]{Present: true, Value: inner.Value()}
	innerCopy := inner
	return qcheck.NewShrinkable(present, func() []qcheck.Shrinkable[Optional[T]] {
		children := []qcheck.Shrinkable[Optional[T]]{
			qcheck.Unshrinkable(Optional[T]{Present: false}),
		}
		for _, c := range innerCopy.Shrinks() {
			children = append(children, shrinkOptional(c))
		}
		return children
	})
}
