package container

import "github.com/jfcantinz/jqwik/qcheck"

// StreamOf has the identical value space to ListOf: list, set, stream,
// array and iterator arbitraries share the same construction, differing
// only in how the driver consumes the result. StreamOf exists as a
// separate name so call sites read naturally at that consumption site.
func StreamOf[T any](elem qcheck.Arbitrary[T], size SizeRange) qcheck.Arbitrary[[]T] {
	return ListOf(elem, size)
}

// ArrayOf is ListOf under another name; reflective component-type
// bookkeeping for array allocation is unnecessary here, since Go slices
// already carry their element type statically.
func ArrayOf[T any](elem qcheck.Arbitrary[T], size SizeRange) qcheck.Arbitrary[[]T] {
	return ListOf(elem, size)
}

// Iterator wraps a slice as a single-pass pull sequence.
type Iterator[T any] struct {
	values []T
	pos    int
}

// Next returns the next value and true, or the zero value and false once
// exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.pos >= len(it.values) {
		var zero T
		return zero, false
	}
	v := it.values[it.pos]
	it.pos++
	return v, true
}

// IteratorOf builds an Arbitrary[*Iterator[T]] over the same value space
// as ListOf.
func IteratorOf[T any](elem qcheck.Arbitrary[T], size SizeRange) qcheck.Arbitrary[*Iterator[T]] {
	return qcheck.Map(ListOf(elem, size), func(values []T) *Iterator[T] {
		return &Iterator[T]{values: values}
	})
}
