// Package container implements collection arbitraries: lists, sets,
// streams, arrays and optionals over an element arbitrary, bounded by a
// declared size range, with an empty-then-remove-one-then-shrink-elements
// shrink strategy.
package container

// SizeRange bounds a container's length, 0 <= Min <= Max.
type SizeRange struct {
	Min, Max int
}

// Sized builds a SizeRange.
func Sized(min, max int) SizeRange {
	if min < 0 || min > max {
		panic("container.Sized: require 0 <= min <= max")
	}
	return SizeRange{Min: min, Max: max}
}

// Exactly builds a SizeRange fixing the length to n.
func Exactly(n int) SizeRange {
	return Sized(n, n)
}
