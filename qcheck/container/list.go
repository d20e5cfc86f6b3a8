package container

import "github.com/jfcantinz/jqwik/qcheck"

// ListOf builds an Arbitrary[[]T] drawing a length in size and that many
// independent elements from elem. An empty list (if size.Min == 0) and a
// single-element list are guaranteed among the first draws.
func ListOf[T any](elem qcheck.Arbitrary[T], size SizeRange) qcheck.Arbitrary[[]T] {
	base := qcheck.FromGenSized(func(genSize int) qcheck.Gen[[]T] {
		elemGen := elem.Generator(genSize)
		return func(source *qcheck.RandomSource) qcheck.Shrinkable[[]T] {
			n := size.Min
			if size.Max > size.Min {
				n = size.Min + source.NextIntn(size.Max-size.Min+1)
			}
			values := make([]qcheck.Shrinkable[T], n)
			for i := range values {
				values[i] = elemGen(source)
			}
			return shrinkList(values, size.Min)
		}
	})
	return withListEdgeCases(base, elem, size)
}

// withListEdgeCases prepends an empty list (if allowed) and a
// single-element list ahead of the random draws.
func withListEdgeCases[T any](base qcheck.Arbitrary[[]T], elem qcheck.Arbitrary[T], size SizeRange) qcheck.Arbitrary[[]T] {
	return qcheck.FromGenSized(func(genSize int) qcheck.Gen[[]T] {
		g := base.Generator(genSize)
		var samples [][]T
		if size.Min == 0 {
			samples = append(samples, []T{})
		}
		if size.Min <= 1 && 1 <= size.Max {
			elemGen := elem.Generator(genSize)
			seed := qcheck.NewRandomSource(1)
			samples = append(samples, []T{elemGen(seed).Value()})
		}
		return qcheck.WithSamples(g, samples...)
	})
}

func shrinkList[T any](values []qcheck.Shrinkable[T], minSize int) qcheck.Shrinkable[[]T] {
	current := append([]qcheck.Shrinkable[T](nil), values...)
	raw := make([]T, len(current))
	for i, v := range current {
		raw[i] = v.Value()
	}
	return qcheck.NewShrinkable(raw, func() []qcheck.Shrinkable[[]T] {
		var children []qcheck.Shrinkable[[]T]

		// 1. The empty collection, if allowed.
		if minSize == 0 && len(current) > 0 {
			children = append(children, qcheck.Unshrinkable([]T{}))
		}

		// 2. Remove one element at a time.
		if len(current) > minSize {
			for i := range current {
				without := make([]qcheck.Shrinkable[T], 0, len(current)-1)
				without = append(without, current[:i]...)
				without = append(without, current[i+1:]...)
				children = append(children, shrinkList(without, minSize))
			}
		}

		// 3. Shrink each element individually, keeping length fixed.
		for i := range current {
			for _, elemChild := range current[i].Shrinks() {
				replaced := append([]qcheck.Shrinkable[T](nil), current...)
				replaced[i] = elemChild
				children = append(children, shrinkList(replaced, minSize))
			}
		}

		return children
	})
}
