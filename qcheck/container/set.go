package container

import "github.com/jfcantinz/jqwik/qcheck"

// SetOf builds an Arbitrary[[]T] of distinct elements (returned as a
// slice rather than a map, since T need not be a valid Go map key beyond
// comparable and callers frequently want to shrink/inspect it in order).
// Element draws retry up to MaxFilterMisses times per slot to satisfy
// uniqueness. When a slot's budget runs out, the set drawn so far is
// returned if it already holds at least size.Min elements; otherwise
// KindSetSizeUnreachable is raised.
func SetOf[T comparable](elem qcheck.Arbitrary[T], size SizeRange) qcheck.Arbitrary[[]T] {
	return qcheck.FromGenSized(func(genSize int) qcheck.Gen[[]T] {
		elemGen := elem.Generator(genSize)
		return func(source *qcheck.RandomSource) qcheck.Shrinkable[[]T] {
			n := size.Min
			if size.Max > size.Min {
				n = size.Min + source.NextIntn(size.Max-size.Min+1)
			}
			seen := make(map[T]struct{}, n)
			values := make([]qcheck.Shrinkable[T], 0, n)
			for len(values) < n {
				filled := false
				for attempt := 0; attempt < qcheck.MaxFilterMisses; attempt++ {
					candidate := elemGen(source)
					v := candidate.Value()
					if _, dup := seen[v]; !dup {
						seen[v] = struct{}{}
						values = append(values, candidate)
						filled = true
						break
					}
				}
				if !filled {
					if len(values) >= size.Min {
						break
					}
					panic(qcheck.NewError(qcheck.KindSetSizeUnreachable, "could not fill set to its minimum size %d (reached %d)", size.Min, len(values)))
				}
			}
			return shrinkSet(values, size.Min)
		}
	})
}

// shrinkSet is shrinkList's uniqueness-preserving twin: it must never
// introduce a duplicate while removing or shrinking an element.
func shrinkSet[T comparable](values []qcheck.Shrinkable[T], minSize int) qcheck.Shrinkable[[]T] {
	current := append([]qcheck.Shrinkable[T](nil), values...)
	raw := make([]T, len(current))
	for i, v := range current {
		raw[i] = v.Value()
	}
	return qcheck.NewShrinkable(raw, func() []qcheck.Shrinkable[[]T] {
		var children []qcheck.Shrinkable[[]T]

		if minSize == 0 && len(current) > 0 {
			children = append(children, qcheck.Unshrinkable([]T{}))
		}

		if len(current) > minSize {
			for i := range current {
				without := make([]qcheck.Shrinkable[T], 0, len(current)-1)
				without = append(without, current[:i]...)
				without = append(without, current[i+1:]...)
				children = append(children, shrinkSet(without, minSize))
			}
		}

		for i := range current {
			for _, elemChild := range current[i].Shrinks() {
				if collides(current, i, elemChild.Value()) {
					continue
				}
				replaced := append([]qcheck.Shrinkable[T](nil), current...)
				replaced[i] = elemChild
				children = append(children, shrinkSet(replaced, minSize))
			}
		}

		return children
	})
}

func collides[T comparable](values []qcheck.Shrinkable[T], skip int, v T) bool {
	for i, existing := range values {
		if i != skip && existing.Value() == v {
			return true
		}
	}
	return false
}
