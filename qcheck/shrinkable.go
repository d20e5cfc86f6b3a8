package qcheck

// Shrinkable pairs a value with a lazily-computed, finitely-branching tree
// of strictly "smaller" candidate values. The tree may be infinitely deep
// but every node has a finite number of immediate children, which is what
// lets the Shrinker terminate: any descent strictly consumes the
// well-founded order the arbitrary that produced the tree established.
//
// Shrinks are computed at most once per node and memoised; re-invoking
// Shrinks on the same node returns an equivalent, not necessarily
// identical, slice.
type Shrinkable[T any] struct {
	value    T
	compute  func() []Shrinkable[T]
	computed bool
	memo     []Shrinkable[T]
}

// Unshrinkable wraps v with an empty shrink tree: v is already considered
// minimal.
func Unshrinkable[T any](v T) Shrinkable[T] {
	return Shrinkable[T]{value: v, computed: true}
}

// NewShrinkable builds a Shrinkable whose children are computed on first
// access by calling shrinks.
func NewShrinkable[T any](value T, shrinks func() []Shrinkable[T]) Shrinkable[T] {
	if shrinks == nil {
		return Unshrinkable(value)
	}
	return Shrinkable[T]{value: value, compute: shrinks}
}

// Value returns the wrapped value. Pure: calling it repeatedly never
// mutates the tree.
func (s Shrinkable[T]) Value() T {
	return s.value
}

// Shrinks returns the immediate children of this node, computing and
// memoising them on first call.
func (s *Shrinkable[T]) Shrinks() []Shrinkable[T] {
	if !s.computed {
		if s.compute != nil {
			s.memo = s.compute()
		}
		s.computed = true
	}
	return s.memo
}

// MapShrinkable applies f to value and, recursively, to every candidate in
// the shrink tree. Map cannot be a method because Go forbids methods from
// introducing a fresh type parameter; this mirrors the free-function shape
// the rest of this module's combinators use for the same reason.
func MapShrinkable[T, U any](s Shrinkable[T], f func(T) U) Shrinkable[U] {
	sCopy := s
	return NewShrinkable(f(s.value), func() []Shrinkable[U] {
		children := sCopy.Shrinks()
		out := make([]Shrinkable[U], len(children))
		for i, c := range children {
			out[i] = MapShrinkable(c, f)
		}
		return out
	})
}

// Filter keeps only children (recursively) whose value satisfies pred. If
// the root value itself fails pred, ok is false and the generator that
// produced s must retry the whole draw.
func (s Shrinkable[T]) Filter(pred func(T) bool) (result Shrinkable[T], ok bool) {
	if !pred(s.value) {
		return Shrinkable[T]{}, false
	}
	sCopy := s
	return NewShrinkable(s.value, func() []Shrinkable[T] {
		children := sCopy.Shrinks()
		out := make([]Shrinkable[T], 0, len(children))
		for _, c := range children {
			if fc, ok := c.Filter(pred); ok {
				out = append(out, fc)
			}
		}
		return out
	}), true
}

// ConcatShrinkable produces a node with the value of the first argument
// whose children are the concatenation of both arguments' immediate
// children — the first argument's own children first, then the second's.
// Suited to combining independently derived shrink strategies; nothing
// else in this package calls it (FlatMapGen assembles its two strategies
// directly).
func ConcatShrinkable[T any](a, b Shrinkable[T]) Shrinkable[T] {
	aCopy, bCopy := a, b
	return NewShrinkable(a.value, func() []Shrinkable[T] {
		return append(append([]Shrinkable[T]{}, aCopy.Shrinks()...), bCopy.Shrinks()...)
	})
}

// WithExtraShrinks prepends extraChildren (evaluated eagerly, they are
// meant to be cheap, already-known candidates) to s's own lazily-computed
// children.
func WithExtraShrinks[T any](s Shrinkable[T], extraChildren ...Shrinkable[T]) Shrinkable[T] {
	sCopy := s
	return NewShrinkable(s.value, func() []Shrinkable[T] {
		return append(append([]Shrinkable[T]{}, extraChildren...), sCopy.Shrinks()...)
	})
}
