package qcheck

// ExhaustiveGenerator is a finite enumeration of every value of an
// arbitrary's space, used by a driver when the space is small enough that
// sampling would be wasteful. MaxCount is a size estimate: exact for
// map/of/samples-style sources, an upper bound once Filter has narrowed
// the space.
type ExhaustiveGenerator[T any] struct {
	MaxCount int64
	values   func() []T
}

// NewExhaustiveGenerator builds an ExhaustiveGenerator from an eagerly
// known slice of values.
func NewExhaustiveGenerator[T any](values []T) ExhaustiveGenerator[T] {
	vs := append([]T(nil), values...)
	return ExhaustiveGenerator[T]{
		MaxCount: int64(len(vs)),
		values:   func() []T { return vs },
	}
}

// Values materialises the full enumeration.
func (e ExhaustiveGenerator[T]) Values() []T {
	if e.values == nil {
		return nil
	}
	return e.values()
}

// MapExhaustive transforms every enumerated value; cardinality is
// unchanged.
func MapExhaustive[T, U any](e ExhaustiveGenerator[T], f func(T) U) ExhaustiveGenerator[U] {
	return ExhaustiveGenerator[U]{
		MaxCount: e.MaxCount,
		values: func() []U {
			src := e.Values()
			out := make([]U, len(src))
			for i, v := range src {
				out[i] = f(v)
			}
			return out
		},
	}
}

// FilterExhaustive keeps only enumerated values matching pred. MaxCount
// becomes an upper bound (the true count is not known until materialised).
func FilterExhaustive[T any](e ExhaustiveGenerator[T], pred func(T) bool) ExhaustiveGenerator[T] {
	return ExhaustiveGenerator[T]{
		MaxCount: e.MaxCount,
		values: func() []T {
			src := e.Values()
			out := make([]T, 0, len(src))
			for _, v := range src {
				if pred(v) {
					out = append(out, v)
				}
			}
			return out
		},
	}
}

// FlatMapExhaustive builds the outer-major cartesian product of e with the
// per-value inner enumeration produced by f.
func FlatMapExhaustive[T, U any](e ExhaustiveGenerator[T], f func(T) ExhaustiveGenerator[U]) ExhaustiveGenerator[U] {
	return ExhaustiveGenerator[U]{
		MaxCount: -1, // unknown until every f(t) has been consulted
		values: func() []U {
			var out []U
			for _, t := range e.Values() {
				out = append(out, f(t).Values()...)
			}
			return out
		},
	}
}

// InjectNullExhaustive adds exactly one extra enumerated value (nullValue)
// ahead of e's own values.
func InjectNullExhaustive[T any](e ExhaustiveGenerator[T], nullValue T) ExhaustiveGenerator[T] {
	return ExhaustiveGenerator[T]{
		MaxCount: e.MaxCount + 1,
		values: func() []T {
			return append([]T{nullValue}, e.Values()...)
		},
	}
}

// WithSamplesExhaustive prepends samples ahead of e's own values.
func WithSamplesExhaustive[T any](e ExhaustiveGenerator[T], samples ...T) ExhaustiveGenerator[T] {
	return ExhaustiveGenerator[T]{
		MaxCount: e.MaxCount + int64(len(samples)),
		values: func() []T {
			return append(append([]T{}, samples...), e.Values()...)
		},
	}
}

// ExhaustiveOf requests the exhaustive form of a, raising
// KindExhaustiveNotAvailable if a has none.
func ExhaustiveOf[T any](a Arbitrary[T]) (ExhaustiveGenerator[T], error) {
	e, ok := a.Exhaustive()
	if !ok {
		return ExhaustiveGenerator[T]{}, NewError(KindExhaustiveNotAvailable, "arbitrary has no exhaustive form")
	}
	return e, nil
}
