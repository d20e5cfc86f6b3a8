// Package registry implements a raw-type-keyed table of default
// arbitrary providers plus a struct/pointer introspector that recurses
// through it to build one for an arbitrary struct type. Every other
// combinator in this module is generic-typed; these two are inherently
// reflective because they dispatch on a runtime type value, which a Go
// type parameter cannot do.
package registry

import (
	"reflect"

	"github.com/jfcantinz/jqwik/qcheck"
	"github.com/jfcantinz/jqwik/qcheck/gen"
)

// Provider builds an Arbitrary[any] for one raw type.
type Provider func() qcheck.Arbitrary[any]

// Registry maps a raw reflect.Type to every provider registered for it.
// Multiple providers for the same type are merged with OneOf when looked
// up, so a caller who registers a second, more specific provider for a
// type already covered by a default gets a union of both rather than a
// silent override.
type Registry struct {
	providers map[reflect.Type][]Provider
}

// NewRegistry builds a fresh registry, pre-populated with providers for
// bool, int, string and float64.
func NewRegistry() *Registry {
	r := &Registry{providers: make(map[reflect.Type][]Provider)}
	r.registerPrimitives()
	return r
}

// Register adds provider as one of possibly several sources for t.
func (r *Registry) Register(t reflect.Type, provider Provider) {
	r.providers[t] = append(r.providers[t], provider)
}

// DefaultFor looks up every provider registered for t and merges them
// with OneOf. ok is false if nothing is registered.
func (r *Registry) DefaultFor(t reflect.Type) (arb qcheck.Arbitrary[any], ok bool) {
	providers, found := r.providers[t]
	if !found || len(providers) == 0 {
		return nil, false
	}
	arbs := make([]qcheck.Arbitrary[any], len(providers))
	for i, p := range providers {
		arbs[i] = p()
	}
	if len(arbs) == 1 {
		return arbs[0], true
	}
	return gen.OneOf(arbs...), true
}

func (r *Registry) registerPrimitives() {
	reg := func(zero any, provider Provider) {
		r.Register(reflect.TypeOf(zero), provider)
	}
	reg(false, func() qcheck.Arbitrary[any] {
		return qcheck.Map(gen.Of(false, true), asAny[bool])
	})
	reg(int(0), func() qcheck.Arbitrary[any] {
		return qcheck.Map(intArbitrary(), asAny[int])
	})
	reg("", func() qcheck.Arbitrary[any] {
		return qcheck.Map(stringArbitrary(), asAny[string])
	})
	reg(float64(0), func() qcheck.Arbitrary[any] {
		return qcheck.Map(floatArbitrary(), asAny[float64])
	})
}

func asAny[T any](v T) any { return v }

// ForType introspects the public fields of rt (following one level of
// pointer indirection) and builds an Arbitrary[map[string]any] keyed by
// field name, drawing each field's value from a registered default
// provider, generalised over any registered leaf type instead of a fixed
// field-generator map the caller must hand-assemble.
//
// Fields with no registered provider are silently omitted.
func (r *Registry) ForType(rt reflect.Type) qcheck.Arbitrary[map[string]any] {
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		panic("registry.ForType: not a struct type: " + rt.String())
	}
	type fieldArb struct {
		name string
		arb  qcheck.Arbitrary[any]
	}
	var fields []fieldArb
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		if arb, ok := r.DefaultFor(f.Type); ok {
			fields = append(fields, fieldArb{name: f.Name, arb: arb})
		}
	}
	return qcheck.FromGenSized(func(genSize int) qcheck.Gen[map[string]any] {
		fieldGens := make([]struct {
			name string
			gen  qcheck.Gen[any]
		}, len(fields))
		for i, f := range fields {
			fieldGens[i] = struct {
				name string
				gen  qcheck.Gen[any]
			}{name: f.name, gen: f.arb.Generator(genSize)}
		}
		return func(source *qcheck.RandomSource) qcheck.Shrinkable[map[string]any] {
			out := make(map[string]any, len(fieldGens))
			for _, fg := range fieldGens {
				out[fg.name] = fg.gen(source).Value()
			}
			return qcheck.Unshrinkable(out)
		}
	})
}

func intArbitrary() qcheck.Arbitrary[int] {
	return gen.RandomValue(func(source *qcheck.RandomSource) int {
		return source.NextIntn(2001) - 1000
	})
}

func stringArbitrary() qcheck.Arbitrary[string] {
	return gen.RandomValue(func(source *qcheck.RandomSource) string {
		n := source.NextIntn(8)
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte('a' + source.NextIntn(26))
		}
		return string(buf)
	})
}

func floatArbitrary() qcheck.Arbitrary[float64] {
	return gen.RandomValue(func(source *qcheck.RandomSource) float64 {
		return source.NextFloat64()*2000 - 1000
	})
}
