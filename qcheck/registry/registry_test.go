package registry

import (
	"reflect"
	"testing"

	"github.com/jfcantinz/jqwik/qcheck"
)

func TestDefaultForKnowsPrimitives(t *testing.T) {
	r := NewRegistry()
	for _, zero := range []any{false, int(0), "", float64(0)} {
		arb, ok := r.DefaultFor(reflect.TypeOf(zero))
		if !ok {
			t.Fatalf("no default provider registered for %T", zero)
		}
		v := arb.Generator(10)(qcheck.NewRandomSource(1)).Value()
		if reflect.TypeOf(v) != reflect.TypeOf(zero) {
			t.Fatalf("provider for %T produced a %T", zero, v)
		}
	}
}

func TestDefaultForReportsUnknownType(t *testing.T) {
	r := NewRegistry()
	type unregistered struct{}
	if _, ok := r.DefaultFor(reflect.TypeOf(unregistered{})); ok {
		t.Fatal("expected no provider for a type nobody registered")
	}
}

func TestRegisterMergesMultipleProvidersWithOneOf(t *testing.T) {
	r := NewRegistry()
	r.Register(reflect.TypeOf(int(0)), func() qcheck.Arbitrary[any] {
		return qcheck.Map(qcheck.FromGen(qcheck.Gen[int](func(*qcheck.RandomSource) qcheck.Shrinkable[int] {
			return qcheck.Unshrinkable(999)
		})), func(v int) any { return v })
	})
	arb, ok := r.DefaultFor(reflect.TypeOf(int(0)))
	if !ok {
		t.Fatal("expected a merged provider for int")
	}
	seen999 := false
	g := arb.Generator(10)
	source := qcheck.NewRandomSource(1)
	for i := 0; i < 50; i++ {
		if g(source).Value() == 999 {
			seen999 = true
			break
		}
	}
	if !seen999 {
		t.Fatal("the newly registered provider never won the OneOf draw")
	}
}

type sampleStruct struct {
	Name string
	Age  int
	Ok   bool
}

func TestForTypeGeneratesEveryExportedField(t *testing.T) {
	r := NewRegistry()
	arb := r.ForType(reflect.TypeOf(sampleStruct{}))
	m := arb.Generator(10)(qcheck.NewRandomSource(1)).Value()
	for _, field := range []string{"Name", "Age", "Ok"} {
		if _, ok := m[field]; !ok {
			t.Fatalf("field %q missing from generated struct map: %v", field, m)
		}
	}
}

func TestForTypeFollowsPointerIndirection(t *testing.T) {
	r := NewRegistry()
	arb := r.ForType(reflect.TypeOf(&sampleStruct{}))
	m := arb.Generator(10)(qcheck.NewRandomSource(1)).Value()
	if len(m) != 3 {
		t.Fatalf("expected 3 fields for the pointed-to struct, got %v", m)
	}
}

func TestForTypePanicsOnNonStruct(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-struct type")
		}
	}()
	r := NewRegistry()
	r.ForType(reflect.TypeOf(42))
}
