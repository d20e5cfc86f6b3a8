package container

import (
	"testing"

	"github.com/jfcantinz/jqwik/qcheck"
	"github.com/jfcantinz/jqwik/qcheck/numeric"
)

func TestIteratorOfPullsValuesThenExhausts(t *testing.T) {
	arb := IteratorOf(numeric.IntRange(0, 10), Exactly(3))
	g := arb.Generator(10)
	it := g(qcheck.NewRandomSource(1)).Value()
	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	if count != 3 {
		t.Fatalf("pulled %d values, want exactly 3", count)
	}
	if _, ok := it.Next(); ok {
		t.Fatal("iterator should stay exhausted after running out")
	}
}

func TestStreamOfAndArrayOfShareListSpace(t *testing.T) {
	elem := numeric.IntRange(0, 5)
	size := Sized(1, 4)
	streamArb := StreamOf(elem, size)
	arrayArb := ArrayOf(elem, size)
	source := qcheck.NewRandomSource(1)
	sv := streamArb.Generator(10)(source).Value()
	av := arrayArb.Generator(10)(source).Value()
	if len(sv) < 1 || len(sv) > 4 || len(av) < 1 || len(av) > 4 {
		t.Fatalf("unexpected lengths: stream=%v array=%v", sv, av)
	}
}
