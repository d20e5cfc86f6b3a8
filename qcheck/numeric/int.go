// Package numeric implements integer and decimal arbitraries: bounded and
// unbounded ranges, mandatory edge-case biasing, and shrinking toward the
// bound (or zero) nearest the range's target.
package numeric

import (
	"math"

	"github.com/jfcantinz/jqwik/qcheck"
)

// IntRange builds an Arbitrary[int] over [min, max] inclusive. The
// endpoints, 0 (if in range), and ±1/±2 (when in range) are prepended so
// every one of those values is drawn among the first calls to a
// materialised generator, and every value respects [min, max].
func IntRange(min, max int) qcheck.Arbitrary[int] {
	if min > max {
		panic("numeric.IntRange: min must be <= max")
	}
	edges := intEdgeCases(min, max)
	base := qcheck.FromGen(qcheck.Gen[int](func(source *qcheck.RandomSource) qcheck.Shrinkable[int] {
		v := min + source.NextIntn(max-min+1)
		return shrinkInt(v, min, max)
	}))
	withEdges := qcheck.FromGenSized(func(genSize int) qcheck.Gen[int] {
		g := base.Generator(genSize)
		i := 0
		return func(source *qcheck.RandomSource) qcheck.Shrinkable[int] {
			if i < len(edges) {
				v := edges[i]
				i++
				return shrinkInt(v, min, max)
			}
			return g(source)
		}
	})
	if int64(max)-int64(min) < 1<<20 {
		values := make([]int, 0, max-min+1)
		for v := min; v <= max; v++ {
			values = append(values, v)
		}
		return qcheck.WithExhaustive(withEdges, qcheck.NewExhaustiveGenerator(values))
	}
	return withEdges
}

// Int builds an unbounded-for-the-type Arbitrary[int], whose practical
// magnitude is influenced by genSize via DefaultMaxFromTries.
func Int() qcheck.Arbitrary[int] {
	return qcheck.FromGenSized(func(genSize int) qcheck.Gen[int] {
		bound := qcheck.DefaultMaxFromTries(genSize)
		if bound > math.MaxInt32 {
			bound = math.MaxInt32
		}
		lo, hi := -int(bound), int(bound)
		edges := []int{math.MinInt32, math.MaxInt32, 0, lo, hi}
		g := qcheck.Gen[int](func(source *qcheck.RandomSource) qcheck.Shrinkable[int] {
			v := lo + source.NextIntn(hi-lo+1)
			return shrinkInt(v, math.MinInt32, math.MaxInt32)
		})
		return qcheck.WithSamples(g, edges...)
	})
}

func intEdgeCases(min, max int) []int {
	edges := []int{min, max}
	if min <= 0 && 0 <= max {
		edges = append(edges, 0)
	}
	for _, d := range []int{1, -1, 2, -2} {
		if d >= min && d <= max {
			edges = append(edges, d)
		}
	}
	return edges
}

// intTarget is the value integer shrinking converges toward: 0 if it is
// in range, otherwise whichever bound is nearest zero.
func intTarget(min, max int) int {
	if min <= 0 && 0 <= max {
		return 0
	}
	if max < 0 {
		return max
	}
	return min
}

// shrinkInt builds v's shrink tree: a v/2 sequence toward target, then
// v±1, then the target itself.
func shrinkInt(v, min, max int) qcheck.Shrinkable[int] {
	target := intTarget(min, max)
	return qcheck.NewShrinkable(v, func() []qcheck.Shrinkable[int] {
		if v == target {
			return nil
		}
		var children []qcheck.Shrinkable[int]
		seen := map[int]bool{v: true}
		add := func(c int) {
			if c < min || c > max || seen[c] {
				return
			}
			seen[c] = true
			children = append(children, shrinkInt(c, min, max))
		}
		// v/2 sequence: repeatedly halve the distance to target.
		diff := v - target
		for diff != 0 {
			diff /= 2
			add(target + diff)
		}
		if v > target {
			add(v - 1)
		} else if v < target {
			add(v + 1)
		}
		add(target)
		return children
	})
}
