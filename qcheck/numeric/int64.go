package numeric

import (
	"math"

	"github.com/jfcantinz/jqwik/qcheck"
)

// Int64Range builds an Arbitrary[int64] over [min, max] inclusive, with
// the same edge-case and shrink-target treatment as IntRange.
func Int64Range(min, max int64) qcheck.Arbitrary[int64] {
	if min > max {
		panic("numeric.Int64Range: min must be <= max")
	}
	edges := int64EdgeCases(min, max)
	base := qcheck.Gen[int64](func(source *qcheck.RandomSource) qcheck.Shrinkable[int64] {
		span := uint64(max - min)
		var v int64
		if span == math.MaxUint64 {
			v = int64(source.NextUint64())
		} else {
			v = min + int64(source.NextUint64()%(span+1))
		}
		return shrinkInt64(v, min, max)
	})
	return qcheck.FromGenSized(func(int) qcheck.Gen[int64] {
		i := 0
		return func(source *qcheck.RandomSource) qcheck.Shrinkable[int64] {
			if i < len(edges) {
				v := edges[i]
				i++
				return shrinkInt64(v, min, max)
			}
			return base(source)
		}
	})
}

// Int64 builds an unbounded-for-the-type Arbitrary[int64].
func Int64() qcheck.Arbitrary[int64] {
	return qcheck.FromGenSized(func(genSize int) qcheck.Gen[int64] {
		bound := qcheck.DefaultMaxFromTries(genSize)
		edges := []int64{math.MinInt64, math.MaxInt64, 0, -bound, bound}
		g := qcheck.Gen[int64](func(source *qcheck.RandomSource) qcheck.Shrinkable[int64] {
			v := -bound + int64(source.NextUint64()%uint64(2*bound+1))
			return shrinkInt64(v, math.MinInt64, math.MaxInt64)
		})
		return qcheck.WithSamples(g, edges...)
	})
}

func int64EdgeCases(min, max int64) []int64 {
	edges := []int64{min, max}
	if min <= 0 && 0 <= max {
		edges = append(edges, 0)
	}
	for _, d := range []int64{1, -1, 2, -2} {
		if d >= min && d <= max {
			edges = append(edges, d)
		}
	}
	return edges
}

func int64Target(min, max int64) int64 {
	if min <= 0 && 0 <= max {
		return 0
	}
	if max < 0 {
		return max
	}
	return min
}

func shrinkInt64(v, min, max int64) qcheck.Shrinkable[int64] {
	target := int64Target(min, max)
	return qcheck.NewShrinkable(v, func() []qcheck.Shrinkable[int64] {
		if v == target {
			return nil
		}
		var children []qcheck.Shrinkable[int64]
		seen := map[int64]bool{v: true}
		add := func(c int64) {
			if c < min || c > max || seen[c] {
				return
			}
			seen[c] = true
			children = append(children, shrinkInt64(c, min, max))
		}
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
