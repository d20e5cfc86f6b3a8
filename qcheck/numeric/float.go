package numeric

import (
	"math"

	"github.com/jfcantinz/jqwik/qcheck"
)

// FloatArbitrary is the builder for float64 arbitraries: built via
// Float64() and narrowed with chained calls to Between/OfScale rather
// than a single flat factory function, since scale and bounds can each be
// set independently and in either order.
type FloatArbitrary struct {
	min, max  float64
	hasScale  bool
	scale     int
	hasBounds bool
}

// Float64 builds the default unbounded-for-the-type double arbitrary.
func Float64() *FloatArbitrary {
	return &FloatArbitrary{min: -math.MaxFloat64, max: math.MaxFloat64}
}

// Between narrows the arbitrary to [min, max] inclusive.
func (f *FloatArbitrary) Between(min, max float64) *FloatArbitrary {
	if min > max {
		panic("numeric.FloatArbitrary.Between: min must be <= max")
	}
	return &FloatArbitrary{min: min, max: max, hasScale: f.hasScale, scale: f.scale, hasBounds: true}
}

// OfScale fixes the number of decimal places every generated value must
// round-trip through: round(v*10^s)/10^s == v. If the interval is
// narrower than one scale step, endpoints override scale and values are
// drawn unrounded within [min, max] instead.
func (f *FloatArbitrary) OfScale(scale int) *FloatArbitrary {
	return &FloatArbitrary{min: f.min, max: f.max, hasScale: true, scale: scale, hasBounds: f.hasBounds}
}

func scaleStep(scale int) float64 {
	return math.Pow(10, float64(-scale))
}

func roundToScale(v float64, scale int) float64 {
	factor := math.Pow(10, float64(scale))
	return math.Round(v*factor) / factor
}

// Build materialises the qcheck.Arbitrary[float64].
func (f *FloatArbitrary) Build() qcheck.Arbitrary[float64] {
	min, max, hasScale, scale := f.min, f.max, f.hasScale, f.scale
	narrowerThanStep := hasScale && (max-min) < scaleStep(scale)

	edges := floatEdgeCases(min, max)

	gen := qcheck.Gen[float64](func(source *qcheck.RandomSource) qcheck.Shrinkable[float64] {
		r := source.NextFloat64()
		v := min + r*(max-min)
		if math.IsInf(max-min, 0) {
			v = min*(1-r) + max*r
		}
		if hasScale && !narrowerThanStep {
			v = roundToScale(v, scale)
			if v < min {
				v = min
			}
			if v > max {
				v = max
			}
		}
		return shrinkFloat(v, min, max, hasScale, scale, narrowerThanStep)
	})
	return qcheck.FromGen(qcheck.WithSamples(gen, edges...))
}

func floatEdgeCases(min, max float64) []float64 {
	candidates := []float64{0.0, 0.01, -0.01, math.MaxFloat64, -math.MaxFloat64}
	var edges []float64
	for _, c := range candidates {
		if c >= min && c <= max {
			edges = append(edges, c)
		}
	}
	edges = append(edges, min, max)
	return edges
}

func floatTarget(min, max float64) float64 {
	if min <= 0 && 0 <= max {
		return 0
	}
	if max < 0 {
		return max
	}
	return min
}

// shrinkFloat halves the distance to target repeatedly, preserving scale
// when one is set (unless the interval is narrower than one scale step).
func shrinkFloat(v, min, max float64, hasScale bool, scale int, narrowerThanStep bool) qcheck.Shrinkable[float64] {
	target := floatTarget(min, max)
	return qcheck.NewShrinkable(v, func() []qcheck.Shrinkable[float64] {
		if v == target {
			return nil
		}
		var children []qcheck.Shrinkable[float64]
		seen := map[float64]bool{v: true}
		add := func(c float64) {
			if hasScale && !narrowerThanStep {
				c = roundToScale(c, scale)
			}
			if c < min || c > max || seen[c] {
				return
			}
			seen[c] = true
			children = append(children, shrinkFloat(c, min, max, hasScale, scale, narrowerThanStep))
		}
		diff := v - target
		for i := 0; i < 64 && diff != 0; i++ {
			diff /= 2
			add(target + diff)
			if hasScale && !narrowerThanStep && math.Abs(diff) < scaleStep(scale) {
				break
			}
		}
		add(target)
		return children
	})
}
