package numeric

import (
	"math/big"

	"github.com/jfcantinz/jqwik/qcheck"
)

// BigIntRange builds an Arbitrary[*big.Int] over [min, max] inclusive.
// Endpoints and -10..-1, 0, 1..10 (when in range) are guaranteed to
// appear among the first draws.
func BigIntRange(min, max *big.Int) qcheck.Arbitrary[*big.Int] {
	if min.Cmp(max) > 0 {
		panic("numeric.BigIntRange: min must be <= max")
	}
	edges := bigIntEdgeCases(min, max)
	span := new(big.Int).Sub(max, min)
	span.Add(span, big.NewInt(1))

	gen := qcheck.Gen[*big.Int](func(source *qcheck.RandomSource) qcheck.Shrinkable[*big.Int] {
		offset := randomBigInt(source, span)
		v := new(big.Int).Add(min, offset)
		return shrinkBigInt(v, min, max)
	})
	return qcheck.FromGenSized(func(int) qcheck.Gen[*big.Int] {
		i := 0
		return func(source *qcheck.RandomSource) qcheck.Shrinkable[*big.Int] {
			if i < len(edges) {
				v := edges[i]
				i++
				return shrinkBigInt(v, min, max)
			}
			return gen(source)
		}
	})
}

func randomBigInt(source *qcheck.RandomSource, bound *big.Int) *big.Int {
	if bound.Sign() <= 0 {
		return big.NewInt(0)
	}
	// Draw eight more random bits than bound needs and reduce them modulo
	// bound, using the deterministic RandomSource rather than crypto/rand
	// so the same seed always reproduces the same sequence.
	bits := bound.BitLen() + 8
	buf := make([]byte, (bits+7)/8)
	for {
		for i := range buf {
			buf[i] = byte(source.NextIntn(256))
		}
		candidate := new(big.Int).SetBytes(buf)
		candidate.Mod(candidate, bound)
		return candidate
	}
}

func bigIntEdgeCases(min, max *big.Int) []*big.Int {
	edges := []*big.Int{new(big.Int).Set(min), new(big.Int).Set(max)}
	zero := big.NewInt(0)
	for i := int64(-10); i <= 10; i++ {
		if i == 0 {
			continue
		}
		c := big.NewInt(i)
		if c.Cmp(min) >= 0 && c.Cmp(max) <= 0 {
			edges = append(edges, c)
		}
	}
	if zero.Cmp(min) >= 0 && zero.Cmp(max) <= 0 {
		edges = append(edges, zero)
	}
	return edges
}

func bigIntTarget(min, max *big.Int) *big.Int {
	zero := big.NewInt(0)
	if min.Cmp(zero) <= 0 && max.Cmp(zero) >= 0 {
		return zero
	}
	if max.Cmp(zero) < 0 {
		return max
	}
	return min
}

func shrinkBigInt(v, min, max *big.Int) qcheck.Shrinkable[*big.Int] {
	target := bigIntTarget(min, max)
	return qcheck.NewShrinkable(v, func() []qcheck.Shrinkable[*big.Int] {
		if v.Cmp(target) == 0 {
			return nil
		}
		var children []qcheck.Shrinkable[*big.Int]
		add := func(c *big.Int) {
			if c.Cmp(min) < 0 || c.Cmp(max) > 0 {
				return
			}
			children = append(children, shrinkBigInt(c, min, max))
		}
		diff := new(big.Int).Sub(v, target)
		two := big.NewInt(2)
		for diff.Sign() != 0 {
			diff.Quo(diff, two)
			add(new(big.Int).Add(target, diff))
		}
		if v.Cmp(target) > 0 {
			add(new(big.Int).Sub(v, big.NewInt(1)))
		} else {
			add(new(big.Int).Add(v, big.NewInt(1)))
		}
		add(new(big.Int).Set(target))
		return children
	})
}
