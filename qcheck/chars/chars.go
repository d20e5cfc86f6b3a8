// Package chars implements character and string arbitraries: configurable
// character ranges/sets, and strings built from a character arbitrary
// plus a size range, shrinking shorter-first and then per-character
// toward 'a'.
package chars

import (
	"github.com/jfcantinz/jqwik/qcheck"
	"github.com/jfcantinz/jqwik/qcheck/container"
)

// printableRanges approximates the ASCII "printable" default: space
// (0x20) through tilde (0x7e).
var printableRanges = []Range{{Lo: 0x20, Hi: 0x7e}}

// Range is an inclusive rune range.
type Range struct {
	Lo, Hi rune
}

// Printable builds the default character arbitrary: printable ASCII.
func Printable() qcheck.Arbitrary[rune] {
	return OfRanges(printableRanges...)
}

// OfRanges builds a character arbitrary uniform over the union of ranges.
func OfRanges(ranges ...Range) qcheck.Arbitrary[rune] {
	if len(ranges) == 0 {
		panic("chars.OfRanges requires at least one range")
	}
	total := 0
	for _, r := range ranges {
		total += int(r.Hi-r.Lo) + 1
	}
	pick := func(offset int) rune {
		for _, r := range ranges {
			width := int(r.Hi-r.Lo) + 1
			if offset < width {
				return r.Lo + rune(offset)
			}
			offset -= width
		}
		return ranges[0].Lo
	}
	gen := qcheck.Gen[rune](func(source *qcheck.RandomSource) qcheck.Shrinkable[rune] {
		c := pick(source.NextIntn(total))
		return shrinkChar(c, ranges)
	})
	return qcheck.FromGen(gen)
}

// OfSet builds a character arbitrary uniform over an explicit set.
func OfSet(runes ...rune) qcheck.Arbitrary[rune] {
	if len(runes) == 0 {
		panic("chars.OfSet requires at least one rune")
	}
	rs := append([]rune(nil), runes...)
	gen := qcheck.Gen[rune](func(source *qcheck.RandomSource) qcheck.Shrinkable[rune] {
		c := rs[source.NextIntn(len(rs))]
		return qcheck.Unshrinkable(c) // no ordering to shrink toward on an explicit set
	})
	return qcheck.FromGen(gen)
}

func inRanges(c rune, ranges []Range) bool {
	for _, r := range ranges {
		if c >= r.Lo && c <= r.Hi {
			return true
		}
	}
	return false
}

// shrinkChar shrinks a character toward 'a' if 'a' is in range, otherwise
// toward the range's lowest member.
func shrinkChar(c rune, ranges []Range) qcheck.Shrinkable[rune] {
	target := charTarget(ranges)
	return qcheck.NewShrinkable(c, func() []qcheck.Shrinkable[rune] {
		if c == target {
			return nil
		}
		var children []qcheck.Shrinkable[rune]
		step := rune(1)
		if c > target {
			step = -1
		}
		mid := target + (c-target)/2
		if mid != c && inRanges(mid, ranges) {
			children = append(children, shrinkChar(mid, ranges))
		}
		if next := c + step; next != c && inRanges(next, ranges) {
			children = append(children, shrinkChar(next, ranges))
		}
		children = append(children, qcheck.Unshrinkable(target))
		return children
	})
}

func charTarget(ranges []Range) rune {
	if inRanges('a', ranges) {
		return 'a'
	}
	min := ranges[0].Lo
	for _, r := range ranges[1:] {
		if r.Lo < min {
			min = r.Lo
		}
	}
	return min
}

// StringOf builds a string arbitrary from a character arbitrary and a
// size range, delegating length handling to container.ListOf and
// re-flattening the resulting []rune into a string. Shrinking is
// shorter-first (from ListOf's own strategy), then per-character toward
// 'a' (from the character arbitrary's own shrink tree).
func StringOf(charArb qcheck.Arbitrary[rune], size container.SizeRange) qcheck.Arbitrary[string] {
	return qcheck.Map(container.ListOf(charArb, size), func(rs []rune) string {
		return string(rs)
	})
}

// String is StringOf(Printable(), size) — the plain default string
// arbitrary.
func String(size container.SizeRange) qcheck.Arbitrary[string] {
	return StringOf(Printable(), size)
}

// WithCharRange narrows StringOf's element arbitrary to a single
// character range.
func WithCharRange(lo, hi rune, size container.SizeRange) qcheck.Arbitrary[string] {
	return StringOf(OfRanges(Range{Lo: lo, Hi: hi}), size)
}
