package gen

import "github.com/jfcantinz/jqwik/qcheck"

// Shuffle generates permutations of values. Every one of the n!
// permutations is reachable with positive probability via Fisher-Yates.
// Shrinking works on the underlying index permutation — swapping back any
// adjacent pair of indices that is out of order relative to the identity
// permutation strictly decreases the inversion count, so descent always
// terminates at the identity permutation (the original order).
func Shuffle[T any](values ...T) qcheck.Arbitrary[[]T] {
	original := append([]T(nil), values...)
	n := len(original)
	return qcheck.FromGen(qcheck.Gen[[]T](func(source *qcheck.RandomSource) qcheck.Shrinkable[[]T] {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		for i := n - 1; i > 0; i-- {
			j := source.NextIntn(i + 1)
			idx[i], idx[j] = idx[j], idx[i]
		}
		indexShrinkable := shrinkIndexPermutation(idx)
		return qcheck.MapShrinkable(indexShrinkable, func(perm []int) []T {
			out := make([]T, len(perm))
			for i, p := range perm {
				out[i] = original[p]
			}
			return out
		})
	}))
}

func shrinkIndexPermutation(idx []int) qcheck.Shrinkable[[]int] {
	current := append([]int(nil), idx...)
	return qcheck.NewShrinkable(current, func() []qcheck.Shrinkable[[]int] {
		var children []qcheck.Shrinkable[[]int]
		for i := 0; i+1 < len(current); i++ {
			if current[i] > current[i+1] {
				child := append([]int(nil), current...)
				child[i], child[i+1] = child[i+1], child[i]
				children = append(children, shrinkIndexPermutation(child))
			}
		}
		return children
	})
}
