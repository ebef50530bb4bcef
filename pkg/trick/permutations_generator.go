package trick

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// ConstrainedPermutations returns, in lexicographic order, every ordering of
// items that holds the constraints. Constraints are evaluated on each prefix as
// it is built, so a constraint returning false prunes every ordering that
// starts with that prefix.
//
// Example:
//
//	// Orderings of the aces that do not start with the ace of spades
//	permutations := trick.ConstrainedPermutations([]uint64{0, 1, 2, 3}, []func(prefix []uint64) bool{
//		func(prefix []uint64) bool {
//			return len(prefix) == 0 || prefix[0] != 3
//		},
//	})
func ConstrainedPermutations[T constraints.Ordered](items []T, constraints []func(prefix []T) bool) [][]T {
	pool := slices.Clone(items)
	slices.Sort(pool)
	permutations := make([][]T, 0)
	constrainedPermutations(constraints, pool, make([]bool, len(pool)), make([]T, 0, len(pool)), &permutations)
	return permutations
}

// Permutations returns every ordering of items in lexicographic order, so that
// the ordering at index i has rank i+1.
func Permutations[T constraints.Ordered](items []T) [][]T {
	return ConstrainedPermutations(items, nil)
}

func constrainedPermutations[T constraints.Ordered](
	constraints []func(prefix []T) bool,
	pool []T,
	used []bool,
	prefix []T,
	permutations *[][]T) {

	if len(prefix) == len(pool) {
		*permutations = append(*permutations, slices.Clone(prefix))
		return
	}

	for i, item := range pool {
		if used[i] {
			continue
		}
		prefix = append(prefix, item)
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(prefix) {
				constraintViolated = true
				break
			}
		}

		if !constraintViolated {
			used[i] = true
			constrainedPermutations(constraints, pool, used, prefix, permutations)
			used[i] = false
		}
		prefix = prefix[:len(prefix)-1]
	}
}
